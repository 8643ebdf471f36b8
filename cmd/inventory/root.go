package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/config"
)

// cli holds what the root command resolves before any subcommand runs.
type cli struct {
	v        *viper.Viper
	cfg      *config.Configuration
	envFile  string
	user     string
	password string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}
	defaults := config.NewConfigurationWithDefaults()

	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Warehouse and product inventory manager",
		Long:          "inventory manages warehouses and products stored in a local embedded database.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading INVENTORY_* variables")
	flags.String("db", defaults.Database.Path, "database file (\":memory:\" for a throwaway database)")
	flags.Duration("db-open-timeout", defaults.Database.OpenTimeout, "how long to retry opening a locked database file")
	flags.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	flags.String("log-format", defaults.LogFormat, "log format: console or json")
	flags.String("delete-policy", defaults.Inventory.DeletePolicy, "products of a deleted warehouse: orphan, restrict or cascade")
	flags.String("time-zone", defaults.Inventory.TimeZone, "zone of audit timestamps")
	flags.StringVarP(&c.user, "user", "u", "", "log in as this user before running the command")
	flags.StringVarP(&c.password, "password", "p", "", "password for --user")

	bindFlags(c.v, flags, map[string]string{
		"db":              "database.path",
		"db-open-timeout": "database.open_timeout",
		"log-level":       "log_level",
		"log-format":      "log_format",
		"delete-policy":   "inventory.delete_policy",
		"time-zone":       "inventory.time_zone",
	})

	root.AddCommand(
		newMigrateCmd(c),
		newServeCmd(c),
		newWarehouseCmd(c),
		newProductCmd(c),
		newUserCmd(c),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for flag, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

func (c *cli) init() error {
	if err := config.LoadDotEnv(c.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	zap.S().Named("cli").Debugw("configuration loaded", "config", cfg.DebugMap())
	return nil
}
