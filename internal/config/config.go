package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/unison/inventory-manager/internal/models"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "INVENTORY"

type Configuration struct {
	Server    Server         `mapstructure:"server"`
	Database  Database       `mapstructure:"database"`
	Auth      Authentication `mapstructure:"auth"`
	Inventory Inventory      `mapstructure:"inventory"`
	LogFormat string         `mapstructure:"log_format" default:"console"`
	LogLevel  string         `mapstructure:"log_level" default:"info"`
}

type Server struct {
	ServerMode string `mapstructure:"mode" default:"dev"`
	HTTPPort   int    `mapstructure:"http_port" default:"8000"`
}

type Database struct {
	Path        string        `mapstructure:"path" default:"inventory.duckdb"`
	OpenTimeout time.Duration `mapstructure:"open_timeout" default:"10s"`
}

type Authentication struct {
	Enabled    bool          `mapstructure:"enabled" default:"true"`
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl" default:"12h"`
	BcryptCost int           `mapstructure:"bcrypt_cost" default:"10"`
}

type Inventory struct {
	DeletePolicy   string `mapstructure:"delete_policy" default:"orphan"`
	TimeZone       string `mapstructure:"time_zone" default:"America/Phoenix"`
	SeedWarehouses bool   `mapstructure:"seed_warehouses" default:"true"`
}

// Keys lists every setting Load understands, in viper dotted form.
var Keys = []string{
	"server.mode",
	"server.http_port",
	"database.path",
	"database.open_timeout",
	"auth.enabled",
	"auth.jwt_secret",
	"auth.token_ttl",
	"auth.bcrypt_cost",
	"inventory.delete_policy",
	"inventory.time_zone",
	"inventory.seed_warehouses",
	"log_format",
	"log_level",
}

// NewConfigurationWithDefaults returns a configuration with every default tag applied.
func NewConfigurationWithDefaults() *Configuration {
	cfg := &Configuration{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("invalid configuration defaults: %v", err))
	}
	return cfg
}

// NewViper returns a viper instance bound to the INVENTORY_ environment, so
// database.path is read from INVENTORY_DATABASE_PATH.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range Keys {
		_ = v.BindEnv(k)
	}
	return v
}

// LoadDotEnv loads path into the process environment when the file exists.
// Variables already set win over the file.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Load starts from the defaults and overlays whatever v holds: bound
// environment variables, bound flags and an optional config file.
func Load(v *viper.Viper) (*Configuration, error) {
	cfg := NewConfigurationWithDefaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings every command depends on.
func (c *Configuration) Validate() error {
	if _, ok := models.ParseDeletePolicy(c.Inventory.DeletePolicy); !ok {
		return fmt.Errorf("unknown delete policy %q", c.Inventory.DeletePolicy)
	}
	if _, err := time.LoadLocation(c.Inventory.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone %q: %w", c.Inventory.TimeZone, err)
	}
	if c.Database.Path == "" {
		return errors.New("database path must not be empty")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// ValidateServer adds the checks only the HTTP server needs.
func (c *Configuration) ValidateServer() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http port %d", c.Server.HTTPPort)
	}
	switch c.Server.ServerMode {
	case "dev", "prod":
	default:
		return fmt.Errorf("unknown server mode %q", c.Server.ServerMode)
	}
	if c.Auth.Enabled && c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required when authentication is enabled")
	}
	return nil
}

// DebugMap returns the configuration for structured logging with secrets masked.
func (c *Configuration) DebugMap() map[string]any {
	secret := "(unset)"
	if c.Auth.JWTSecret != "" {
		secret = "(sensitive)"
	}
	return map[string]any{
		"server.mode":               c.Server.ServerMode,
		"server.http_port":          c.Server.HTTPPort,
		"database.path":             c.Database.Path,
		"database.open_timeout":     c.Database.OpenTimeout.String(),
		"auth.enabled":              c.Auth.Enabled,
		"auth.jwt_secret":           secret,
		"auth.token_ttl":            c.Auth.TokenTTL.String(),
		"auth.bcrypt_cost":          c.Auth.BcryptCost,
		"inventory.delete_policy":   c.Inventory.DeletePolicy,
		"inventory.time_zone":       c.Inventory.TimeZone,
		"inventory.seed_warehouses": c.Inventory.SeedWarehouses,
		"log_format":                c.LogFormat,
		"log_level":                 c.LogLevel,
	}
}
