package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newMigrateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Long:  "migrate applies pending schema migrations and, unless --seed=false, inserts the baseline warehouses.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				success(cmd.OutOrStdout(), "schema up to date at %s (%d warehouses)", a.cfg.Database.Path, a.names.Snapshot().Len())
				return nil
			})
		},
	}
	cmd.Flags().Bool("seed", true, "insert the baseline warehouses when missing")
	bindFlags(c.v, cmd.Flags(), map[string]string{"seed": "inventory.seed_warehouses"})
	return cmd
}
