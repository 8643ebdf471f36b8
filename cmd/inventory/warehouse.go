package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unison/inventory-manager/internal/export"
	"github.com/unison/inventory-manager/internal/services"
)

func newWarehouseCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "warehouse",
		Aliases: []string{"warehouses", "wh"},
		Short:   "List and edit warehouses",
	}

	var params services.WarehouseListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List warehouses ordered by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				warehouses, err := a.warehouses.List(ctx, params)
				if err != nil {
					return err
				}
				return printWarehouses(cmd.OutOrStdout(), warehouses)
			})
		},
	}
	addWarehouseFilterFlags(list, &params)

	names := &cobra.Command{
		Use:   "names",
		Short: "Print warehouse names in ascending order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				for _, n := range a.warehouses.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			})
		},
	}

	nextID := &cobra.Command{
		Use:   "next-id",
		Short: "Print the id the next warehouse will get",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				id, err := a.warehouses.NextID(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a warehouse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				w, err := a.warehouses.Create(ctx, args[0])
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "warehouse %s created with id %s", w.Name, w.ID)
				return nil
			})
		},
	}

	rename := &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a warehouse",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				if err := a.warehouses.Rename(ctx, args[0], args[1]); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "warehouse %s renamed to %s", args[0], args[1])
				return nil
			})
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a warehouse using the configured delete policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				if err := a.warehouses.Delete(ctx, args[0]); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "warehouse %s deleted (policy %s)", args[0], a.cfg.Inventory.DeletePolicy)
				return nil
			})
		},
	}

	var exportParams services.WarehouseListParams
	var out string
	exp := &cobra.Command{
		Use:   "export",
		Short: "Write the warehouse listing to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				warehouses, err := a.warehouses.List(ctx, exportParams)
				if err != nil {
					return err
				}
				if err := writeFile(out, func(f *os.File) error { return export.Warehouses(f, warehouses) }); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "%d warehouses written to %s", len(warehouses), out)
				return nil
			})
		},
	}
	addWarehouseFilterFlags(exp, &exportParams)
	exp.Flags().StringVarP(&out, "out", "o", "warehouses.xlsx", "output file")

	cmd.AddCommand(list, names, nextID, add, rename, del, exp)
	return cmd
}

func addWarehouseFilterFlags(cmd *cobra.Command, params *services.WarehouseListParams) {
	flags := cmd.Flags()
	flags.StringVar(&params.Name, "name", "", "case-insensitive name substring")
	flags.StringVar(&params.ID, "id", "", "exact warehouse id")
	flags.Uint64Var(&params.Limit, "limit", 0, "maximum rows (0 for all)")
	flags.Uint64Var(&params.Offset, "offset", 0, "rows to skip")
}

// writeFile removes a partially written file when fn fails.
func writeFile(path string, fn func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
