package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/unison/inventory-manager/internal/export"
	"github.com/unison/inventory-manager/internal/services"
	"github.com/unison/inventory-manager/internal/util"
)

// productFilterFlags holds the raw text of the range bounds until they are parsed.
type productFilterFlags struct {
	params      services.ProductListParams
	priceMin    string
	priceMax    string
	quantityMin string
	quantityMax string
}

func (f *productFilterFlags) register(cmd *cobra.Command, paged bool) {
	flags := cmd.Flags()
	flags.StringVar(&f.params.Name, "name", "", "case-insensitive name substring")
	flags.StringVar(&f.params.Department, "department", "", "department (Materiales, Mobiliario, Impresion3D, Computación or an English alias)")
	flags.StringVar(&f.priceMin, "price-min", "", "minimum price")
	flags.StringVar(&f.priceMax, "price-max", "", "maximum price")
	flags.StringVar(&f.quantityMin, "quantity-min", "", "minimum quantity")
	flags.StringVar(&f.quantityMax, "quantity-max", "", "maximum quantity")
	flags.StringVar(&f.params.Warehouse, "warehouse", "", "warehouse name")
	flags.StringVar(&f.params.WarehouseID, "warehouse-id", "", "warehouse id")
	flags.StringVar(&f.params.ID, "id", "", "exact product id")
	if paged {
		flags.Uint64Var(&f.params.Limit, "limit", 0, "maximum rows (0 for all)")
		flags.Uint64Var(&f.params.Offset, "offset", 0, "rows to skip")
	}
}

func (f *productFilterFlags) resolve() (services.ProductListParams, error) {
	p := f.params
	var err error
	if p.PriceMin, err = util.OptionalDecimal("price-min", f.priceMin); err != nil {
		return p, err
	}
	if p.PriceMax, err = util.OptionalDecimal("price-max", f.priceMax); err != nil {
		return p, err
	}
	if p.QuantityMin, err = util.OptionalInt64("quantity-min", f.quantityMin); err != nil {
		return p, err
	}
	if p.QuantityMax, err = util.OptionalInt64("quantity-max", f.quantityMax); err != nil {
		return p, err
	}
	return p, nil
}

func addProductInputFlags(cmd *cobra.Command, input *services.ProductInput, withID bool) {
	flags := cmd.Flags()
	if withID {
		flags.StringVar(&input.ID, "id", "", "product id (generated when empty)")
	}
	flags.StringVar(&input.Name, "name", "", "product name")
	flags.StringVar(&input.Price, "price", "", "unit price")
	flags.StringVar(&input.Quantity, "quantity", "", "units in stock")
	flags.StringVar(&input.Department, "department", "", "department")
	flags.StringVar(&input.Warehouse, "warehouse", "", "warehouse name")
	flags.StringVar(&input.WarehouseID, "warehouse-id", "", "warehouse id, wins over --warehouse")
}

func newProductCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"products"},
		Short:   "List and edit products",
	}

	listFilters := &productFilterFlags{}
	list := &cobra.Command{
		Use:   "list",
		Short: "List products ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := listFilters.resolve()
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				res, err := a.products.List(ctx, params)
				if err != nil {
					return err
				}
				return printProducts(cmd.OutOrStdout(), res.Products, res.Total)
			})
		},
	}
	listFilters.register(list, true)

	var addInput services.ProductInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				p, err := a.products.Create(ctx, addInput)
				if err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "product %s created with id %s", p.Name, p.ID)
				return nil
			})
		},
	}
	addProductInputFlags(add, &addInput, true)

	var updateInput services.ProductInput
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Replace every field of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updateInput.ID = args[0]
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				if err := a.products.Update(ctx, updateInput); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "product %s updated", args[0])
				return nil
			})
		},
	}
	addProductInputFlags(update, &updateInput, false)

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				if err := a.products.Delete(ctx, args[0]); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "product %s deleted", args[0])
				return nil
			})
		},
	}

	exportFilters := &productFilterFlags{}
	var out string
	exp := &cobra.Command{
		Use:   "export",
		Short: "Write the product listing to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := exportFilters.resolve()
			if err != nil {
				return err
			}
			return c.run(cmd.Context(), func(ctx context.Context, a *app) error {
				res, err := a.products.List(ctx, params)
				if err != nil {
					return err
				}
				if err := writeFile(out, func(f *os.File) error { return export.Products(f, res.Products) }); err != nil {
					return err
				}
				success(cmd.OutOrStdout(), "%d products written to %s", len(res.Products), out)
				return nil
			})
		},
	}
	exportFilters.register(exp, false)
	exp.Flags().StringVarP(&out, "out", "o", "products.xlsx", "output file")

	cmd.AddCommand(list, add, update, del, exp)
	return cmd
}
