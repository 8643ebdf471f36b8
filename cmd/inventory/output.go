package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/unison/inventory-manager/internal/models"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
)

type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, header ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
	fmt.Fprintln(t.w, strings.Join(header, "\t"))
	return t
}

func (t *table) row(cells ...any) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

func (t *table) flush() error {
	return t.w.Flush()
}

func printWarehouses(out io.Writer, warehouses []models.Warehouse) error {
	if len(warehouses) == 0 {
		warnColor.Fprintln(out, "no warehouses found")
		return nil
	}
	t := newTable(out, "ID", "NAME", "CREATED", "MODIFIED", "BY")
	for _, w := range warehouses {
		t.row(w.ID, w.Name, w.CreatedAt, w.ModifiedAt, w.ModifiedBy)
	}
	return t.flush()
}

func printProducts(out io.Writer, products []models.Product, total int) error {
	if len(products) == 0 {
		warnColor.Fprintln(out, "no products found")
		return nil
	}
	t := newTable(out, "ID", "NAME", "PRICE", "QTY", "DEPARTMENT", "WAREHOUSE", "MODIFIED", "BY")
	for _, p := range products {
		t.row(p.ID, p.Name, p.PriceText(), p.Quantity, p.Department, p.WarehouseName, p.ModifiedAt, p.ModifiedBy)
	}
	if err := t.flush(); err != nil {
		return err
	}
	if total > len(products) {
		fmt.Fprintf(out, "showing %d of %d products\n", len(products), total)
	}
	return nil
}

func success(out io.Writer, format string, args ...any) {
	successColor.Fprintf(out, format+"\n", args...)
}
