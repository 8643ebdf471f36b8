// Package export writes inventory listings as xlsx workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/unison/inventory-manager/internal/models"
)

const (
	ProductsSheet   = "Products"
	WarehousesSheet = "Warehouses"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	productHeader   = []any{"ID", "Name", "Price", "Quantity", "Department", "Warehouse ID", "Warehouse", "Created", "Modified", "Modified by"}
	warehouseHeader = []any{"ID", "Name", "Created", "Modified", "Modified by"}
)

// Products writes one worksheet with a header row and one row per product.
func Products(w io.Writer, products []models.Product) error {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.ID,
			p.Name,
			p.Price.InexactFloat64(),
			p.Quantity,
			string(p.Department),
			p.WarehouseID,
			p.WarehouseName,
			p.CreatedAt,
			p.ModifiedAt,
			p.ModifiedBy,
		})
	}
	return write(w, ProductsSheet, productHeader, rows)
}

func Warehouses(w io.Writer, warehouses []models.Warehouse) error {
	rows := make([][]any, 0, len(warehouses))
	for _, wh := range warehouses {
		rows = append(rows, []any{wh.ID, wh.Name, wh.CreatedAt, wh.ModifiedAt, wh.ModifiedBy})
	}
	return write(w, WarehousesSheet, warehouseHeader, rows)
}

func write(w io.Writer, sheet string, header []any, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
