package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Department is the stored department label.
type Department string

const (
	DepartmentMaterials  Department = "Materiales"
	DepartmentFurniture  Department = "Mobiliario"
	Department3DPrinting Department = "Impresion3D"
	DepartmentComputing  Department = "Computación"
)

var departmentAliases = map[string]Department{
	"materiales":  DepartmentMaterials,
	"materials":   DepartmentMaterials,
	"mobiliario":  DepartmentFurniture,
	"furniture":   DepartmentFurniture,
	"impresion3d": Department3DPrinting,
	"3d-printing": Department3DPrinting,
	"computación": DepartmentComputing,
	"computacion": DepartmentComputing,
	"computing":   DepartmentComputing,
}

// Departments returns the fixed department list in display order.
func Departments() []Department {
	return []Department{DepartmentMaterials, DepartmentFurniture, Department3DPrinting, DepartmentComputing}
}

// ParseDepartment accepts the stored label or its English alias, case-insensitively.
func ParseDepartment(s string) (Department, bool) {
	d, ok := departmentAliases[strings.ToLower(strings.TrimSpace(s))]
	return d, ok
}

// Product is a product row joined with the name of its warehouse.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	Department    Department      `json:"department"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	CreatedAt     string          `json:"created_at"`
	ModifiedAt    string          `json:"modified_at"`
	ModifiedBy    string          `json:"modified_by"`
}

// PriceText renders the price with at least two decimals without dropping any
// stored digit: 10.5 is "10.50", 19.999 stays "19.999".
func (p Product) PriceText() string {
	if p.Price.Exponent() >= -2 {
		return p.Price.StringFixed(2)
	}
	return p.Price.String()
}

// ProductForm carries product values as the user typed them. Price and Quantity
// are parsed by the store.
type ProductForm struct {
	ID          string
	Name        string
	Price       string
	Quantity    string
	Department  Department
	WarehouseID string
}
