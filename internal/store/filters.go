package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsLike matches v as a literal, case-insensitive substring of column.
func containsLike(column, v string) sq.Sqlizer {
	return sq.Expr(column+` ILIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(v)+"%")
}

// WarehouseFilter narrows a warehouse listing. Zero-valued fields are ignored.
type WarehouseFilter struct {
	Name   string
	ID     string
	Limit  uint64
	Offset uint64
}

// Options returns one ListOption per set field, in field order, followed by paging.
func (f WarehouseFilter) Options() []ListOption {
	return append(f.predicates(), paging(f.Limit, f.Offset)...)
}

func (f WarehouseFilter) predicates() []ListOption {
	var opts []ListOption
	if v := strings.TrimSpace(f.Name); v != "" {
		opts = append(opts, WarehouseByName(v))
	}
	if v := strings.TrimSpace(f.ID); v != "" {
		opts = append(opts, WarehouseByID(v))
	}
	return opts
}

// ProductFilter narrows a product listing. Zero-valued fields and nil bounds are ignored.
type ProductFilter struct {
	Name        string
	Department  string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	QuantityMin *int64
	QuantityMax *int64
	WarehouseID string
	ID          string
	Limit       uint64
	Offset      uint64
}

func (f ProductFilter) Options() []ListOption {
	return append(f.predicates(), paging(f.Limit, f.Offset)...)
}

func (f ProductFilter) predicates() []ListOption {
	var opts []ListOption
	if v := strings.TrimSpace(f.Name); v != "" {
		opts = append(opts, ProductByName(v))
	}
	if v := strings.TrimSpace(f.Department); v != "" {
		opts = append(opts, ProductByDepartment(v))
	}
	if f.PriceMin != nil {
		opts = append(opts, ProductByMinPrice(*f.PriceMin))
	}
	if f.PriceMax != nil {
		opts = append(opts, ProductByMaxPrice(*f.PriceMax))
	}
	if f.QuantityMin != nil {
		opts = append(opts, ProductByMinQuantity(*f.QuantityMin))
	}
	if f.QuantityMax != nil {
		opts = append(opts, ProductByMaxQuantity(*f.QuantityMax))
	}
	if v := strings.TrimSpace(f.WarehouseID); v != "" {
		opts = append(opts, ProductByWarehouse(v))
	}
	if v := strings.TrimSpace(f.ID); v != "" {
		opts = append(opts, ProductByID(v))
	}
	return opts
}

func paging(limit, offset uint64) []ListOption {
	var opts []ListOption
	if limit > 0 {
		opts = append(opts, WithLimit(limit))
	}
	if offset > 0 {
		opts = append(opts, WithOffset(offset))
	}
	return opts
}

func WarehouseByName(name string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(containsLike("name", name))
	}
}

func WarehouseByID(id string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"id": id})
	}
}

func ProductByName(name string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(containsLike("p.name", name))
	}
}

func ProductByDepartment(department string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Expr("lower(p.department) = lower(?)", department))
	}
}

// ProductByMinPrice binds the bound as a float64 to match the DOUBLE column.
func ProductByMinPrice(min decimal.Decimal) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.GtOrEq{"p.price": min.InexactFloat64()})
	}
}

func ProductByMaxPrice(max decimal.Decimal) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.LtOrEq{"p.price": max.InexactFloat64()})
	}
}

func ProductByMinQuantity(min int64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.GtOrEq{"p.quantity": min})
	}
}

func ProductByMaxQuantity(max int64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.LtOrEq{"p.quantity": max})
	}
}

func ProductByWarehouse(warehouseID string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"p.warehouse_id": warehouseID})
	}
}

func ProductByID(id string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"p.id": id})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

// WithWarehouseSort orders numerically by id; non-numeric ids sort last, by text.
func WithWarehouseSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("TRY_CAST(id AS BIGINT)", "id")
	}
}

func WithProductSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("p.name", "p.id")
	}
}

func warehouseSelect() sq.SelectBuilder {
	return sq.Select("id", "name", "created_at", "modified_at", "modified_by").From("warehouses")
}

func productSelect() sq.SelectBuilder {
	return sq.Select(
		"p.id",
		"p.name",
		"p.price",
		"p.quantity",
		"p.department",
		"p.warehouse_id",
		"w.name AS warehouse_name",
		"p.created_at",
		"p.modified_at",
		"p.modified_by",
	).From("products p").
		LeftJoin("warehouses w ON p.warehouse_id = w.id")
}

func apply(b sq.SelectBuilder, opts []ListOption) sq.SelectBuilder {
	for _, opt := range opts {
		b = opt(b)
	}
	return b
}

// BuildWarehouseQuery renders the ordered warehouse listing for f.
func BuildWarehouseQuery(f WarehouseFilter) (string, []any, error) {
	b := apply(warehouseSelect(), f.Options())
	return WithWarehouseSort()(b).ToSql()
}

// BuildProductQuery renders the ordered product listing for f, joined with
// the owning warehouse name.
func BuildProductQuery(f ProductFilter) (string, []any, error) {
	b := apply(productSelect(), f.Options())
	return WithProductSort()(b).ToSql()
}

// BuildProductCountQuery counts the rows BuildProductQuery would return without paging.
func BuildProductCountQuery(f ProductFilter) (string, []any, error) {
	b := apply(sq.Select("COUNT(*)").From("products p"), f.predicates())
	return b.ToSql()
}
