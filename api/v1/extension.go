package v1

import (
	"net/url"
	"strconv"

	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/services"
	"github.com/unison/inventory-manager/internal/util"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPageNumber keeps the computed offset well inside int range.
	MaxPageNumber = 1_000_000
)

func NewWarehouseFromModel(w models.Warehouse) Warehouse {
	return Warehouse{
		Id:         w.ID,
		Name:       w.Name,
		CreatedAt:  w.CreatedAt,
		ModifiedAt: w.ModifiedAt,
		ModifiedBy: w.ModifiedBy,
	}
}

func NewProductFromModel(p models.Product) Product {
	return Product{
		Id:          p.ID,
		Name:        p.Name,
		Price:       p.PriceText(),
		Quantity:    p.Quantity,
		Department:  string(p.Department),
		WarehouseId: p.WarehouseID,
		Warehouse:   p.WarehouseName,
		CreatedAt:   p.CreatedAt,
		ModifiedAt:  p.ModifiedAt,
		ModifiedBy:  p.ModifiedBy,
	}
}

func (p ProductWrite) ToInput() services.ProductInput {
	return services.ProductInput{
		ID:          p.Id,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Department:  p.Department,
		Warehouse:   p.Warehouse,
		WarehouseID: p.WarehouseId,
	}
}

// Page is the resolved pagination of a listing request.
type Page struct {
	Number int
	Size   int
}

func (p Page) Limit() uint64  { return uint64(p.Size) }
func (p Page) Offset() uint64 { return uint64((p.Number - 1) * p.Size) }

// PageCount is at least 1 so an empty listing still reports one page.
func (p Page) PageCount(total int) int {
	count := (total + p.Size - 1) / p.Size
	if count == 0 {
		return 1
	}
	return count
}

// ParsePage reads page and pageSize, clamping them to MaxPageNumber and MaxPageSize.
func ParsePage(q url.Values) Page {
	page := Page{Number: 1, Size: DefaultPageSize}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		page.Number = min(n, MaxPageNumber)
	}
	if n, err := strconv.Atoi(q.Get("pageSize")); err == nil && n > 0 {
		page.Size = min(n, MaxPageSize)
	}
	return page
}

func ParseWarehouseListParams(q url.Values) services.WarehouseListParams {
	return services.WarehouseListParams{
		Name: q.Get("name"),
		ID:   q.Get("id"),
	}
}

// ParseProductListParams maps query parameters onto a product listing. An
// unparsable bound is a ValidationError.
func ParseProductListParams(q url.Values) (services.ProductListParams, error) {
	params := services.ProductListParams{
		Name:        q.Get("name"),
		Department:  q.Get("department"),
		Warehouse:   q.Get("warehouse"),
		WarehouseID: q.Get("warehouseId"),
		ID:          q.Get("id"),
	}

	var err error
	if params.PriceMin, err = util.OptionalDecimal("priceMin", q.Get("priceMin")); err != nil {
		return params, err
	}
	if params.PriceMax, err = util.OptionalDecimal("priceMax", q.Get("priceMax")); err != nil {
		return params, err
	}
	if params.QuantityMin, err = util.OptionalInt64("quantityMin", q.Get("quantityMin")); err != nil {
		return params, err
	}
	if params.QuantityMax, err = util.OptionalInt64("quantityMax", q.Get("quantityMax")); err != nil {
		return params, err
	}

	page := ParsePage(q)
	params.Limit = page.Limit()
	params.Offset = page.Offset()
	return params, nil
}
