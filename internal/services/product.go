package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/cache"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/store"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

type ProductService struct {
	store    *store.Store
	names    *cache.WarehouseNames
	identity auth.Identity
}

func NewProductService(st *store.Store, names *cache.WarehouseNames, identity auth.Identity) *ProductService {
	return &ProductService{store: st, names: names, identity: identity}
}

// ProductListParams filters a listing. Warehouse is a warehouse name; it is
// translated to an id through the name cache.
type ProductListParams struct {
	Name        string
	Department  string
	PriceMin    *decimal.Decimal
	PriceMax    *decimal.Decimal
	QuantityMin *int64
	QuantityMax *int64
	Warehouse   string
	WarehouseID string
	ID          string
	Limit       uint64
	Offset      uint64
}

type ProductListResult struct {
	Products []models.Product
	Total    int
}

// ProductInput carries a product as entered by a user. WarehouseID wins over
// Warehouse when both are set.
type ProductInput struct {
	ID          string `validate:"max=64"`
	Name        string `validate:"required,max=200"`
	Price       string `validate:"required"`
	Quantity    string `validate:"required"`
	Department  string `validate:"required"`
	Warehouse   string `validate:"required_without=WarehouseID"`
	WarehouseID string
}

func (s *ProductService) List(ctx context.Context, params ProductListParams) (*ProductListResult, error) {
	filter := store.ProductFilter{
		Name:        params.Name,
		Department:  params.Department,
		PriceMin:    params.PriceMin,
		PriceMax:    params.PriceMax,
		QuantityMin: params.QuantityMin,
		QuantityMax: params.QuantityMax,
		WarehouseID: params.WarehouseID,
		ID:          params.ID,
		Limit:       params.Limit,
		Offset:      params.Offset,
	}
	if d, ok := models.ParseDepartment(params.Department); ok {
		filter.Department = string(d)
	}
	if filter.WarehouseID == "" && strings.TrimSpace(params.Warehouse) != "" {
		id, ok := s.names.IDFor(strings.TrimSpace(params.Warehouse))
		if !ok {
			return &ProductListResult{Products: []models.Product{}}, nil
		}
		filter.WarehouseID = id
	}

	products, err := s.store.Product().ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Product().Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	if products == nil {
		products = []models.Product{}
	}
	return &ProductListResult{Products: products, Total: total}, nil
}

func (s *ProductService) Exists(ctx context.Context, id string) (bool, error) {
	return s.store.Product().Exists(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := authorize(ctx, s.identity, auth.ResourceProduct, "create products"); err != nil {
		return nil, err
	}
	form, err := s.toForm(input)
	if err != nil {
		return nil, err
	}

	p, err := s.store.Product().Insert(ctx, form)
	if err != nil {
		return nil, err
	}
	zap.S().Named("product_service").Infow("product created", "id", p.ID, "warehouse_id", p.WarehouseID, "by", p.ModifiedBy)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, input ProductInput) error {
	if err := authorize(ctx, s.identity, auth.ResourceProduct, "modify products"); err != nil {
		return err
	}
	if strings.TrimSpace(input.ID) == "" {
		return srvErrors.NewValidationErrorf("product id is required")
	}
	form, err := s.toForm(input)
	if err != nil {
		return err
	}

	if err := s.store.Product().Update(ctx, form); err != nil {
		return err
	}
	zap.S().Named("product_service").Infow("product updated", "id", form.ID)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := authorize(ctx, s.identity, auth.ResourceProduct, "delete products"); err != nil {
		return err
	}

	if err := s.store.Product().Delete(ctx, id); err != nil {
		return err
	}
	zap.S().Named("product_service").Infow("product deleted", "id", id)
	return nil
}

// toForm validates input and resolves the department label and the warehouse
// name against a single cache snapshot.
func (s *ProductService) toForm(input ProductInput) (models.ProductForm, error) {
	if err := validateStruct(input); err != nil {
		return models.ProductForm{}, err
	}

	department, ok := models.ParseDepartment(input.Department)
	if !ok {
		return models.ProductForm{}, srvErrors.NewValidationErrorf("unknown department %q", input.Department)
	}

	warehouseID := strings.TrimSpace(input.WarehouseID)
	if warehouseID == "" {
		id, ok := s.names.Snapshot().IDFor(strings.TrimSpace(input.Warehouse))
		if !ok {
			return models.ProductForm{}, srvErrors.NewValidationErrorf("unknown warehouse %q", input.Warehouse)
		}
		warehouseID = id
	}

	return models.ProductForm{
		ID:          input.ID,
		Name:        input.Name,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Department:  department,
		WarehouseID: warehouseID,
	}, nil
}
