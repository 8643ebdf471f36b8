package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/cache"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/store"
)

type WarehouseService struct {
	store    *store.Store
	names    *cache.WarehouseNames
	identity auth.Identity
}

func NewWarehouseService(st *store.Store, names *cache.WarehouseNames, identity auth.Identity) *WarehouseService {
	return &WarehouseService{store: st, names: names, identity: identity}
}

type WarehouseListParams struct {
	Name   string
	ID     string
	Limit  uint64
	Offset uint64
}

type warehouseInput struct {
	Name string `validate:"required,max=120"`
}

func (s *WarehouseService) List(ctx context.Context, params WarehouseListParams) ([]models.Warehouse, error) {
	return s.store.Warehouse().ListFiltered(ctx, store.WarehouseFilter{
		Name:   params.Name,
		ID:     params.ID,
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// NextID previews the id the next Create would assign.
func (s *WarehouseService) NextID(ctx context.Context) (string, error) {
	return s.store.Warehouse().NextID(ctx)
}

// Names returns every warehouse name, sorted, from the cache.
func (s *WarehouseService) Names() []string {
	return s.names.AllNames()
}

func (s *WarehouseService) Create(ctx context.Context, name string) (*models.Warehouse, error) {
	if err := authorize(ctx, s.identity, auth.ResourceWarehouse, "create warehouses"); err != nil {
		return nil, err
	}
	if err := validateStruct(warehouseInput{Name: name}); err != nil {
		return nil, err
	}

	w, err := s.store.Warehouse().Insert(ctx, name, s.identity.CurrentUserName(ctx))
	if err != nil {
		return nil, err
	}
	zap.S().Named("warehouse_service").Infow("warehouse created", "id", w.ID, "name", w.Name, "by", w.ModifiedBy)

	return w, s.rebuild(ctx)
}

func (s *WarehouseService) Rename(ctx context.Context, id, name string) error {
	if err := authorize(ctx, s.identity, auth.ResourceWarehouse, "modify warehouses"); err != nil {
		return err
	}
	if err := validateStruct(warehouseInput{Name: name}); err != nil {
		return err
	}

	if err := s.store.Warehouse().Update(ctx, id, name, s.identity.CurrentUserName(ctx)); err != nil {
		return err
	}
	zap.S().Named("warehouse_service").Infow("warehouse renamed", "id", id, "name", name)

	return s.rebuild(ctx)
}

func (s *WarehouseService) Delete(ctx context.Context, id string) error {
	if err := authorize(ctx, s.identity, auth.ResourceWarehouse, "delete warehouses"); err != nil {
		return err
	}

	if err := s.store.Warehouse().Delete(ctx, id); err != nil {
		return err
	}
	zap.S().Named("warehouse_service").Infow("warehouse deleted", "id", id, "policy", s.store.Warehouse().Policy())

	return s.rebuild(ctx)
}

// rebuild refreshes the name cache after a committed write. A failure is
// reported to the caller even though the write itself stands.
func (s *WarehouseService) rebuild(ctx context.Context) error {
	if err := s.names.Rebuild(ctx); err != nil {
		return fmt.Errorf("warehouse saved but name cache is stale: %w", err)
	}
	return nil
}
