package store

import (
	"context"
	"database/sql"

	"github.com/unison/inventory-manager/internal/audit"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/store/migrations"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

// Store provides access to all storage repositories.
type Store struct {
	db         *sql.DB
	warehouses *WarehouseStore
	products   *ProductStore
	users      *UserStore
}

type options struct {
	policy models.DeletePolicy
}

type Option func(*options)

// WithDeletePolicy selects what happens to products when their warehouse is deleted.
func WithDeletePolicy(p models.DeletePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

func NewStore(db *sql.DB, stamper *audit.Stamper, opts ...Option) *Store {
	o := options{policy: models.DeletePolicyOrphan}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store{
		db:         db,
		warehouses: NewWarehouseStore(db, stamper, o.policy),
		products:   NewProductStore(db, stamper),
		users:      NewUserStore(db),
	}
}

func (s *Store) Warehouse() *WarehouseStore {
	return s.warehouses
}

func (s *Store) Product() *ProductStore {
	return s.products
}

func (s *Store) User() *UserStore {
	return s.users
}

// CreateSchema applies pending migrations. Any failure is a SchemaError.
func (s *Store) CreateSchema(ctx context.Context) error {
	if err := migrations.Run(ctx, s.db); err != nil {
		return srvErrors.NewSchemaError(err)
	}
	return nil
}

// SeedInitialWarehouses writes the baseline warehouses that are still missing.
func (s *Store) SeedInitialWarehouses(ctx context.Context) error {
	return s.warehouses.Seed(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
