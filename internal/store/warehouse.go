package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/unison/inventory-manager/internal/audit"
	"github.com/unison/inventory-manager/internal/models"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

const warehouseResource = "warehouse"

// seedWarehouses is the baseline written by SeedInitialWarehouses.
var seedWarehouses = []models.Warehouse{
	{ID: "1", Name: "Hermosillo"},
	{ID: "2", Name: "Caborca"},
	{ID: "3", Name: "Guaymas"},
	{ID: "4", Name: "Sonoita"},
	{ID: "5", Name: "Nogales"},
}

// WarehouseStore handles warehouse rows and id assignment.
type WarehouseStore struct {
	db      *sql.DB
	stamper *audit.Stamper
	policy  models.DeletePolicy

	// idMu serializes id assignment within the process.
	idMu sync.Mutex
}

func NewWarehouseStore(db *sql.DB, stamper *audit.Stamper, policy models.DeletePolicy) *WarehouseStore {
	return &WarehouseStore{db: db, stamper: stamper, policy: policy}
}

// Policy returns the delete policy applied by Delete.
func (s *WarehouseStore) Policy() models.DeletePolicy {
	return s.policy
}

// List returns the warehouses matching opts, ordered by numeric id.
func (s *WarehouseStore) List(ctx context.Context, opts ...ListOption) ([]models.Warehouse, error) {
	builder := apply(warehouseSelect(), opts)
	builder = WithWarehouseSort()(builder)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var warehouses []models.Warehouse
	err = withConn(ctx, s.db, func(q QueryInterceptor) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var w models.Warehouse
			var createdAt, modifiedAt, modifiedBy sql.NullString
			if err := rows.Scan(&w.ID, &w.Name, &createdAt, &modifiedAt, &modifiedBy); err != nil {
				return err
			}
			w.CreatedAt = createdAt.String
			w.ModifiedAt = modifiedAt.String
			w.ModifiedBy = modifiedBy.String
			warehouses = append(warehouses, w)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return warehouses, nil
}

// AllWarehouses lists every warehouse. It feeds the warehouse name cache.
func (s *WarehouseStore) AllWarehouses(ctx context.Context) ([]models.Warehouse, error) {
	return s.List(ctx)
}

// ListFiltered is List with a structured filter.
func (s *WarehouseStore) ListFiltered(ctx context.Context, filter WarehouseFilter) ([]models.Warehouse, error) {
	return s.List(ctx, filter.Options()...)
}

// Exists reports whether a warehouse with id is stored.
func (s *WarehouseStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := withConn(ctx, s.db, func(q QueryInterceptor) error {
		var err error
		exists, err = warehouseExists(ctx, q, id)
		return err
	})
	return exists, err
}

// NextID returns the id the next Insert would assign. It is informational
// only; Insert computes the id again inside its transaction.
func (s *WarehouseStore) NextID(ctx context.Context) (string, error) {
	var next int64
	err := withConn(ctx, s.db, func(q QueryInterceptor) error {
		var err error
		next, err = nextWarehouseID(ctx, q)
		return err
	})
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(next, 10), nil
}

// Insert assigns the next id and stores a new warehouse. Both the creation and
// modification stamps carry the same instant.
func (s *WarehouseStore) Insert(ctx context.Context, name, actingUser string) (*models.Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, srvErrors.NewConstraintViolationError(warehouseResource, "name must not be empty", nil)
	}

	s.idMu.Lock()
	defer s.idMu.Unlock()

	stamp := s.stamper.StampAs(actingUser)
	w := &models.Warehouse{
		Name:       name,
		CreatedAt:  stamp.At,
		ModifiedAt: stamp.At,
		ModifiedBy: stamp.User,
	}

	err := withTx(ctx, s.db, func(q QueryInterceptor) error {
		next, err := nextWarehouseID(ctx, q)
		if err != nil {
			return err
		}
		w.ID = strconv.FormatInt(next, 10)

		if _, err := q.ExecContext(ctx, queryInsertWarehouse, w.ID, w.Name, w.CreatedAt, w.ModifiedAt, w.ModifiedBy); err != nil {
			return err
		}
		_, err = q.ExecContext(ctx, queryBumpWarehouseSequence, next)
		return err
	})
	if err != nil {
		return nil, classifyWriteError(warehouseResource, fmt.Errorf("insert warehouse %q: %w", name, err))
	}

	return w, nil
}

// Update renames the warehouse with id.
func (s *WarehouseStore) Update(ctx context.Context, id, name, actingUser string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return srvErrors.NewConstraintViolationError(warehouseResource, "name must not be empty", nil)
	}

	stamp := s.stamper.StampAs(actingUser)
	err := withTx(ctx, s.db, func(q QueryInterceptor) error {
		res, err := q.ExecContext(ctx, queryUpdateWarehouse, name, stamp.At, stamp.User, id)
		if err != nil {
			return err
		}
		return expectAffected(res, srvErrors.NewWarehouseNotFoundError(id))
	})
	return classifyWriteError(warehouseResource, err)
}

// Delete removes the warehouse with id, handling its products according to the
// store's delete policy.
func (s *WarehouseStore) Delete(ctx context.Context, id string) error {
	err := withTx(ctx, s.db, func(q QueryInterceptor) error {
		switch s.policy {
		case models.DeletePolicyRestrict:
			var n int
			if err := q.QueryRowContext(ctx, queryCountProductsInWarehouse, id).Scan(&n); err != nil {
				return err
			}
			if n > 0 {
				return srvErrors.NewConstraintViolationError(warehouseResource,
					fmt.Sprintf("warehouse %q still holds %d products", id, n), nil)
			}
		case models.DeletePolicyCascade:
			if _, err := q.ExecContext(ctx, queryDeleteProductsInWarehouse, id); err != nil {
				return err
			}
		}

		res, err := q.ExecContext(ctx, queryDeleteWarehouse, id)
		if err != nil {
			return err
		}
		return expectAffected(res, srvErrors.NewWarehouseNotFoundError(id))
	})
	return classifyWriteError(warehouseResource, err)
}

// Seed writes the baseline warehouses that are missing. A seed whose id was
// already issued once is skipped, so deleting a seeded warehouse is permanent.
func (s *WarehouseStore) Seed(ctx context.Context) error {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	stamp := s.stamper.StampAs(audit.SystemUser)
	return withTx(ctx, s.db, func(q QueryInterceptor) error {
		var issued int64
		if err := q.QueryRowContext(ctx, queryWarehouseSequence).Scan(&issued); err != nil {
			return err
		}

		var highest int64
		for _, w := range seedWarehouses {
			id, _ := strconv.ParseInt(w.ID, 10, 64)
			highest = max(highest, id)
			if id <= issued {
				continue
			}
			_, err := q.ExecContext(ctx, querySeedWarehouse,
				w.ID, w.Name, stamp.At, stamp.At, stamp.User,
				w.ID, w.Name)
			if err != nil {
				return fmt.Errorf("seed warehouse %q: %w", w.Name, err)
			}
		}

		if highest <= issued {
			return nil
		}
		_, err := q.ExecContext(ctx, queryBumpWarehouseSequence, highest)
		return err
	})
}

func warehouseExists(ctx context.Context, q QueryInterceptor, id string) (bool, error) {
	var n int
	if err := q.QueryRowContext(ctx, queryWarehouseExists, id).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// nextWarehouseID is one above both the largest numeric id stored and the
// largest id ever issued.
func nextWarehouseID(ctx context.Context, q QueryInterceptor) (int64, error) {
	var stored, issued int64
	if err := q.QueryRowContext(ctx, queryMaxWarehouseID).Scan(&stored); err != nil {
		return 0, err
	}
	if err := q.QueryRowContext(ctx, queryWarehouseSequence).Scan(&issued); err != nil {
		return 0, err
	}
	return max(stored, issued) + 1, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
