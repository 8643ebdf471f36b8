package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unison/inventory-manager/internal/audit"
	"github.com/unison/inventory-manager/internal/models"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

const productResource = "product"

// ProductStore handles product rows. Every write checks that the referenced
// warehouse exists inside the same transaction.
type ProductStore struct {
	db      *sql.DB
	stamper *audit.Stamper
}

func NewProductStore(db *sql.DB, stamper *audit.Stamper) *ProductStore {
	return &ProductStore{db: db, stamper: stamper}
}

// List returns products matching opts ordered by name, each carrying the name of
// its warehouse or models.UnknownWarehouse when the reference does not resolve.
func (s *ProductStore) List(ctx context.Context, opts ...ListOption) ([]models.Product, error) {
	builder := apply(productSelect(), opts)
	builder = WithProductSort()(builder)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	err = withConn(ctx, s.db, func(q QueryInterceptor) error {
		rows, err := q.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				p                                 models.Product
				price                             float64
				department                        string
				warehouseID, warehouseName        sql.NullString
				createdAt, modifiedAt, modifiedBy sql.NullString
			)
			err := rows.Scan(
				&p.ID,
				&p.Name,
				&price,
				&p.Quantity,
				&department,
				&warehouseID,
				&warehouseName,
				&createdAt,
				&modifiedAt,
				&modifiedBy,
			)
			if err != nil {
				return err
			}
			p.Price = decimal.NewFromFloat(price)
			p.Department = models.Department(department)
			p.WarehouseID = warehouseID.String
			p.WarehouseName = models.UnknownWarehouse
			if warehouseName.Valid {
				p.WarehouseName = warehouseName.String
			}
			p.CreatedAt = createdAt.String
			p.ModifiedAt = modifiedAt.String
			p.ModifiedBy = modifiedBy.String
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (s *ProductStore) ListFiltered(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	return s.List(ctx, filter.Options()...)
}

// Count ignores the filter's paging.
func (s *ProductStore) Count(ctx context.Context, filter ProductFilter) (int, error) {
	query, args, err := BuildProductCountQuery(filter)
	if err != nil {
		return 0, err
	}

	var count int
	err = withConn(ctx, s.db, func(q QueryInterceptor) error {
		return q.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	return count, err
}

// Exists reports whether id is taken. A blank id never exists.
func (s *ProductStore) Exists(ctx context.Context, id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}

	var n int
	err := withConn(ctx, s.db, func(q QueryInterceptor) error {
		return q.QueryRowContext(ctx, queryProductExists, id).Scan(&n)
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert stores a new product. A blank form id is replaced by a random UUID.
func (s *ProductStore) Insert(ctx context.Context, form models.ProductForm) (*models.Product, error) {
	p, err := parseProductForm(form)
	if err != nil {
		return nil, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	stamp := s.stamper.Stamp(ctx)
	p.CreatedAt = stamp.At
	p.ModifiedAt = stamp.At
	p.ModifiedBy = stamp.User

	err = withTx(ctx, s.db, func(q QueryInterceptor) error {
		name, err := requireWarehouse(ctx, q, p.WarehouseID)
		if err != nil {
			return err
		}
		p.WarehouseName = name

		_, err = q.ExecContext(ctx, queryInsertProduct,
			p.ID,
			p.Name,
			p.Price.InexactFloat64(),
			p.Quantity,
			string(p.Department),
			p.WarehouseID,
			p.CreatedAt,
			p.ModifiedAt,
			p.ModifiedBy,
		)
		return err
	})
	if err != nil {
		return nil, classifyWriteError(productResource, err)
	}

	return p, nil
}

// Update overwrites every editable column of the product named by form.ID.
// The creation stamp is left untouched.
func (s *ProductStore) Update(ctx context.Context, form models.ProductForm) error {
	p, err := parseProductForm(form)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return srvErrors.NewProductNotFoundError("")
	}

	stamp := s.stamper.Stamp(ctx)
	err = withTx(ctx, s.db, func(q QueryInterceptor) error {
		// An unknown product is reported before its warehouse reference.
		var n int
		if err := q.QueryRowContext(ctx, queryProductExists, p.ID).Scan(&n); err != nil {
			return err
		}
		if n == 0 {
			return srvErrors.NewProductNotFoundError(p.ID)
		}

		if _, err := requireWarehouse(ctx, q, p.WarehouseID); err != nil {
			return err
		}

		res, err := q.ExecContext(ctx, queryUpdateProduct,
			p.Name,
			p.Price.InexactFloat64(),
			p.Quantity,
			string(p.Department),
			p.WarehouseID,
			stamp.At,
			stamp.User,
			p.ID,
		)
		if err != nil {
			return err
		}
		return expectAffected(res, srvErrors.NewProductNotFoundError(p.ID))
	})
	return classifyWriteError(productResource, err)
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	err := withTx(ctx, s.db, func(q QueryInterceptor) error {
		res, err := q.ExecContext(ctx, queryDeleteProduct, id)
		if err != nil {
			return err
		}
		return expectAffected(res, srvErrors.NewProductNotFoundError(id))
	})
	return classifyWriteError(productResource, err)
}

func requireWarehouse(ctx context.Context, q QueryInterceptor, id string) (string, error) {
	if id == "" {
		return "", srvErrors.NewConstraintViolationError(productResource, "warehouse is required", nil)
	}

	var name string
	err := q.QueryRowContext(ctx, queryWarehouseName, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", srvErrors.NewConstraintViolationError(productResource,
			fmt.Sprintf("warehouse %q does not exist", id), nil)
	}
	return name, err
}

// parseProductForm converts the text fields of form. Price and quantity must be
// non-negative numbers.
func parseProductForm(form models.ProductForm) (*models.Product, error) {
	rawPrice := strings.TrimSpace(form.Price)
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, srvErrors.NewFormatError("price", form.Price, err)
	}
	if price.IsNegative() {
		return nil, srvErrors.NewFormatError("price", form.Price, errors.New("must not be negative"))
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(form.Quantity), 10, 64)
	if err != nil {
		return nil, srvErrors.NewFormatError("quantity", form.Quantity, err)
	}
	if quantity < 0 {
		return nil, srvErrors.NewFormatError("quantity", form.Quantity, errors.New("must not be negative"))
	}

	return &models.Product{
		ID:          strings.TrimSpace(form.ID),
		Name:        strings.TrimSpace(form.Name),
		Price:       price,
		Quantity:    quantity,
		Department:  form.Department,
		WarehouseID: strings.TrimSpace(form.WarehouseID),
	}, nil
}
