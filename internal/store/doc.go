// Package store implements the data access layer for the inventory manager.
//
// All records live in one embedded DuckDB file. Every operation acquires its own
// connection or transaction and releases it before returning.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├─────────────────────┬─────────────────────┬─────────────────────┤
//	│   WarehouseStore    │    ProductStore     │     UserStore       │
//	│         ▼           │         ▼           │         ▼           │
//	│ warehouses          │ products            │ users               │
//	│ id_sequences        │ (LEFT JOIN          │                     │
//	│                     │  warehouses)        │                     │
//	└─────────────────────┴─────────────────────┴─────────────────────┘
//
// Tables created by migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬─────────────────────────────────────────────┐
//	│  Table             │  Purpose                                    │
//	├────────────────────┼─────────────────────────────────────────────┤
//	│  warehouses        │  Warehouse rows, unique names               │
//	│  products          │  Product rows, price as DOUBLE              │
//	│  id_sequences      │  Highest warehouse id ever issued           │
//	│  users             │  Login accounts (bcrypt hash, role)         │
//	│  schema_migrations │  Migration version tracking                 │
//	└────────────────────┴─────────────────────────────────────────────┘
//
// # Initialization Flow
//
//	NewDB(path)
//	    └── sql.Open("duckdb", path) + Ping   → ConnectionError on failure
//
//	NewStore(db, stamper, WithDeletePolicy(...))
//	    └── Initializes all sub-stores
//
//	Store.CreateSchema(ctx)          → SchemaError on failure
//	Store.SeedInitialWarehouses(ctx) → 1 Hermosillo … 5 Nogales, if missing
//
// # WarehouseStore
//
// Ids are numeric strings assigned as
//
//	max(largest numeric id stored, id_sequences.last_value) + 1
//
// inside the insert transaction while holding an in-process mutex, so an id is
// never handed out twice and never reused after a delete.
//
// Delete follows the configured policy:
//
//	orphan   → delete the warehouse only; products show "Unknown"
//	restrict → ConstraintViolationError while products reference it
//	cascade  → delete its products in the same transaction
//
// # ProductStore
//
// Price and quantity arrive as text (models.ProductForm) and are parsed here; a
// malformed or negative value is a FormatError. The referenced warehouse must
// exist when the row is written, otherwise ConstraintViolationError.
//
// Listing query:
//
//	SELECT p.*, w.name AS warehouse_name
//	FROM products p
//	LEFT JOIN warehouses w ON p.warehouse_id = w.id
//	WHERE ... ORDER BY p.name, p.id
//
// # List Options
//
// Listings use the functional options pattern. WarehouseFilter and ProductFilter
// translate structured filters into options, one predicate and one bound value
// per set field:
//
//	products, err := store.Product().List(ctx,
//	    store.ProductByName("chair"),
//	    store.ProductByWarehouse("2"),
//	    store.WithLimit(50),
//	)
//
//	┌──────────────────────────┬──────────────────────────────────────┐
//	│  Option                  │  Predicate                           │
//	├──────────────────────────┼──────────────────────────────────────┤
//	│  WarehouseByName         │  name ILIKE '%v%'                    │
//	│  WarehouseByID           │  id = v                              │
//	│  ProductByName           │  p.name ILIKE '%v%'                  │
//	│  ProductByDepartment     │  lower(p.department) = lower(v)      │
//	│  ProductByMin/MaxPrice   │  p.price >= v / p.price <= v         │
//	│  ProductByMin/MaxQuantity│  p.quantity >= v / p.quantity <= v   │
//	│  ProductByWarehouse      │  p.warehouse_id = v                  │
//	│  ProductByID             │  p.id = v                            │
//	└──────────────────────────┴──────────────────────────────────────┘
//
// # Error Mapping
//
//	zero rows updated/deleted       → ResourceNotFoundError
//	unique / primary key conflict   → ConstraintViolationError
//	missing warehouse on product    → ConstraintViolationError
//	unparsable price or quantity    → FormatError
//
// # Query Logging
//
// QueryInterceptor wraps each connection and transaction, logging statements at
// debug level under the "store" logger and recording their latency.
package store
