// Package handlers implements the HTTP API layer of the inventory manager.
//
// Handlers delegate business logic to the services layer and focus on request
// parsing, response formatting and HTTP semantics.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Parameter parsing (api/v1)                                   │
//	│  - Error mapping to HTTP status codes                           │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Services Layer                             │
//	│  WarehouseService │ ProductService │ AuthService                │
//	└─────────────────────────────────────────────────────────────────┘
//
// The Handler implements v1.ServerInterface and is mounted with:
//
//	v1.RegisterHandlers(router, handler)
//
// # Endpoints
//
//	┌────────┬──────────────────────────┬────────────────────────────────────┐
//	│ Method │ Path                     │ Description                        │
//	├────────┼──────────────────────────┼────────────────────────────────────┤
//	│ POST   │ /login                   │ Exchange credentials for a token   │
//	│ GET    │ /warehouses              │ List (name, id filters)            │
//	│ POST   │ /warehouses              │ Create, id assigned by the store   │
//	│ GET    │ /warehouses/names        │ Cached names, sorted               │
//	│ GET    │ /warehouses/next-id      │ Preview of the next id             │
//	│ GET    │ /warehouses/export       │ xlsx download                      │
//	│ PUT    │ /warehouses/:id          │ Rename                             │
//	│ DELETE │ /warehouses/:id          │ Delete per configured policy       │
//	│ GET    │ /products                │ Filtered, paginated list           │
//	│ POST   │ /products                │ Create                             │
//	│ GET    │ /products/export         │ xlsx download of the filtered list │
//	│ PUT    │ /products/:id            │ Update                             │
//	│ DELETE │ /products/:id            │ Delete                             │
//	└────────┴──────────────────────────┴────────────────────────────────────┘
//
// Product listing query parameters: name, department, priceMin, priceMax,
// quantityMin, quantityMax, warehouse (name), warehouseId, id, page, pageSize.
//
// # Error Mapping
//
//	ResourceNotFoundError     → 404
//	ConstraintViolationError  → 409
//	FormatError               → 400
//	ValidationError           → 400
//	ForbiddenError            → 403
//	InvalidCredentialsError   → 401
//	ConnectionError           → 503
//	anything else             → 500 (logged, generic message)
package handlers
