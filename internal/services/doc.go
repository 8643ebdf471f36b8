// Package services implements the business logic layer of the inventory manager.
//
// Services sit between the outer surfaces (HTTP handlers, CLI commands) and the
// store. They check write permissions, validate input, translate warehouse
// names to ids and keep the warehouse name cache in step with the table.
//
// # Service Dependency Graph
//
//	Handlers / CLI
//	    │
//	    ▼
//	Services Layer
//	    ├── WarehouseService ──► Store, WarehouseNames, Identity
//	    ├── ProductService ────► Store, WarehouseNames, Identity
//	    └── AuthService ───────► Store, Session, PasswordHasher, Stamper
//
// # WarehouseService
//
// Every successful Create, Rename or Delete is followed by a synchronous
// WarehouseNames.Rebuild before the call returns:
//
//	authorize ──► validate ──► store write ──► cache rebuild ──► return
//	    │             │             │                │
//	Forbidden    Validation   NotFound /        error wrapped,
//	                          Constraint        write kept
//
// # ProductService
//
// Product input names its warehouse either by id or by name. Names are resolved
// against one cache snapshot; an unknown name is a ValidationError. Listings
// filtered by an unknown warehouse name return an empty page.
//
// # Permissions
//
//	┌────────────┬────────────┬────────────┐
//	│  Role      │ Warehouses │ Products   │
//	├────────────┼────────────┼────────────┤
//	│  admin     │ write      │ write      │
//	│  warehouses│ write      │ read       │
//	│  products  │ read       │ write      │
//	│  other     │ read       │ read       │
//	└────────────┴────────────┴────────────┘
//
// # AuthService
//
// Authenticate matches the user name case-insensitively, verifies the bcrypt
// hash and stamps last_login. Login additionally replaces the process session
// identity, which then drives the audit columns of later writes.
package services
