// Package config defines the configuration structure for the inventory manager.
//
// Configuration is organized into logical sections (Server, Database, Auth,
// Inventory). Defaults come from `default` struct tags applied by
// creasty/defaults; viper overlays environment variables (INVENTORY_ prefix),
// command-line flags bound by the CLI and an optional .env file.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── Database       - Embedded database file
//	├── Auth           - Login and API token settings
//	├── Inventory      - Record semantics (delete policy, audit zone, seeding)
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Database Configuration
//
//	┌──────────────────┬────────────────────┬─────────────────────────────────────┐
//	│ Field            │ Default            │ Description                         │
//	├──────────────────┼────────────────────┼─────────────────────────────────────┤
//	│ Path             │ "inventory.duckdb" │ Database file, ":memory:" for tests │
//	│ OpenTimeout      │ 10s                │ How long to retry a locked file     │
//	└──────────────────┴────────────────────┴─────────────────────────────────────┘
//
// # Authentication Configuration
//
//	┌─────────────┬─────────┬────────────────────────────────────────┐
//	│ Field       │ Default │ Description                            │
//	├─────────────┼─────────┼────────────────────────────────────────┤
//	│ Enabled     │ true    │ Require a bearer token on API writes   │
//	│ JWTSecret   │ ""      │ HS256 signing secret                   │
//	│ TokenTTL    │ 12h     │ Lifetime of issued tokens              │
//	│ BcryptCost  │ 10      │ Cost for newly hashed passwords        │
//	└─────────────┴─────────┴────────────────────────────────────────┘
//
// # Inventory Configuration
//
//	┌────────────────┬───────────────────┬──────────────────────────────────────┐
//	│ Field          │ Default           │ Description                          │
//	├────────────────┼───────────────────┼──────────────────────────────────────┤
//	│ DeletePolicy   │ "orphan"          │ orphan, restrict or cascade          │
//	│ TimeZone       │ "America/Phoenix" │ Zone of audit timestamps             │
//	│ SeedWarehouses │ true              │ Seed the baseline warehouses         │
//	└────────────────┴───────────────────┴──────────────────────────────────────┘
//
// # Usage Example
//
//	v := config.NewViper()
//	_ = v.BindPFlag("database.path", cmd.Flags().Lookup("db"))
//	cfg, err := config.Load(v)
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
// # Debug Logging
//
// DebugMap returns every setting with the JWT secret masked:
//
//	zap.S().Infow("configuration loaded", "config", cfg.DebugMap())
package config
