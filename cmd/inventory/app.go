package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/audit"
	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/cache"
	"github.com/unison/inventory-manager/internal/config"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/services"
	"github.com/unison/inventory-manager/internal/store"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

// app is the wired object graph shared by every command.
type app struct {
	cfg        *config.Configuration
	store      *store.Store
	session    *auth.Session
	identity   *auth.ContextIdentity
	stamper    *audit.Stamper
	names      *cache.WarehouseNames
	warehouses *services.WarehouseService
	products   *services.ProductService
	auth       *services.AuthService
}

// openDB retries while the file is locked by another process, up to timeout.
func openDB(ctx context.Context, path string, timeout time.Duration) (*sql.DB, error) {
	return backoff.Retry(ctx, func() (*sql.DB, error) {
		db, err := store.NewDB(path)
		if err != nil {
			if srvErrors.IsConnectionError(err) {
				zap.S().Named("cli").Warnw("database not available, retrying", "path", path, "error", err)
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return db, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxElapsedTime(timeout))
}

// openApp opens the database, applies migrations, seeds the baseline when
// configured and warms the warehouse name cache.
func (c *cli) openApp(ctx context.Context) (*app, error) {
	cfg := c.cfg

	db, err := openDB(ctx, cfg.Database.Path, cfg.Database.OpenTimeout)
	if err != nil {
		return nil, err
	}

	session := auth.NewSession()
	identity := auth.NewContextIdentity(session)
	stamper, err := audit.NewStamper(identity, cfg.Inventory.TimeZone)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	policy, _ := models.ParseDeletePolicy(cfg.Inventory.DeletePolicy)
	st := store.NewStore(db, stamper, store.WithDeletePolicy(policy))

	a := &app{
		cfg:      cfg,
		store:    st,
		session:  session,
		identity: identity,
		stamper:  stamper,
		names:    cache.NewWarehouseNames(st.Warehouse()),
	}
	a.warehouses = services.NewWarehouseService(st, a.names, identity)
	a.products = services.NewProductService(st, a.names, identity)
	a.auth = services.NewAuthService(st, session, auth.NewBcryptVerifier(cfg.Auth.BcryptCost), stamper)

	if err := a.prepare(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	if c.user != "" {
		if _, err := a.auth.Login(ctx, c.user, c.password); err != nil {
			_ = a.Close()
			return nil, err
		}
	}

	return a, nil
}

func (a *app) prepare(ctx context.Context) error {
	if err := a.store.CreateSchema(ctx); err != nil {
		return err
	}
	if a.cfg.Inventory.SeedWarehouses {
		if err := a.store.SeedInitialWarehouses(ctx); err != nil {
			return err
		}
	}
	return a.names.Rebuild(ctx)
}

func (a *app) Close() error {
	return a.store.Close()
}

// localAdmin acts for every command when authentication is disabled and no
// --user was given.
var localAdmin = auth.Principal{Name: "local", Role: string(auth.RoleAdmin)}

func (a *app) actingContext(ctx context.Context, loggedIn bool) context.Context {
	if !a.cfg.Auth.Enabled && !loggedIn {
		return auth.WithPrincipal(ctx, localAdmin)
	}
	return ctx
}

// run opens the app for the duration of fn.
func (c *cli) run(ctx context.Context, fn func(ctx context.Context, a *app) error) error {
	a, err := c.openApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			zap.S().Named("cli").Warnw("failed to close database", "error", err)
		}
	}()
	return fn(a.actingContext(ctx, c.user != ""), a)
}
