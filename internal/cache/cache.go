// Package cache keeps an in-memory index of warehouse ids and names.
//
// The index is derived from the warehouses table and is never authoritative.
// Rebuild must run after every successful warehouse insert, update or delete;
// the service layer does this before returning to its caller.
package cache

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/unison/inventory-manager/internal/metrics"
	"github.com/unison/inventory-manager/internal/models"
)

// Source lists every stored warehouse.
type Source interface {
	AllWarehouses(ctx context.Context) ([]models.Warehouse, error)
}

// Snapshot is an immutable view of the index at one point in time.
type Snapshot struct {
	nameByID map[string]string
	idByName map[string]string
	names    []string
}

func newSnapshot(warehouses []models.Warehouse) *Snapshot {
	s := &Snapshot{
		nameByID: make(map[string]string, len(warehouses)),
		idByName: make(map[string]string, len(warehouses)),
		names:    make([]string, 0, len(warehouses)),
	}
	for _, w := range warehouses {
		s.nameByID[w.ID] = w.Name
		s.idByName[w.Name] = w.ID
		s.names = append(s.names, w.Name)
	}
	sort.Strings(s.names)
	return s
}

// NameFor returns the warehouse name for id, or models.UnknownWarehouse when id
// is blank or not indexed.
func (s *Snapshot) NameFor(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.UnknownWarehouse
	}
	if name, ok := s.nameByID[id]; ok {
		return name
	}
	return models.UnknownWarehouse
}

// IDFor matches name exactly.
func (s *Snapshot) IDFor(name string) (string, bool) {
	id, ok := s.idByName[name]
	return id, ok
}

// AllNames returns a sorted copy of every indexed name.
func (s *Snapshot) AllNames() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *Snapshot) Len() int {
	return len(s.names)
}

// WarehouseNames is the rebuildable cache. Lookups never block and never fail.
type WarehouseNames struct {
	source  Source
	current atomic.Pointer[Snapshot]
}

// NewWarehouseNames returns an empty cache. Call Rebuild before relying on it.
func NewWarehouseNames(source Source) *WarehouseNames {
	c := &WarehouseNames{source: source}
	c.current.Store(newSnapshot(nil))
	return c
}

// Rebuild reads every warehouse and swaps in a fresh snapshot. On error the
// previous snapshot stays in place.
func (c *WarehouseNames) Rebuild(ctx context.Context) error {
	warehouses, err := c.source.AllWarehouses(ctx)
	if err != nil {
		metrics.ObserveCacheRebuild(0, err)
		zap.S().Named("cache").Errorw("failed to rebuild warehouse names", "error", err)
		return err
	}

	snap := newSnapshot(warehouses)
	c.current.Store(snap)
	metrics.ObserveCacheRebuild(snap.Len(), nil)
	zap.S().Named("cache").Debugw("warehouse names rebuilt", "count", snap.Len())
	return nil
}

// Snapshot returns the current view. Translate several values against the same
// snapshot when they must agree with each other.
func (c *WarehouseNames) Snapshot() *Snapshot {
	return c.current.Load()
}

func (c *WarehouseNames) NameFor(id string) string {
	return c.Snapshot().NameFor(id)
}

func (c *WarehouseNames) IDFor(name string) (string, bool) {
	return c.Snapshot().IDFor(name)
}

func (c *WarehouseNames) AllNames() []string {
	return c.Snapshot().AllNames()
}
