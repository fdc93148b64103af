// Package view mantiene el estado mutable que consumen las superficies de UI
// (CLI, paneles): página actual de items, contadores de paginación, flag de
// carga y último error. Las mutaciones actualizan el array local en forma
// optimista, sin re-fetch.
package view

import (
	"context"
	"sync"

	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// Collection es la vista con estado de una colección paginada.
//
// Los Refresh solapados no se cancelan entre sí, pero cada uno lleva un token
// de generación: una respuesta vieja que llega tarde se descarta en lugar de
// pisar estado más nuevo.
type Collection[T storage.Entity, P any] struct {
	svc *crud.Service[T, P]

	mu      sync.Mutex
	items   []T
	total   int
	page    int
	limit   int
	loading bool
	lastErr error
	gen     uint64
}

// Snapshot es la foto inmutable del estado para el consumidor.
type Snapshot[T any] struct {
	Items   []T
	Total   int
	Page    int
	Limit   int
	Loading bool
	Err     error
}

// New crea la vista sobre un service CRUD.
func New[T storage.Entity, P any](svc *crud.Service[T, P]) *Collection[T, P] {
	return &Collection[T, P]{
		svc:   svc,
		items: []T{},
		page:  crud.DefaultPage,
		limit: crud.DefaultLimit,
	}
}

// Snapshot retorna una copia del estado actual.
func (c *Collection[T, P]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Items:   items,
		Total:   c.total,
		Page:    c.page,
		Limit:   c.limit,
		Loading: c.loading,
		Err:     c.lastErr,
	}
}

// Refresh recarga la página pedida (0 = defaults del service).
func (c *Collection[T, P]) Refresh(ctx context.Context, page, limit int) error {
	c.mu.Lock()
	c.loading = true
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	resp, err := c.svc.GetAll(ctx, page, limit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// Respuesta vieja: hay un Refresh más nuevo en vuelo o ya aplicado.
		return err
	}
	c.loading = false
	if err != nil {
		c.lastErr = err
		return err
	}
	c.items = resp.Data
	c.total = resp.Total
	c.page = resp.Page
	c.limit = resp.Limit
	c.lastErr = nil
	return nil
}

// Create persiste el item y, si sale bien, lo agrega al array local.
func (c *Collection[T, P]) Create(ctx context.Context, item T) (T, error) {
	c.setLoading(true)
	created, err := c.svc.Create(ctx, item)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.lastErr = err
		return created, err
	}
	c.items = append(c.items, created)
	c.total++
	c.lastErr = nil
	return created, nil
}

// Update persiste el patch y, si sale bien, reemplaza el item local.
func (c *Collection[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	c.setLoading(true)
	updated, err := c.svc.Update(ctx, id, patch)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.lastErr = err
		return updated, err
	}
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items[i] = updated
			break
		}
	}
	c.lastErr = nil
	return updated, nil
}

// Remove borra el registro y, si existía, lo quita del array local.
func (c *Collection[T, P]) Remove(ctx context.Context, id string) (bool, error) {
	c.setLoading(true)
	removed, err := c.svc.Delete(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.lastErr = err
		return false, err
	}
	if removed {
		kept := c.items[:0]
		for _, it := range c.items {
			if it.EntityID() != id {
				kept = append(kept, it)
			}
		}
		c.items = kept
		if c.total > 0 {
			c.total--
		}
	}
	c.lastErr = nil
	return removed, nil
}

func (c *Collection[T, P]) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}
