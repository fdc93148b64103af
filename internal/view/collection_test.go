package view

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
	"github.com/dropDatabas3/eventkit/internal/storage/local"
)

func newCollection(t *testing.T) *Collection[model.Plan, model.PlanPatch] {
	t.Helper()
	store, err := local.New[model.Plan, model.PlanPatch](storage.LocalConfig{
		Dir: t.TempDir(), StorageKey: "plans",
	})
	require.NoError(t, err)
	return New(crud.New[model.Plan, model.PlanPatch](store))
}

func TestCollection_RefreshYSnapshot(t *testing.T) {
	c := newCollection(t)
	ctx := context.Background()

	// estado inicial: vacío, sin error, sin loading
	snap := c.Snapshot()
	require.Empty(t, snap.Items)
	require.False(t, snap.Loading)
	require.NoError(t, snap.Err)

	_, err := c.Create(ctx, model.Plan{Name: "Básico", Price: 500, Active: true})
	require.NoError(t, err)
	_, err = c.Create(ctx, model.Plan{Name: "Premium", Price: 1500, Active: true})
	require.NoError(t, err)

	require.NoError(t, c.Refresh(ctx, 1, 10))

	snap = c.Snapshot()
	require.Len(t, snap.Items, 2)
	require.Equal(t, 2, snap.Total)
	require.Equal(t, 1, snap.Page)
	require.False(t, snap.Loading)
}

func TestCollection_CreateOptimista(t *testing.T) {
	c := newCollection(t)
	ctx := context.Background()

	created, err := c.Create(ctx, model.Plan{Name: "Básico", Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// sin Refresh: el array local ya refleja la mutación
	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	require.Equal(t, 1, snap.Total)
	require.Equal(t, created.ID, snap.Items[0].ID)
}

func TestCollection_UpdateOptimista(t *testing.T) {
	c := newCollection(t)
	ctx := context.Background()

	created, err := c.Create(ctx, model.Plan{Name: "Básico", Price: 500})
	require.NoError(t, err)

	price := 650.0
	_, err = c.Update(ctx, created.ID, model.PlanPatch{Price: &price})
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	require.Equal(t, 650.0, snap.Items[0].Price)
	require.Equal(t, "Básico", snap.Items[0].Name)
}

func TestCollection_RemoveOptimista(t *testing.T) {
	c := newCollection(t)
	ctx := context.Background()

	created, err := c.Create(ctx, model.Plan{Name: "Básico"})
	require.NoError(t, err)

	removed, err := c.Remove(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	snap := c.Snapshot()
	require.Empty(t, snap.Items)
	require.Equal(t, 0, snap.Total)

	// segundo remove: no existía, el estado local no cambia
	removed, err = c.Remove(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestCollection_ErrorPreservaEstado(t *testing.T) {
	c := newCollection(t)
	ctx := context.Background()

	created, err := c.Create(ctx, model.Plan{Name: "Básico"})
	require.NoError(t, err)

	// update de un id inexistente: falla y el array local queda como estaba
	price := 1.0
	_, err = c.Update(ctx, "no-existe", model.PlanPatch{Price: &price})
	require.Error(t, err)

	snap := c.Snapshot()
	require.Error(t, snap.Err)
	require.Len(t, snap.Items, 1)
	require.Equal(t, created.ID, snap.Items[0].ID)

	// la siguiente operación exitosa limpia el error
	require.NoError(t, c.Refresh(ctx, 1, 10))
	require.NoError(t, c.Snapshot().Err)
}

// staleStore retiene cada respuesta de GetAll hasta que el test libera su
// compuerta, para simular un refresh lento que llega tarde. La respuesta y
// la compuerta se eligen por el limit del request, que el test controla.
type staleStore struct {
	results map[int]storage.PaginatedResponse[model.Plan]
	gates   map[int]chan struct{}
	entered map[int]chan struct{}
}

func (s *staleStore) GetAll(_ context.Context, _, limit int) (storage.PaginatedResponse[model.Plan], error) {
	close(s.entered[limit])
	<-s.gates[limit]
	return s.results[limit], nil
}

func (s *staleStore) GetByID(context.Context, string) (model.Plan, error) {
	return model.Plan{}, storage.ErrNotFound
}
func (s *staleStore) Create(_ context.Context, p model.Plan) (model.Plan, error) { return p, nil }
func (s *staleStore) Update(context.Context, string, model.PlanPatch) (model.Plan, error) {
	return model.Plan{}, storage.ErrNotFound
}
func (s *staleStore) Delete(context.Context, string) (bool, error) { return false, nil }
func (s *staleStore) Kind() storage.BackendKind                    { return storage.BackendLocal }
func (s *staleStore) Close() error                                 { return nil }

func TestCollection_RefreshViejoNoSobreescribe(t *testing.T) {
	store := &staleStore{
		results: map[int]storage.PaginatedResponse[model.Plan]{
			10: {Data: []model.Plan{{ID: "viejo"}}, Total: 1, Page: 1, Limit: 10},
			20: {Data: []model.Plan{{ID: "nuevo"}}, Total: 1, Page: 1, Limit: 20},
		},
		gates:   map[int]chan struct{}{10: make(chan struct{}), 20: make(chan struct{})},
		entered: map[int]chan struct{}{10: make(chan struct{}), 20: make(chan struct{})},
	}
	c := New(crud.New[model.Plan, model.PlanPatch](store))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = c.Refresh(context.Background(), 1, 10) // refresh viejo, lento
	}()
	<-store.entered[10] // ya tomó su generación y está bloqueado en el backend

	go func() {
		defer wg.Done()
		_ = c.Refresh(context.Background(), 1, 20) // refresh nuevo
	}()
	<-store.entered[20]

	// el nuevo resuelve primero; el viejo llega tarde
	close(store.gates[20])
	close(store.gates[10])
	wg.Wait()

	// gana la generación más alta, no la última respuesta en llegar
	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	require.Equal(t, "nuevo", snap.Items[0].ID)
}
