package crud

import (
	"context"
	"testing"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
)

// laxStore simula un adapter que devuelve respuestas fuera de contrato:
// Data nil, page/limit en cero, total menor que los datos.
type laxStore struct {
	resp     storage.PaginatedResponse[model.Lead]
	lastPage int
	lastLim  int
	pages    []storage.PaginatedResponse[model.Lead]
	calls    int
}

func (f *laxStore) GetAll(_ context.Context, page, limit int) (storage.PaginatedResponse[model.Lead], error) {
	f.lastPage, f.lastLim = page, limit
	f.calls++
	if len(f.pages) > 0 {
		i := page - 1
		if i >= len(f.pages) {
			return storage.PaginatedResponse[model.Lead]{Data: []model.Lead{}, Total: f.pages[0].Total, Page: page, Limit: limit}, nil
		}
		return f.pages[i], nil
	}
	return f.resp, nil
}

func (f *laxStore) GetByID(context.Context, string) (model.Lead, error) {
	return model.Lead{}, storage.ErrNotFound
}
func (f *laxStore) Create(_ context.Context, l model.Lead) (model.Lead, error) { return l, nil }
func (f *laxStore) Update(context.Context, string, model.LeadPatch) (model.Lead, error) {
	return model.Lead{}, storage.ErrNotFound
}
func (f *laxStore) Delete(context.Context, string) (bool, error) { return false, nil }
func (f *laxStore) Kind() storage.BackendKind                    { return storage.BackendLocal }
func (f *laxStore) Close() error                                 { return nil }

func TestGetAll_AplicaDefaults(t *testing.T) {
	f := &laxStore{resp: storage.PaginatedResponse[model.Lead]{Data: []model.Lead{}}}
	s := New[model.Lead, model.LeadPatch](f)

	if _, err := s.GetAll(context.Background(), 0, -3); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if f.lastPage != DefaultPage || f.lastLim != DefaultLimit {
		t.Fatalf("defaults no aplicados: page=%d limit=%d", f.lastPage, f.lastLim)
	}
}

func TestGetAll_NormalizaRespuestaLaxa(t *testing.T) {
	f := &laxStore{resp: storage.PaginatedResponse[model.Lead]{
		Data:  []model.Lead{{ID: "l1"}, {ID: "l2"}},
		Total: 0, // menor que len(Data)
		Page:  0,
		Limit: 0,
	}}
	s := New[model.Lead, model.LeadPatch](f)

	got, err := s.GetAll(context.Background(), 3, 7)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if got.Total != 2 {
		t.Fatalf("Total debía subir a len(Data), got %d", got.Total)
	}
	if got.Page != 3 || got.Limit != 7 {
		t.Fatalf("page/limit no normalizados: %+v", got)
	}

	// Data nil se convierte en slice vacío
	f.resp = storage.PaginatedResponse[model.Lead]{Data: nil, Total: 0}
	got, err = s.GetAll(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if got.Data == nil {
		t.Fatal("Data nil debía normalizarse a slice vacío")
	}
}

func TestGetAllPages_RecorreTodo(t *testing.T) {
	mk := func(n int, start int) []model.Lead {
		out := make([]model.Lead, n)
		for i := range out {
			out[i] = model.Lead{ID: string(rune('a' + start + i))}
		}
		return out
	}
	f := &laxStore{pages: []storage.PaginatedResponse[model.Lead]{
		{Data: mk(100, 0), Total: 150, Page: 1, Limit: 100},
		{Data: mk(50, 100), Total: 150, Page: 2, Limit: 100},
	}}
	s := New[model.Lead, model.LeadPatch](f)

	all, err := s.GetAllPages(context.Background())
	if err != nil {
		t.Fatalf("GetAllPages: %v", err)
	}
	if len(all) != 150 {
		t.Fatalf("esperaba 150 registros, got %d", len(all))
	}
	if f.calls != 2 {
		t.Fatalf("esperaba 2 llamadas, got %d", f.calls)
	}
}

func TestGetAllPages_CortaConPaginaVacia(t *testing.T) {
	// total mentiroso (mayor que lo que hay): la página vacía corta el loop
	f := &laxStore{pages: []storage.PaginatedResponse[model.Lead]{
		{Data: []model.Lead{{ID: "l1"}}, Total: 500, Page: 1, Limit: 100},
		{Data: []model.Lead{}, Total: 500, Page: 2, Limit: 100},
	}}
	s := New[model.Lead, model.LeadPatch](f)

	all, err := s.GetAllPages(context.Background())
	if err != nil {
		t.Fatalf("GetAllPages: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("esperaba 1 registro, got %d", len(all))
	}
}
