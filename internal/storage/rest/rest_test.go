package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
)

// recordingNotifier captura las notificaciones emitidas por el adapter.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) Notify(_ context.Context, level, title, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, level+":"+title)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newClient(t *testing.T, baseURL string, notifier storage.Notifier) *Client[model.Product, model.ProductPatch] {
	t.Helper()
	c, err := New[model.Product, model.ProductPatch](storage.RESTConfig{
		BaseURL:  baseURL,
		Resource: "products",
		Notifier: notifier,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestREST_GetAllEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("path inesperado: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page=%s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []model.Product{{ID: "p1", Name: "Piñata"}},
			"total": 11, "page": 2, "limit": 5,
		})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	page, err := c.GetAll(context.Background(), 2, 5)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if page.Total != 11 || page.Page != 2 || page.Limit != 5 || len(page.Data) != 1 {
		t.Fatalf("sobre mal parseado: %+v", page)
	}
	if page.Data[0].ID != "p1" {
		t.Fatalf("item: %+v", page.Data[0])
	}
}

func TestREST_GetAllBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p1","name":"Piñata","price":80},{"id":"p2","name":"Centro","price":35}]`))
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	page, err := c.GetAll(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	// array pelado: se normaliza al sobre con total = len
	if page.Total != 2 || page.Page != 1 || page.Limit != 10 || len(page.Data) != 2 {
		t.Fatalf("normalización: %+v", page)
	}
}

func TestREST_GetByIDNotFoundSilencioso(t *testing.T) {
	notifier := &recordingNotifier{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, notifier)
	_, err := c.GetByID(context.Background(), "nope")
	if !storage.IsNotFound(err) {
		t.Fatalf("esperaba ErrNotFound, got %v", err)
	}
	// 404 es un negativo esperado, no dispara notificación
	if notifier.count() != 0 {
		t.Fatalf("no debía notificar, calls=%v", notifier.calls)
	}
}

func TestREST_ServerErrorNotifica(t *testing.T) {
	notifier := &recordingNotifier{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, notifier)
	_, err := c.GetByID(context.Background(), "p1")
	if !storage.IsUnavailable(err) {
		t.Fatalf("esperaba ErrUnavailable, got %v", err)
	}
	if notifier.count() != 1 {
		t.Fatalf("esperaba 1 notificación, got %d", notifier.count())
	}
}

func TestREST_TransportErrorNotifica(t *testing.T) {
	notifier := &recordingNotifier{}
	// puerto cerrado: error de red puro
	c := newClient(t, "http://127.0.0.1:1", notifier)

	_, err := c.GetAll(context.Background(), 1, 10)
	if !storage.IsUnavailable(err) {
		t.Fatalf("esperaba ErrUnavailable, got %v", err)
	}
	if notifier.count() != 1 {
		t.Fatalf("esperaba 1 notificación, got %d", notifier.count())
	}
}

func TestREST_CreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("método: %s", r.Method)
		}
		var in model.Product
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("body: %v", err)
		}
		in.ID = "p-nuevo"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	created, err := c.Create(context.Background(), model.Product{Name: "Piñata", Price: 80})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "p-nuevo" || created.Name != "Piñata" {
		t.Fatalf("created: %+v", created)
	}
}

func TestREST_UpdateUsaPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("esperaba PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/products/p1" {
			t.Errorf("path: %s", r.URL.Path)
		}

		// el body solo trae los campos no-nil del patch
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("body: %v", err)
		}
		if len(body) != 1 {
			t.Errorf("patch debía traer 1 campo, trajo %v", body)
		}

		_ = json.NewEncoder(w).Encode(model.Product{ID: "p1", Name: "Piñata", Stock: 9})
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	stock := 9
	updated, err := c.Update(context.Background(), "p1", model.ProductPatch{Stock: &stock})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Stock != 9 {
		t.Fatalf("updated: %+v", updated)
	}
}

func TestREST_DeleteIdempotente(t *testing.T) {
	var status = http.StatusNoContent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)

	removed, err := c.Delete(context.Background(), "p1")
	if err != nil || !removed {
		t.Fatalf("Delete 204: removed=%v err=%v", removed, err)
	}

	// 404 en delete no es error: ya no existía
	status = http.StatusNotFound
	removed, err = c.Delete(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Delete 404: %v", err)
	}
	if removed {
		t.Fatal("Delete 404 no debía reportar remoción")
	}
}

func TestREST_ConflictEnCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL, nil)
	_, err := c.Create(context.Background(), model.Product{Name: "dup"})
	if !storage.IsConflict(err) {
		t.Fatalf("esperaba ErrConflict, got %v", err)
	}
}
