package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/eventkit/internal/cache"
	"github.com/dropDatabas3/eventkit/internal/observability/logger"
	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// CrudAPI es lo que un resource necesita de un service de entidad.
// Todos los services del registry lo satisfacen.
type CrudAPI[T storage.Entity, P any] interface {
	GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[T], error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Resource monta el CRUD HTTP de una entidad sobre un service.
type Resource[T storage.Entity, P any] struct {
	name  string
	svc   CrudAPI[T, P]
	cache cache.Client
	ttl   time.Duration
}

// NewResource arma el controller. cache puede ser cache.Nop{}.
func NewResource[T storage.Entity, P any](name string, svc CrudAPI[T, P], c cache.Client, ttl time.Duration) *Resource[T, P] {
	if c == nil {
		c = cache.Nop{}
	}
	return &Resource[T, P]{name: name, svc: svc, cache: c, ttl: ttl}
}

// Register monta las rutas del recurso en el router.
func (res *Resource[T, P]) Register(r chi.Router) {
	r.Route("/"+res.name, func(r chi.Router) {
		r.Get("/", res.list)
		r.Post("/", res.create)
		r.Get("/{id}", res.get)
		r.Patch("/{id}", res.update)
		r.Delete("/{id}", res.remove)
	})
}

func (res *Resource[T, P]) list(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", crud.DefaultPage)
	limit := queryInt(r, "limit", crud.DefaultLimit)

	out, err := res.svc.GetAll(r.Context(), page, limit)
	if err != nil {
		WriteError(w, mapStorageErr(err))
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (res *Resource[T, P]) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	key := res.name + ":" + id

	if b, ok := res.cache.Get(r.Context(), key); ok {
		recordCache(res.name, true)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
		return
	}
	recordCache(res.name, false)

	item, err := res.svc.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, mapStorageErr(err))
		return
	}

	if b, err := json.Marshal(item); err == nil {
		res.cache.Set(r.Context(), key, b, res.ttl)
	}
	writeJSON(w, http.StatusOK, item)
}

func (res *Resource[T, P]) create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, ErrInvalidJSON.WithDetail(err.Error()))
		return
	}

	created, err := res.svc.Create(r.Context(), item)
	if err != nil {
		WriteError(w, mapStorageErr(err))
		return
	}

	logger.From(r.Context()).Info("recurso creado",
		logger.Resource(res.name), logger.RecordID(created.EntityID()))
	writeJSON(w, http.StatusCreated, created)
}

func (res *Resource[T, P]) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch P
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, ErrInvalidJSON.WithDetail(err.Error()))
		return
	}

	updated, err := res.svc.Update(r.Context(), id, patch)
	if err != nil {
		WriteError(w, mapStorageErr(err))
		return
	}

	res.cache.Delete(r.Context(), res.name+":"+id)
	writeJSON(w, http.StatusOK, updated)
}

func (res *Resource[T, P]) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := res.svc.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, mapStorageErr(err))
		return
	}
	if !removed {
		WriteError(w, ErrNotFoundAPI)
		return
	}

	res.cache.Delete(r.Context(), res.name+":"+id)
	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
