// Package crud provee el service CRUD genérico, agnóstico del backend.
//
// Envuelve exactamente un adapter y presenta la misma superficie Crud[T, P],
// agregando defaults de paginación y normalización del sobre de respuesta.
// En esta capa no hay cache ni retries: eso queda explícitamente fuera.
package crud

import (
	"context"

	"github.com/dropDatabas3/eventkit/internal/storage"
)

// Defaults de paginación. Única fuente: no repetir estos literales.
const (
	DefaultPage  = 1
	DefaultLimit = 10

	// pageWalkLimit tamaño de página para GetAllPages.
	pageWalkLimit = 100
)

// Service envuelve un adapter con normalización de paginación.
type Service[T storage.Entity, P any] struct {
	store storage.Crud[T, P]
}

// New crea el service sobre un adapter ya construido.
func New[T storage.Entity, P any](store storage.Crud[T, P]) *Service[T, P] {
	return &Service[T, P]{store: store}
}

// GetAll aplica defaults de paginación y garantiza que la respuesta cumpla
// el invariante de PaginatedResponse aunque el adapter devuelva algo laxo.
func (s *Service[T, P]) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[T], error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	resp, err := s.store.GetAll(ctx, page, limit)
	if err != nil {
		return storage.PaginatedResponse[T]{Data: []T{}, Page: page, Limit: limit}, err
	}

	if resp.Data == nil {
		resp.Data = []T{}
	}
	if resp.Page < 1 {
		resp.Page = page
	}
	if resp.Limit < 1 {
		resp.Limit = limit
	}
	if resp.Total < len(resp.Data) {
		resp.Total = len(resp.Data)
	}
	return resp, nil
}

// GetAllPages recorre la colección completa página por página.
// Lo usan las extensiones de dominio que filtran client-side.
func (s *Service[T, P]) GetAllPages(ctx context.Context) ([]T, error) {
	var all []T
	for page := DefaultPage; ; page++ {
		resp, err := s.GetAll(ctx, page, pageWalkLimit)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)
		if len(all) >= resp.Total || len(resp.Data) == 0 {
			return all, nil
		}
	}
}

func (s *Service[T, P]) GetByID(ctx context.Context, id string) (T, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service[T, P]) Create(ctx context.Context, item T) (T, error) {
	return s.store.Create(ctx, item)
}

func (s *Service[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	return s.store.Update(ctx, id, patch)
}

func (s *Service[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	return s.store.Delete(ctx, id)
}

// Kind expone el backend físico activo, para diagnóstico.
func (s *Service[T, P]) Kind() storage.BackendKind { return s.store.Kind() }

func (s *Service[T, P]) Close() error { return s.store.Close() }
