// Package service contiene los services de entidad: wrappers finos que atan
// el CRUD genérico a una configuración concreta y agregan las operaciones de
// conveniencia del dominio (toggle de estado, archivado, contadores de uso,
// filtros). Las cinco operaciones base pasan sin cambios.
package service

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/crud"
)

// activatable es toda entidad con flag de actividad (active && !archived).
type activatable interface {
	storage.Entity
	IsActive() bool
}

// getActive trae la colección completa y filtra client-side: la definición
// de "activo" vive en la entidad, no en una query del backend.
func getActive[T activatable, P any](ctx context.Context, s *crud.Service[T, P]) ([]T, error) {
	all, err := s.GetAllPages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for _, it := range all {
		if it.IsActive() {
			out = append(out, it)
		}
	}
	return out, nil
}

// importBatch crea los items secuencialmente. Sin rollback transaccional: un
// fallo en el item i deja los primeros i comprometidos y retorna cuántos
// entraron junto con el error.
func importBatch[T storage.Entity, P any](ctx context.Context, s *crud.Service[T, P], items []T) (int, error) {
	for i, it := range items {
		if _, err := s.Create(ctx, it); err != nil {
			return i, fmt.Errorf("import batch: item %d: %w", i, err)
		}
	}
	return len(items), nil
}
