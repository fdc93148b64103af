// Package factory construye el adapter correcto a partir de la configuración.
//
// Lógica de selección pura: un branch por variante, error inmediato ante una
// variante desconocida (nunca un default silencioso). La configuración llega
// por parámetro — la factory no lee estado global del proceso, así la
// construcción es determinística y testeable.
package factory

import (
	"context"
	"fmt"

	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/storage/local"
	"github.com/dropDatabas3/eventkit/internal/storage/pg"
	"github.com/dropDatabas3/eventkit/internal/storage/rest"
)

// Kind retorna el backend que Open construiría para cfg. Es la única función
// de selección: el accessor de diagnóstico y la construcción comparten este
// código, por lo que no pueden divergir.
func Kind(cfg storage.Config) (storage.BackendKind, error) {
	switch cfg.Kind {
	case storage.BackendLocal, storage.BackendREST, storage.BackendPostgres:
		return cfg.Kind, nil
	default:
		return "", fmt.Errorf("%w: %q", storage.ErrUnknownBackend, cfg.Kind)
	}
}

// Open construye el adapter para cfg. Para postgres hace un ping inicial
// para fallar rápido si el pool no está sano.
func Open[T storage.Entity, P any](ctx context.Context, cfg storage.Config) (storage.Crud[T, P], error) {
	kind, err := Kind(cfg)
	if err != nil {
		return nil, err
	}

	switch kind {
	case storage.BackendLocal:
		return local.New[T, P](cfg.Local)

	case storage.BackendREST:
		return rest.New[T, P](cfg.REST)

	case storage.BackendPostgres:
		store, err := pg.New[T, P](cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if err := cfg.Postgres.Pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("%w: ping: %v", storage.ErrUnavailable, err)
		}
		return store, nil
	}

	// Inalcanzable: Kind ya validó la variante.
	return nil, storage.ErrUnknownBackend
}
