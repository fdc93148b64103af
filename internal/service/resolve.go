package service

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/eventkit/internal/config"
	"github.com/dropDatabas3/eventkit/internal/storage"
)

// Resolver computa la storage.Config de cada entidad a partir de la
// configuración del proceso. La regla, en orden:
//
//  1. override por entidad (storage.overrides en el YAML)
//  2. backend global configurado
//  3. auto: rest si hay base_url, postgres si hay pool, sino local
//
// La config resultante se consume una sola vez al construir el adapter;
// cambiar de backend implica reconstruir los services vía la factory.
type Resolver struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	notifier storage.Notifier
}

// NewResolver crea el resolver. pool puede ser nil si no hay Postgres.
func NewResolver(cfg *config.Config, pool *pgxpool.Pool, notifier storage.Notifier) *Resolver {
	return &Resolver{cfg: cfg, pool: pool, notifier: notifier}
}

// BackendFor retorna el backend que le toca a una entidad.
func (r *Resolver) BackendFor(entity string) storage.BackendKind {
	if kind, ok := r.cfg.Storage.Overrides[entity]; ok && kind != "" {
		return storage.BackendKind(kind)
	}
	if r.cfg.Storage.Backend != "" {
		return storage.BackendKind(r.cfg.Storage.Backend)
	}
	if r.cfg.Storage.REST.BaseURL != "" {
		return storage.BackendREST
	}
	if r.pool != nil {
		return storage.BackendPostgres
	}
	return storage.BackendLocal
}

// ConfigFor arma la Config completa de una entidad. El nombre de entidad es
// a la vez storage key (local), resource (REST) y tabla (postgres).
func (r *Resolver) ConfigFor(entity string) storage.Config {
	kind := r.BackendFor(entity)
	cfg := storage.Config{Kind: kind}

	switch kind {
	case storage.BackendREST:
		cfg.REST = storage.RESTConfig{
			BaseURL:  r.cfg.Storage.REST.BaseURL,
			Resource: entity,
			Timeout:  r.cfg.RESTTimeout(),
			Notifier: r.notifier,
		}
	case storage.BackendPostgres:
		cfg.Postgres = storage.PostgresConfig{
			Pool:  r.pool,
			Table: entity,
		}
	default:
		cfg.Local = storage.LocalConfig{
			Dir:        r.cfg.Storage.Local.Dir,
			StorageKey: entity,
		}
	}
	return cfg
}
