// Package cache provee el cache de lecturas del API server.
//
// Soporta memory (in-process, dev) y redis (distribuido, prod). Importante:
// el cache vive en la capa HTTP; el service CRUD genérico y los adapters no
// cachean nada, por contrato.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Client define las operaciones de cache que usa la capa HTTP.
// Las implementaciones degradan en silencio: un cache caído se comporta
// como un miss permanente, nunca como un error del request.
type Client interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Close() error
}

// Config selecciona y parametriza el backend de cache.
type Config struct {
	// Kind: "memory" | "redis" | "none".
	Kind       string
	Addr       string // redis
	DB         int    // redis
	Prefix     string
	DefaultTTL time.Duration
}

// New construye el cliente según la configuración.
func New(cfg Config) (Client, error) {
	switch cfg.Kind {
	case "", "memory":
		return NewMemory(cfg.Prefix, cfg.DefaultTTL), nil
	case "redis":
		return NewRedis(cfg.Addr, cfg.DB, cfg.Prefix), nil
	case "none":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("cache: kind desconocido %q", cfg.Kind)
	}
}

// Nop descarta todo: siempre miss.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (Nop) Set(context.Context, string, []byte, time.Duration) {}
func (Nop) Delete(context.Context, string)                     {}
func (Nop) Close() error                                       { return nil }
