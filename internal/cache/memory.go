package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory es el cache in-process para desarrollo y single-instance.
type Memory struct {
	c      *gocache.Cache
	prefix string
}

// NewMemory crea un cache en memoria con TTL default.
func NewMemory(prefix string, defaultTTL time.Duration) *Memory {
	if defaultTTL <= 0 {
		defaultTTL = 30 * time.Second
	}
	return &Memory{c: gocache.New(defaultTTL, time.Minute), prefix: prefix}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := m.c.Get(m.prefix + key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	m.c.Set(m.prefix+key, value, ttl)
}

func (m *Memory) Delete(ctx context.Context, key string) {
	m.c.Delete(m.prefix + key)
}

func (m *Memory) Close() error { return nil }
