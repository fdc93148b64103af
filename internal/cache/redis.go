package cache

import (
	"context"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

// Redis es el cache distribuido para despliegues multi-instancia.
type Redis struct {
	c      *rdb.Client
	prefix string
}

// NewRedis crea el cliente redis. No hace ping acá: un redis caído degrada
// a misses, no impide el arranque.
func NewRedis(addr string, db int, prefix string) *Redis {
	return &Redis{
		c:      rdb.NewClient(&rdb.Options{Addr: addr, DB: db}),
		prefix: prefix,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.c.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = r.c.Set(ctx, r.prefix+key, value, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) {
	_ = r.c.Del(ctx, r.prefix+key).Err()
}

func (r *Redis) Close() error { return r.c.Close() }
