package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_SetGetDelete(t *testing.T) {
	m := NewMemory("t:", time.Minute)
	ctx := context.Background()

	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("miss esperado en cache vacío")
	}

	m.Set(ctx, "k", []byte("valor"), time.Minute)
	got, ok := m.Get(ctx, "k")
	if !ok || string(got) != "valor" {
		t.Fatalf("Get: ok=%v got=%q", ok, got)
	}

	m.Delete(ctx, "k")
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("miss esperado tras Delete")
	}
}

func TestMemory_TTLExpira(t *testing.T) {
	m := NewMemory("", time.Minute)
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("la entrada debía expirar")
	}
}

func TestNew_Kinds(t *testing.T) {
	for _, kind := range []string{"", "memory", "redis", "none"} {
		c, err := New(Config{Kind: kind, Addr: "localhost:6379"})
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		_ = c.Close()
	}

	if _, err := New(Config{Kind: "memcached"}); err == nil {
		t.Fatal("esperaba error por kind desconocido")
	}
}
