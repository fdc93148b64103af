package factory

import (
	"context"
	"errors"
	"testing"

	"github.com/dropDatabas3/eventkit/internal/domain/model"
	"github.com/dropDatabas3/eventkit/internal/storage"
)

func TestKind_Deterministico(t *testing.T) {
	cases := []struct {
		cfg  storage.Config
		want storage.BackendKind
	}{
		{storage.Config{Kind: storage.BackendLocal}, storage.BackendLocal},
		{storage.Config{Kind: storage.BackendREST}, storage.BackendREST},
		{storage.Config{Kind: storage.BackendPostgres}, storage.BackendPostgres},
	}
	for _, tc := range cases {
		got, err := Kind(tc.cfg)
		if err != nil {
			t.Fatalf("Kind(%s): %v", tc.cfg.Kind, err)
		}
		if got != tc.want {
			t.Fatalf("Kind(%s) = %s", tc.cfg.Kind, got)
		}
		// misma config, mismo resultado
		again, _ := Kind(tc.cfg)
		if again != got {
			t.Fatalf("Kind no es determinística: %s vs %s", got, again)
		}
	}
}

func TestKind_VarianteDesconocida(t *testing.T) {
	for _, kind := range []storage.BackendKind{"", "mongo", "LOCAL"} {
		_, err := Kind(storage.Config{Kind: kind})
		if !errors.Is(err, storage.ErrUnknownBackend) {
			t.Fatalf("Kind(%q): esperaba ErrUnknownBackend, got %v", kind, err)
		}
	}
}

func TestOpen_Local(t *testing.T) {
	store, err := Open[model.Client, model.ClientPatch](context.Background(), storage.Config{
		Kind:  storage.BackendLocal,
		Local: storage.LocalConfig{Dir: t.TempDir(), StorageKey: "clients"},
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if store.Kind() != storage.BackendLocal {
		t.Fatalf("Kind() = %s", store.Kind())
	}
}

func TestOpen_CoincideConKind(t *testing.T) {
	// el backend reportado por Kind y el del adapter construido no divergen
	cfgs := []storage.Config{
		{Kind: storage.BackendLocal, Local: storage.LocalConfig{Dir: t.TempDir(), StorageKey: "clients"}},
		{Kind: storage.BackendREST, REST: storage.RESTConfig{BaseURL: "http://localhost:9", Resource: "clients"}},
	}
	for _, cfg := range cfgs {
		want, err := Kind(cfg)
		if err != nil {
			t.Fatalf("Kind: %v", err)
		}
		store, err := Open[model.Client, model.ClientPatch](context.Background(), cfg)
		if err != nil {
			t.Fatalf("Open(%s): %v", cfg.Kind, err)
		}
		if store.Kind() != want {
			t.Fatalf("Open(%s).Kind() = %s", want, store.Kind())
		}
		_ = store.Close()
	}
}

func TestOpen_VarianteDesconocida(t *testing.T) {
	_, err := Open[model.Client, model.ClientPatch](context.Background(), storage.Config{Kind: "mongo"})
	if !errors.Is(err, storage.ErrUnknownBackend) {
		t.Fatalf("esperaba ErrUnknownBackend, got %v", err)
	}
}

func TestOpen_ConfigInvalida(t *testing.T) {
	// rest sin BaseURL debe fallar en la construcción, no en el primer uso
	_, err := Open[model.Client, model.ClientPatch](context.Background(), storage.Config{
		Kind: storage.BackendREST,
	})
	if !errors.Is(err, storage.ErrInvalidConfig) {
		t.Fatalf("esperaba ErrInvalidConfig, got %v", err)
	}
}
