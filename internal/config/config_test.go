package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Env != "dev" || cfg.Server.Addr != ":8080" || cfg.Log.Level != "info" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.Storage.Local.Dir != "data" || cfg.Cache.Kind != "memory" || cfg.Notify.Kind != "log" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.CacheTTL() != 30*time.Second {
		t.Fatalf("CacheTTL default: %v", cfg.CacheTTL())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
app:
  env: prod
server:
  addr: ":9000"
storage:
  backend: rest
  rest:
    base_url: https://api.example.com
    timeout: 5s
  overrides:
    products: local
cache:
  kind: redis
  ttl: 2m
  redis:
    addr: redis:6379
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsProd() || cfg.Server.Addr != ":9000" {
		t.Fatalf("%+v", cfg)
	}
	if cfg.Storage.Backend != "rest" || cfg.Storage.REST.BaseURL != "https://api.example.com" {
		t.Fatalf("storage: %+v", cfg.Storage)
	}
	if cfg.Storage.Overrides["products"] != "local" {
		t.Fatalf("overrides: %+v", cfg.Storage.Overrides)
	}
	if cfg.RESTTimeout() != 5*time.Second {
		t.Fatalf("RESTTimeout: %v", cfg.RESTTimeout())
	}
	if cfg.CacheTTL() != 2*time.Minute {
		t.Fatalf("CacheTTL: %v", cfg.CacheTTL())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("EVENTKIT_ENV", "staging")
	t.Setenv("EVENTKIT_STORAGE_BACKEND", "postgres")
	t.Setenv("EVENTKIT_PG_DSN", "postgres://x@localhost/db")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Env != "staging" {
		t.Fatalf("env override: %s", cfg.App.Env)
	}
	if cfg.Storage.Backend != "postgres" || cfg.Storage.Postgres.DSN == "" {
		t.Fatalf("storage override: %+v", cfg.Storage)
	}
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	if _, err := Load("/no/existe.yaml"); err == nil {
		t.Fatal("esperaba error")
	}
}
