package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/eventkit/internal/cache"
	"github.com/dropDatabas3/eventkit/internal/config"
	"github.com/dropDatabas3/eventkit/internal/notify"
	"github.com/dropDatabas3/eventkit/internal/service"
)

func newRegistry(t *testing.T) *service.Registry {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Storage.Local.Dir = t.TempDir()

	reg, err := service.NewRegistry(context.Background(),
		service.NewResolver(cfg, nil, notify.Nop{}))
	require.NoError(t, err)
	return reg
}

func TestRouter_HealthYStorage(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newRegistry(t), cache.Nop{}, time.Minute))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// diagnóstico: las siete entidades con su backend
	resp, err = http.Get(srv.URL + "/api/v1/storage")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var backends map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&backends))
	require.Len(t, backends, len(service.Entities))
	for _, entity := range service.Entities {
		require.Equal(t, "local", backends[entity], entity)
	}
}

func TestRouter_TodasLasEntidadesMontadas(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newRegistry(t), cache.Nop{}, time.Minute))
	defer srv.Close()

	for _, entity := range service.Entities {
		resp, err := http.Get(srv.URL + "/api/v1/" + entity)
		require.NoError(t, err, entity)
		require.Equal(t, http.StatusOK, resp.StatusCode, entity)
		resp.Body.Close()
	}

	// ruta desconocida
	resp, err := http.Get(srv.URL + "/api/v1/unicorns")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRouter_RequestID(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newRegistry(t), cache.Nop{}, time.Minute))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	// un request id entrante se propaga tal cual
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set("X-Request-Id", "req-123")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, "req-123", resp.Header.Get("X-Request-Id"))
}
