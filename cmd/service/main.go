package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/eventkit/internal/app"
	"github.com/dropDatabas3/eventkit/internal/config"
	httpserver "github.com/dropDatabas3/eventkit/internal/http"
	"github.com/dropDatabas3/eventkit/internal/observability/logger"
)

var version = "dev"

func main() {
	var (
		configPath = flag.String("config", "", "Path al YAML de configuración (opcional)")
		envFile    = flag.String("env-file", ".env", "Path al .env (opcional)")
	)
	flag.Parse()

	// .env es best-effort: en prod las vars vienen del entorno.
	_ = godotenv.Load(*envFile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "eventkit",
		Version:     version,
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.L().Fatal("bootstrap", logger.Err(err))
	}
	defer a.Close()

	metricsHandler := httpserver.RegisterMetrics(nil)
	httpserver.RecordBackends(a.Registry.Backends())

	router := httpserver.NewRouter(a.Registry, a.Cache, cfg.CacheTTL())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Serve(ctx, cfg.Server.Addr, router)
	})
	g.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metricsHandler)
		return httpserver.Serve(ctx, cfg.Server.MetricsAddr, mux)
	})

	if err := g.Wait(); err != nil {
		logger.L().Fatal("server", logger.Err(err))
	}
	logger.L().Info("apagado completo")
}
