// Package app arma el grafo de dependencias del proceso: config, logger,
// pool de Postgres, notificador, registry de services y cache.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/eventkit/internal/cache"
	"github.com/dropDatabas3/eventkit/internal/config"
	"github.com/dropDatabas3/eventkit/internal/notify"
	"github.com/dropDatabas3/eventkit/internal/observability/logger"
	"github.com/dropDatabas3/eventkit/internal/service"
	"github.com/dropDatabas3/eventkit/internal/storage"
)

// App agrupa los componentes construidos. Close libera todos los recursos.
type App struct {
	Cfg      *config.Config
	Pool     *pgxpool.Pool
	Notifier storage.Notifier
	Registry *service.Registry
	Cache    cache.Client
}

// New construye la aplicación completa a partir de la configuración.
// Init del logger debe hacerse antes (lo hace cada main).
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notifier := buildNotifier(cfg)

	reg, err := service.NewRegistry(ctx, service.NewResolver(cfg, pool, notifier))
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}

	c, err := cache.New(cache.Config{
		Kind:       cfg.Cache.Kind,
		Addr:       cfg.Cache.Redis.Addr,
		DB:         cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: cfg.CacheTTL(),
	})
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}

	for entity, kind := range reg.Backends() {
		logger.L().Info("entidad registrada",
			logger.String("entity", entity), logger.Backend(string(kind)))
	}

	return &App{Cfg: cfg, Pool: pool, Notifier: notifier, Registry: reg, Cache: c}, nil
}

// Close libera pool y cache. Seguro de llamar más de una vez.
func (a *App) Close() {
	if a.Cache != nil {
		_ = a.Cache.Close()
		a.Cache = nil
	}
	if a.Pool != nil {
		a.Pool.Close()
		a.Pool = nil
	}
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := cfg.Storage.Postgres.DSN
	if dsn == "" {
		return nil, nil
	}

	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("app: parse pg dsn: %w", err)
	}
	if cfg.Storage.Postgres.MaxOpenConns > 0 {
		pcfg.MaxConns = int32(cfg.Storage.Postgres.MaxOpenConns)
	}
	if cfg.Storage.Postgres.MaxIdleConns > 0 {
		pcfg.MinConns = int32(cfg.Storage.Postgres.MaxIdleConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("app: open pg pool: %w", err)
	}
	return pool, nil
}

func buildNotifier(cfg *config.Config) storage.Notifier {
	if cfg.Notify.Kind == "smtp" && cfg.Notify.SMTP.Host != "" {
		return notify.NewSMTP(notify.SMTPConfig{
			Host:     cfg.Notify.SMTP.Host,
			Port:     cfg.Notify.SMTP.Port,
			From:     cfg.Notify.SMTP.From,
			To:       cfg.Notify.SMTP.To,
			Username: cfg.Notify.SMTP.Username,
			Password: cfg.Notify.SMTP.Password,
			TLSMode:  cfg.Notify.SMTP.TLSMode,
		})
	}
	return notify.NewLog()
}
