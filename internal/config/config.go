// Package config carga la configuración del proceso: YAML + overrides por
// variables de entorno. Los comandos cargan .env antes (godotenv), así que
// en dev alcanza con un .env al lado del binario.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | staging | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Server struct {
		Addr        string `yaml:"addr"`
		MetricsAddr string `yaml:"metrics_addr"`
	} `yaml:"server"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Storage struct {
		// Backend default para todas las entidades: local | rest | postgres.
		// Vacío = auto: rest si hay base_url, postgres si hay dsn, sino local.
		Backend string `yaml:"backend"`

		Local struct {
			Dir string `yaml:"dir"`
		} `yaml:"local"`

		REST struct {
			BaseURL string `yaml:"base_url"`
			Timeout string `yaml:"timeout"`
		} `yaml:"rest"`

		Postgres struct {
			DSN          string `yaml:"dsn"`
			MaxOpenConns int    `yaml:"max_open_conns"`
			MaxIdleConns int    `yaml:"max_idle_conns"`
		} `yaml:"postgres"`

		// Overrides por entidad (ej: products: rest).
		Overrides map[string]string `yaml:"overrides"`
	} `yaml:"storage"`

	Cache struct {
		// Kind: memory | redis | none. Default: memory.
		Kind  string `yaml:"kind"`
		TTL   string `yaml:"ttl"`
		Redis struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	Notify struct {
		// Kind: log | smtp. Default: log.
		Kind string `yaml:"kind"`
		SMTP struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			From     string `yaml:"from"`
			To       string `yaml:"to"`
			Username string `yaml:"username"`
			Password string `yaml:"password"`
			TLSMode  string `yaml:"tls_mode"`
		} `yaml:"smtp"`
	} `yaml:"notify"`
}

// Load lee el YAML (si path no es vacío), aplica overrides de entorno y
// completa defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setStr := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setStr(&c.App.Env, "EVENTKIT_ENV")
	setStr(&c.Server.Addr, "EVENTKIT_ADDR")
	setStr(&c.Server.MetricsAddr, "EVENTKIT_METRICS_ADDR")
	setStr(&c.Log.Level, "EVENTKIT_LOG_LEVEL")
	setStr(&c.Storage.Backend, "EVENTKIT_STORAGE_BACKEND")
	setStr(&c.Storage.Local.Dir, "EVENTKIT_DATA_DIR")
	setStr(&c.Storage.REST.BaseURL, "EVENTKIT_API_BASE_URL")
	setStr(&c.Storage.Postgres.DSN, "EVENTKIT_PG_DSN")
	setStr(&c.Cache.Kind, "EVENTKIT_CACHE_KIND")
	setStr(&c.Cache.Redis.Addr, "EVENTKIT_REDIS_ADDR")

	if v := os.Getenv("EVENTKIT_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.Redis.DB = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MetricsAddr == "" {
		c.Server.MetricsAddr = ":9090"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Storage.Local.Dir == "" {
		c.Storage.Local.Dir = "data"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "30s"
	}
	if c.Notify.Kind == "" {
		c.Notify.Kind = "log"
	}
}

// CacheTTL parsea el TTL de cache configurado.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// RESTTimeout parsea el timeout del adapter REST (0 = default del adapter).
func (c *Config) RESTTimeout() time.Duration {
	if c.Storage.REST.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Storage.REST.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// IsProd indica si el entorno es productivo.
func (c *Config) IsProd() bool {
	return strings.EqualFold(c.App.Env, "prod")
}
