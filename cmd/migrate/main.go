package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/dropDatabas3/eventkit/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path al YAML de configuración (opcional)")
		dir        = flag.String("dir", "migrations/postgres", "Directorio con *_up.sql y *_down.sql")
	)
	flag.Parse()

	_ = godotenv.Load()

	// Posicional: [up|down]
	action := "up"
	if args := flag.Args(); len(args) >= 1 && args[0] != "" {
		action = strings.ToLower(args[0])
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Storage.Postgres.DSN == "" {
		log.Fatal("falta el DSN de Postgres (storage.postgres.dsn o EVENTKIT_PG_DSN)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Storage.Postgres.DSN)
	if err != nil {
		log.Fatalf("pgxpool: %v", err)
	}
	defer pool.Close()

	var suffix string
	switch action {
	case "up":
		suffix = "_up.sql"
	case "down":
		suffix = "_down.sql"
	default:
		log.Fatalf("acción desconocida %q (up|down)", action)
	}

	files, err := listSQL(*dir, suffix)
	if err != nil {
		log.Fatalf("listar migraciones: %v", err)
	}
	if len(files) == 0 {
		log.Printf("sin migraciones %s en %s, nada que hacer", suffix, *dir)
		return
	}

	sort.Strings(files)
	if action == "down" {
		// Las down se aplican en orden inverso.
		for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
			files[i], files[j] = files[j], files[i]
		}
	}

	for _, f := range files {
		if err := execSQLFile(ctx, pool, f); err != nil {
			log.Fatalf("exec %s: %v", f, err)
		}
		log.Printf("aplicada %s", filepath.Base(f))
	}
	log.Printf("%d migración(es) %s completadas", len(files), action)
}

func listSQL(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out, nil
}

func execSQLFile(ctx context.Context, pool *pgxpool.Pool, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, string(raw)); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
