// Package pg implementa el adapter de tabla documento sobre PostgreSQL.
//
// Cada colección es una tabla (id text PK, data jsonb, created_at,
// updated_at). El merge de Update ocurre server-side (data || patch), así que
// a diferencia del adapter local acá no hay read-modify-write. El pool se
// inyecta desde afuera y es compartido entre entidades; Close() no lo cierra.
package pg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/eventkit/internal/storage"
)

// validIdentifier solo permite identificadores SQL simples en minúscula.
var validIdentifier = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Table implementa storage.Crud[T, P] sobre una tabla documento.
type Table[T storage.Entity, P any] struct {
	pool  *pgxpool.Pool
	table string
}

// New crea el adapter para una tabla. El nombre se valida acá porque se
// interpola en el SQL (no puede ir como parámetro).
func New[T storage.Entity, P any](cfg storage.PostgresConfig) (*Table[T, P], error) {
	if cfg.Pool == nil {
		return nil, fmt.Errorf("%w: postgres requiere Pool", storage.ErrInvalidConfig)
	}
	if !validIdentifier.MatchString(cfg.Table) {
		return nil, fmt.Errorf("%w: nombre de tabla inválido %q", storage.ErrInvalidConfig, cfg.Table)
	}
	return &Table[T, P]{pool: cfg.Pool, table: cfg.Table}, nil
}

func (t *Table[T, P]) Kind() storage.BackendKind { return storage.BackendPostgres }

// Close no cierra el pool: es compartido entre todas las entidades.
func (t *Table[T, P]) Close() error { return nil }

// translate clasifica errores de pgx en los sentinels del contrato.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// Violación de unicidad: no fatal, el registro ya existe.
		return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("%w: %v", storage.ErrUnavailable, err)
}

func (t *Table[T, P]) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[T], error) {
	empty := storage.PaginatedResponse[T]{Data: []T{}, Page: page, Limit: limit}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	q := fmt.Sprintf(
		`SELECT data, count(*) OVER () FROM %s ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		t.table,
	)
	rows, err := t.pool.Query(ctx, q, limit, offset)
	if err != nil {
		return empty, translate(err)
	}
	defer rows.Close()

	items := []T{}
	total := 0
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw, &total); err != nil {
			return empty, translate(err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return empty, fmt.Errorf("pg: decode row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return empty, translate(err)
	}

	// Página más allá del final: no vinieron filas, el total hay que pedirlo.
	if len(items) == 0 {
		countQ := fmt.Sprintf(`SELECT count(*) FROM %s`, t.table)
		if err := t.pool.QueryRow(ctx, countQ).Scan(&total); err != nil {
			return empty, translate(err)
		}
	}

	return storage.PaginatedResponse[T]{Data: items, Total: total, Page: page, Limit: limit}, nil
}

func (t *Table[T, P]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	q := fmt.Sprintf(`SELECT data FROM %s WHERE id = $1`, t.table)
	var raw []byte
	if err := t.pool.QueryRow(ctx, q, id).Scan(&raw); err != nil {
		return zero, translate(err)
	}

	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return zero, fmt.Errorf("pg: decode row: %w", err)
	}
	return item, nil
}

// Create inserta el registro. Si el item no trae id, lo genera la base
// (gen_random_uuid); el id queda también dentro del documento jsonb para que
// la forma persistida y la forma de lectura coincidan.
func (t *Table[T, P]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	doc, err := json.Marshal(item)
	if err != nil {
		return zero, fmt.Errorf("pg: marshal item: %w", err)
	}

	q := fmt.Sprintf(`
		WITH new_id AS (
			SELECT COALESCE(NULLIF($1, ''), gen_random_uuid()::text) AS id
		)
		INSERT INTO %s (id, data)
		SELECT id, $2::jsonb || jsonb_build_object('id', id) FROM new_id
		RETURNING data`, t.table)

	var raw []byte
	if err := t.pool.QueryRow(ctx, q, item.EntityID(), doc).Scan(&raw); err != nil {
		return zero, translate(err)
	}

	var created T
	if err := json.Unmarshal(raw, &created); err != nil {
		return zero, fmt.Errorf("pg: decode row: %w", err)
	}
	return created, nil
}

func (t *Table[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	doc, err := storage.PatchJSON(patch)
	if err != nil {
		return zero, fmt.Errorf("pg: %w", err)
	}

	q := fmt.Sprintf(`
		UPDATE %s
		SET data = data || $2::jsonb, updated_at = now()
		WHERE id = $1
		RETURNING data`, t.table)

	var raw []byte
	if err := t.pool.QueryRow(ctx, q, id, doc).Scan(&raw); err != nil {
		return zero, translate(err)
	}

	var updated T
	if err := json.Unmarshal(raw, &updated); err != nil {
		return zero, fmt.Errorf("pg: decode row: %w", err)
	}
	return updated, nil
}

func (t *Table[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	q := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table)
	tag, err := t.pool.Exec(ctx, q, id)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() > 0, nil
}
