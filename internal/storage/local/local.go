// Package local implementa el adapter de almacenamiento en archivo local.
//
// Cada colección vive en un único archivo JSON (<dir>/<storageKey>.json) que
// contiene el array completo de registros, al estilo localStorage. Toda
// mutación re-serializa y reescribe la colección entera de forma atómica; no
// hay escrituras parciales.
//
// Limitación conocida: la secuencia leer-mutar-escribir no es atómica frente
// a otros procesos escribiendo el mismo archivo. Dentro del proceso un mutex
// serializa las mutaciones. El store local se asume single-process.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/dropDatabas3/eventkit/internal/storage"
	"github.com/dropDatabas3/eventkit/internal/util/atomicwrite"
)

const defaultDir = "data"

// Store implementa storage.Crud[T, P] sobre un archivo JSON.
type Store[T storage.Entity, P any] struct {
	path    string
	idField string
	mu      sync.Mutex
}

// New crea el adapter para una colección. Si el archivo no existe y hay
// seed configurado, lo inicializa con esos registros.
func New[T storage.Entity, P any](cfg storage.LocalConfig) (*Store[T, P], error) {
	if cfg.StorageKey == "" {
		return nil, fmt.Errorf("%w: local requiere StorageKey", storage.ErrInvalidConfig)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = defaultDir
	}
	idField := cfg.IDField
	if idField == "" {
		idField = storage.DefaultIDField
	}

	s := &Store[T, P]{
		path:    filepath.Join(dir, cfg.StorageKey+".json"),
		idField: idField,
	}

	if len(cfg.Seed) > 0 {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			raw, err := json.Marshal(cfg.Seed)
			if err != nil {
				return nil, fmt.Errorf("local: marshal seed: %w", err)
			}
			if err := atomicwrite.WriteFile(s.path, raw, 0o644); err != nil {
				return nil, fmt.Errorf("local: write seed: %w", err)
			}
		}
	}

	return s, nil
}

func (s *Store[T, P]) Kind() storage.BackendKind { return storage.BackendLocal }

func (s *Store[T, P]) Close() error { return nil }

// load deserializa la colección completa. Archivo ausente = colección vacía.
// JSON corrupto se propaga como error: no hay default razonable que sustituir.
func (s *Store[T, P]) load() ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("local: read %s: %w", s.path, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("local: corrupt collection %s: %w", s.path, err)
	}
	return items, nil
}

func (s *Store[T, P]) save(items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("local: marshal collection: %w", err)
	}
	if err := atomicwrite.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("local: write %s: %w", s.path, err)
	}
	return nil
}

// GetAll retorna el slice [offset, offset+limit) de la colección.
// Total siempre refleja el largo completo conocido localmente.
func (s *Store[T, P]) GetAll(ctx context.Context, page, limit int) (storage.PaginatedResponse[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return storage.PaginatedResponse[T]{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(items)
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return storage.PaginatedResponse[T]{
		Data:  data,
		Total: len(items),
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *Store[T, P]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if it.EntityID() == id {
			return it, nil
		}
	}
	return zero, storage.ErrNotFound
}

func (s *Store[T, P]) Create(ctx context.Context, item T) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return zero, err
	}

	// UUID v4: colisión prácticamente imposible, pero verificamos igual
	// porque el contrato exige ids únicos dentro de la colección.
	id := uuid.NewString()
	for exists(items, id) {
		id = uuid.NewString()
	}

	created, err := storage.WithID(item, s.idField, id)
	if err != nil {
		return zero, fmt.Errorf("local: assign id: %w", err)
	}

	items = append(items, created)
	if err := s.save(items); err != nil {
		return zero, err
	}
	return created, nil
}

func (s *Store[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return zero, err
	}

	for i, it := range items {
		if it.EntityID() != id {
			continue
		}
		merged, err := storage.ApplyPatch(it, patch)
		if err != nil {
			return zero, fmt.Errorf("local: merge patch: %w", err)
		}
		items[i] = merged
		if err := s.save(items); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, storage.ErrNotFound
}

func (s *Store[T, P]) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return false, err
	}

	kept := items[:0]
	removed := false
	for _, it := range items {
		if it.EntityID() == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false, nil
	}
	if err := s.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

func exists[T storage.Entity](items []T, id string) bool {
	for _, it := range items {
		if it.EntityID() == id {
			return true
		}
	}
	return false
}
