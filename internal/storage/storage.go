// Package storage define el contrato CRUD unificado del data layer.
//
// Toda entidad del sistema (clients, kits, themes, plans, products, leads,
// contracts) se persiste a través de este contrato, sin importar cuál backend
// físico esté activo (archivo local, API REST o tabla Postgres). Los callers
// nunca deben ramificar según el backend: la semántica de las cinco
// operaciones es idéntica en los tres adapters.
package storage

import "context"

// Entity es cualquier registro con identificador estable.
// El ID se asigna en Create y nunca cambia durante la vida del registro.
type Entity interface {
	EntityID() string
}

// PaginatedResponse es el sobre uniforme de toda consulta de listado.
// Invariantes: len(Data) <= Limit; Total refleja el tamaño completo de la
// colección cuando el backend lo conoce (si no, len(Data)).
type PaginatedResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Crud es el contrato que implementan los tres adapters.
//
// T es el tipo de entidad; P es su patch struct (campos puntero, solo los
// campos presentes se aplican en Update — ver internal/domain/model).
type Crud[T Entity, P any] interface {
	// GetAll retorna una página de la colección.
	GetAll(ctx context.Context, page, limit int) (PaginatedResponse[T], error)

	// GetByID retorna el registro o ErrNotFound si no existe.
	GetByID(ctx context.Context, id string) (T, error)

	// Create persiste un registro nuevo. El item llega sin ID; el adapter
	// (o el backend) genera uno y lo retorna en el registro creado.
	Create(ctx context.Context, item T) (T, error)

	// Update aplica un merge a nivel de campo. Los campos no presentes en el
	// patch no se tocan. Retorna ErrNotFound si el ID no existe.
	Update(ctx context.Context, id string, patch P) (T, error)

	// Delete elimina el registro. Retorna false (sin error) si ya no existía:
	// borrar dos veces es idempotente.
	Delete(ctx context.Context, id string) (bool, error)

	// Kind retorna el backend físico que sirve esta instancia.
	Kind() BackendKind

	// Close libera recursos del adapter (no cierra pools compartidos).
	Close() error
}
