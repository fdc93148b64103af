package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BackendKind identifica un backend físico.
type BackendKind string

const (
	// BackendLocal persiste cada colección como un archivo JSON local.
	BackendLocal BackendKind = "local"

	// BackendREST opera contra un recurso REST genérico.
	BackendREST BackendKind = "rest"

	// BackendPostgres opera contra una tabla documento (id + jsonb).
	BackendPostgres BackendKind = "postgres"
)

// Config es la unión etiquetada que selecciona y parametriza un adapter.
// Exactamente una variante está activa por entidad configurada; cambiar de
// variante es una decisión de configuración, no por llamada (requiere
// reconstruir el adapter vía la factory).
type Config struct {
	Kind BackendKind

	Local    LocalConfig
	REST     RESTConfig
	Postgres PostgresConfig
}

// LocalConfig parametriza el adapter de archivo local.
type LocalConfig struct {
	// Dir directorio raíz de datos. Default: "data".
	Dir string

	// StorageKey nombre lógico de la colección (archivo <Dir>/<StorageKey>.json).
	StorageKey string

	// IDField nombre del campo identificador en el JSON. Default: "id".
	IDField string

	// Seed registros iniciales, aplicados solo si el archivo no existe aún.
	Seed []json.RawMessage
}

// RESTConfig parametriza el adapter REST.
type RESTConfig struct {
	// BaseURL URL base del API (ej: "https://api.example.com/api/v1").
	BaseURL string

	// Resource nombre del recurso ("kits", "clients", ...).
	Resource string

	// Timeout por request. Default: 15s.
	Timeout time.Duration

	// Notifier colaborador de notificaciones para fallos de transporte.
	// Se inyecta acá (igual que el Pool de Postgres) para que la factory
	// no dependa de estado ambiente. Default: notificador de log.
	Notifier Notifier
}

// Notifier es el colaborador externo de notificaciones (ver internal/notify).
// Se declara acá como interfaz mínima para no acoplar el contrato al paquete.
type Notifier interface {
	Notify(ctx context.Context, level string, title, detail string)
}

// PostgresConfig parametriza el adapter de tabla documento.
// El pool se inyecta explícitamente: la factory no lee estado global.
type PostgresConfig struct {
	Pool  *pgxpool.Pool
	Table string
}
