package logger

import (
	"time"

	"go.uber.org/zap"
)

// Campos estándar para que los logs del data layer sean consistentes
// entre adapters, services y controllers.

// Err crea un campo para un error.
func Err(err error) zap.Field { return zap.Error(err) }

// Op crea un campo con la operación en curso (ej: "KitService.Create").
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer crea un campo con la capa ("adapter", "service", "controller").
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Backend crea un campo con el backend activo ("local", "rest", "postgres").
func Backend(v string) zap.Field { return zap.String("backend", v) }

// Resource crea un campo con el recurso lógico ("kits", "clients", ...).
func Resource(v string) zap.Field { return zap.String("resource", v) }

// RecordID crea un campo con el id del registro afectado.
func RecordID(v string) zap.Field { return zap.String("record_id", v) }

// Page crea un campo con la página solicitada.
func Page(v int) zap.Field { return zap.Int("page", v) }

// Limit crea un campo con el límite solicitado.
func Limit(v int) zap.Field { return zap.Int("limit", v) }

// Count crea un campo con una cantidad de registros.
func Count(v int) zap.Field { return zap.Int("count", v) }

// RequestID crea un campo con el ID del request HTTP.
func RequestID(v string) zap.Field { return zap.String("request_id", v) }

// Method crea un campo con el método HTTP.
func Method(v string) zap.Field { return zap.String("method", v) }

// Path crea un campo con el path del request.
func Path(v string) zap.Field { return zap.String("path", v) }

// Status crea un campo con el status code HTTP.
func Status(v int) zap.Field { return zap.Int("status", v) }

// Duration crea un campo con una duración.
func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

// String re-exporta zap.String para no importar zap en los call sites simples.
func String(k, v string) zap.Field { return zap.String(k, v) }

// Int re-exporta zap.Int.
func Int(k string, v int) zap.Field { return zap.Int(k, v) }
