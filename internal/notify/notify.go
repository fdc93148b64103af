// Package notify define el colaborador de notificaciones.
//
// Los adapters reportan acá los fallos de transporte: atrapan el error crudo,
// lo loguean, notifican y retornan el sentinel. Hay una implementación de log
// y otra SMTP para avisos operativos.
package notify

import (
	"context"

	"github.com/dropDatabas3/eventkit/internal/observability/logger"
)

// Level severidad de la notificación. Es un alias de string para que las
// implementaciones satisfagan la interfaz mínima storage.Notifier.
type Level = string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Notifier recibe avisos de eventos operativos. Las implementaciones no
// deben bloquear más de lo imprescindible ni retornar error al caller:
// una notificación fallida jamás hace fallar la operación original.
type Notifier interface {
	Notify(ctx context.Context, level Level, title, detail string)
}

// Log es el Notifier por defecto: escribe al logger estructurado.
type Log struct{}

// NewLog crea un notificador de log.
func NewLog() *Log { return &Log{} }

func (n *Log) Notify(ctx context.Context, level Level, title, detail string) {
	log := logger.From(ctx).Named("notify")
	switch level {
	case LevelError:
		log.Error(title, logger.String("detail", detail))
	case LevelWarn:
		log.Warn(title, logger.String("detail", detail))
	default:
		log.Info(title, logger.String("detail", detail))
	}
}

// Nop descarta todas las notificaciones. Útil en tests.
type Nop struct{}

func (Nop) Notify(context.Context, Level, string, string) {}
