package notify

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/dropDatabas3/eventkit/internal/observability/logger"
)

// SMTPConfig configura el notificador SMTP.
type SMTPConfig struct {
	Host               string
	Port               int
	From               string
	To                 string
	Username           string
	Password           string
	TLSMode            string // "auto" | "starttls" | "ssl" | "none"
	InsecureSkipVerify bool

	// MinLevel nivel mínimo que dispara un mail. Default: error.
	MinLevel Level
}

// SMTP envía notificaciones por mail. Pensado para avisos de backend caído
// en despliegues sin stack de observabilidad.
type SMTP struct {
	cfg SMTPConfig
}

// NewSMTP crea un notificador SMTP.
func NewSMTP(cfg SMTPConfig) *SMTP {
	if cfg.TLSMode == "" {
		cfg.TLSMode = "auto"
	}
	if cfg.MinLevel == "" {
		cfg.MinLevel = LevelError
	}
	return &SMTP{cfg: cfg}
}

func (n *SMTP) Notify(ctx context.Context, level Level, title, detail string) {
	if !reaches(level, n.cfg.MinLevel) {
		return
	}

	m := mail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Subject", fmt.Sprintf("[eventkit/%s] %s", level, title))
	m.SetBody("text/plain", detail)

	d := mail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Username, n.cfg.Password)
	switch n.cfg.TLSMode {
	case "ssl":
		d.SSL = true
	case "starttls":
		d.StartTLSPolicy = mail.MandatoryStartTLS
	case "none":
		d.StartTLSPolicy = mail.NoStartTLS
	}
	if n.cfg.InsecureSkipVerify {
		d.TLSConfig = &tls.Config{ServerName: n.cfg.Host, InsecureSkipVerify: true}
	}

	if err := d.DialAndSend(m); err != nil {
		// La notificación nunca hace fallar la operación original.
		logger.From(ctx).Named("notify").Warn("smtp notify failed", logger.Err(err))
	}
}

func reaches(level, min Level) bool {
	rank := func(l Level) int {
		switch l {
		case LevelError:
			return 2
		case LevelWarn:
			return 1
		default:
			return 0
		}
	}
	return rank(level) >= rank(min)
}
