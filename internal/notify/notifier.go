package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/formdrop/backend/internal/config"
	"github.com/formdrop/backend/internal/model"
)

// Notifier sends a best-effort alert when the admin panel is accessed.
// Failures are reported to the caller but never gate the access itself.
type Notifier interface {
	NotifyAccess(ctx context.Context, ev model.AccessEvent) error
}

// LogNotifier writes the access event to the log. Used when SMTP is not
// configured.
type LogNotifier struct{}

func (LogNotifier) NotifyAccess(ctx context.Context, ev model.AccessEvent) error {
	_ = ctx
	slog.Info("admin access",
		"ip", ev.IP,
		"user_agent", ev.UserAgent,
		"at", ev.At.Format(time.RFC3339),
	)
	return nil
}

// SMTPNotifier mails the access event to a fixed operator address.
type SMTPNotifier struct {
	host string
	port int
	from string
	to   string
}

// NewNotifier selects an SMTP notifier when configured, otherwise logs.
func NewNotifier(cfg config.Config) Notifier {
	if cfg.SMTPHost == "" || cfg.NotifyTo == "" {
		return LogNotifier{}
	}
	return SMTPNotifier{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		from: cfg.NotifyFrom,
		to:   cfg.NotifyTo,
	}
}

func (s SMTPNotifier) NotifyAccess(ctx context.Context, ev model.AccessEvent) error {
	_ = ctx
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	body := fmt.Sprintf(
		"Subject: Admin panel access\r\n\r\nip: %s\r\nuser-agent: %s\r\nat: %s\r\n",
		ev.IP, ev.UserAgent, ev.At.Format(time.RFC3339))
	return smtp.SendMail(addr, nil, s.from, []string{s.to}, []byte(body))
}
