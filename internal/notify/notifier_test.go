package notify

import (
	"context"
	"testing"
	"time"

	"github.com/formdrop/backend/internal/config"
	"github.com/formdrop/backend/internal/model"
)

func TestNewNotifier_DefaultsToLog(t *testing.T) {
	n := NewNotifier(config.Config{})
	if _, ok := n.(LogNotifier); !ok {
		t.Errorf("expected LogNotifier without SMTP config, got %T", n)
	}

	// SMTP host alone is not enough; an operator address is required too.
	n = NewNotifier(config.Config{SMTPHost: "smtp.example.com"})
	if _, ok := n.(LogNotifier); !ok {
		t.Errorf("expected LogNotifier without NOTIFY_TO, got %T", n)
	}
}

func TestNewNotifier_SMTPWhenConfigured(t *testing.T) {
	n := NewNotifier(config.Config{
		SMTPHost:   "smtp.example.com",
		SMTPPort:   587,
		NotifyFrom: "noreply@example.com",
		NotifyTo:   "ops@example.com",
	})
	if _, ok := n.(SMTPNotifier); !ok {
		t.Errorf("expected SMTPNotifier, got %T", n)
	}
}

func TestLogNotifier_NeverFails(t *testing.T) {
	err := LogNotifier{}.NotifyAccess(context.Background(), model.AccessEvent{
		IP:        "203.0.113.9",
		UserAgent: "panel-ui",
		At:        time.Now(),
	})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
