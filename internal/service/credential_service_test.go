package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/formdrop/backend/internal/model"
	"github.com/formdrop/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock SettingsRepository
// ---------------------------------------------------------------------------

type mockSettingsRepository struct {
	getFunc    func(ctx context.Context) (*model.AdminCredential, error)
	upsertFunc func(ctx context.Context, password string, updatedAt time.Time) error
}

func (m *mockSettingsRepository) GetAdminCredential(ctx context.Context) (*model.AdminCredential, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSettingsRepository) UpsertAdminCredential(ctx context.Context, password string, updatedAt time.Time) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, password, updatedAt)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestCredentialService_CurrentPassword_FallbackWhenNoOverride(t *testing.T) {
	repo := &mockSettingsRepository{}
	svc := NewCredentialService(repo, "fallback-secret")

	if got := svc.CurrentPassword(context.Background()); got != "fallback-secret" {
		t.Errorf("expected fallback password, got %q", got)
	}
}

func TestCredentialService_CurrentPassword_FallbackWhenDatastoreDown(t *testing.T) {
	repo := &mockSettingsRepository{
		getFunc: func(_ context.Context) (*model.AdminCredential, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := NewCredentialService(repo, "fallback-secret")

	// Datastore unavailability degrades to the fallback, never to an error.
	if got := svc.CurrentPassword(context.Background()); got != "fallback-secret" {
		t.Errorf("expected fallback password when datastore is down, got %q", got)
	}
}

func TestCredentialService_CurrentPassword_OverrideWins(t *testing.T) {
	repo := &mockSettingsRepository{
		getFunc: func(_ context.Context) (*model.AdminCredential, error) {
			return &model.AdminCredential{Password: "rotated-secret"}, nil
		},
	}
	svc := NewCredentialService(repo, "fallback-secret")

	if got := svc.CurrentPassword(context.Background()); got != "rotated-secret" {
		t.Errorf("expected persisted override, got %q", got)
	}
}

func TestCredentialService_SetPassword_TooShort(t *testing.T) {
	upserted := false
	repo := &mockSettingsRepository{
		upsertFunc: func(_ context.Context, _ string, _ time.Time) error {
			upserted = true
			return nil
		},
	}
	svc := NewCredentialService(repo, "fallback-secret")

	err := svc.SetPassword(context.Background(), "short")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if upserted {
		t.Error("expected no upsert for a rejected password")
	}
}

func TestCredentialService_SetPassword_Persists(t *testing.T) {
	var storedPassword string
	repo := &mockSettingsRepository{
		upsertFunc: func(_ context.Context, password string, updatedAt time.Time) error {
			storedPassword = password
			if updatedAt.IsZero() {
				t.Error("expected non-zero updatedAt")
			}
			return nil
		},
	}
	svc := NewCredentialService(repo, "fallback-secret")

	if err := svc.SetPassword(context.Background(), "new-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedPassword != "new-secret" {
		t.Errorf("expected new-secret stored, got %q", storedPassword)
	}
}

func TestCredentialService_SetPassword_PersistFailureFailsTheCall(t *testing.T) {
	repo := &mockSettingsRepository{
		upsertFunc: func(_ context.Context, _ string, _ time.Time) error {
			return errors.New("write failed")
		},
	}
	svc := NewCredentialService(repo, "fallback-secret")

	if err := svc.SetPassword(context.Background(), "new-secret"); err == nil {
		t.Fatal("expected error when persistence fails")
	}
	// The fallback must be untouched by a failed persist.
	if got := svc.CurrentPassword(context.Background()); got != "fallback-secret" {
		t.Errorf("expected fallback unchanged after failed persist, got %q", got)
	}
}
