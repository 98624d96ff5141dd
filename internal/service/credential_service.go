package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/formdrop/backend/internal/repository"
)

// MinPasswordLength is the minimum accepted admin password length.
const MinPasswordLength = 6

// CredentialService resolves the current admin password: the persisted
// override takes precedence over the configured fallback.
type CredentialService interface {
	// CurrentPassword returns the effective admin password. It never fails:
	// datastore unavailability degrades to the configured fallback.
	CurrentPassword(ctx context.Context) string

	// SetPassword validates and persists a new admin password. Persistence
	// success is authoritative; on failure nothing is changed.
	SetPassword(ctx context.Context, newPassword string) error
}

// credentialServiceImpl is the production implementation of CredentialService.
type credentialServiceImpl struct {
	repo     repository.SettingsRepository
	fallback string
}

// NewCredentialService creates a CredentialService with the given persisted
// store and fallback password.
func NewCredentialService(repo repository.SettingsRepository, fallback string) CredentialService {
	return &credentialServiceImpl{repo: repo, fallback: fallback}
}

func (s *credentialServiceImpl) CurrentPassword(ctx context.Context) string {
	cred, err := s.repo.GetAdminCredential(ctx)
	if err != nil {
		// No override yet, or the datastore is down. Either way the
		// fallback is authoritative and the caller must not see an error.
		return s.fallback
	}
	return cred.Password
}

func (s *credentialServiceImpl) SetPassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if err := s.repo.UpsertAdminCredential(ctx, newPassword, time.Now().UTC()); err != nil {
		slog.Error("persist admin password failed", "error", err)
		return err
	}
	slog.Info("admin password updated")
	return nil
}
