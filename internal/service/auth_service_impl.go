package service

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/formdrop/backend/pkg/auth"
)

// authGate is the production implementation of AuthService.
type authGate struct {
	sessions *SessionStore
	creds    CredentialService
	apiKey   string
}

// NewAuthService creates the admin gate from its collaborators and the
// statically configured shared API key.
func NewAuthService(sessions *SessionStore, creds CredentialService, apiKey string) AuthService {
	return &authGate{sessions: sessions, creds: creds, apiKey: apiKey}
}

func (g *authGate) Authorize(presentedKey, presentedToken string) (string, bool) {
	if presentedKey != "" &&
		subtle.ConstantTimeCompare([]byte(presentedKey), []byte(g.apiKey)) == 1 {
		return auth.MethodAPIKey, true
	}
	if presentedToken != "" && g.sessions.IsValid(presentedToken) {
		g.sessions.Touch(presentedToken)
		return auth.MethodSession, true
	}
	return "", false
}

func (g *authGate) Login(ctx context.Context, password string) (string, error) {
	if password == "" || password != g.creds.CurrentPassword(ctx) {
		slog.Warn("admin login rejected")
		return "", ErrInvalidCredential
	}
	token, err := g.sessions.Create()
	if err != nil {
		return "", err
	}
	slog.Info("admin login", "token_prefix", token[:16])
	return token, nil
}

func (g *authGate) Logout(presentedToken string) {
	if presentedToken != "" {
		g.sessions.Revoke(presentedToken)
	}
}

func (g *authGate) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	// Defense in depth: a valid API key or session alone is not enough to
	// rotate the password.
	if currentPassword != g.creds.CurrentPassword(ctx) {
		return ErrInvalidCredential
	}
	if err := g.creds.SetPassword(ctx, newPassword); err != nil {
		return err
	}
	// Every outstanding session predates the rotation; force re-login.
	g.sessions.Clear()
	return nil
}
