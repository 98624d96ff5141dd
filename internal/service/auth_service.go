package service

import (
	"context"

	"github.com/formdrop/backend/pkg/auth"
)

// AuthService is the business logic behind the admin gate: one authorization
// predicate plus the session lifecycle operations driven by the panel.
type AuthService interface {
	// Authorize allows a request carrying either the shared API key or a
	// live session token. Returns the granted method (auth.MethodAPIKey or
	// auth.MethodSession) and whether access is allowed. A session pass
	// slides the session's expiry window.
	Authorize(presentedKey, presentedToken string) (string, bool)

	// Login verifies the admin password and returns a fresh session token.
	Login(ctx context.Context, password string) (string, error)

	// Logout revokes the presented session token. Total: an absent or
	// already-expired token is not an error.
	Logout(presentedToken string)

	// ChangePassword rotates the admin password and clears every session.
	// The caller must already have passed Authorize; knowing the current
	// password is additionally required.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// Ensure the production gate satisfies both its own interface and the
// middleware-facing subset.
var (
	_ AuthService = (*authGate)(nil)
	_ auth.Gate   = (*authGate)(nil)
)
