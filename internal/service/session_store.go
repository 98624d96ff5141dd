package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/formdrop/backend/pkg/auth"
)

// sessionEntry is the server-side state for one admin session token.
type sessionEntry struct {
	createdAt time.Time
	expiresAt time.Time
}

// SessionStore manages the lifetime of admin session tokens in memory.
// State is process-local: a restart logs out every admin session.
// All mutation is serialized by the mutex, so a Revoke racing a Touch on
// the same token can never resurrect the entry.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]sessionEntry),
		now:      time.Now,
	}
}

// Create generates a new opaque token and records it with a fresh TTL window.
func (s *SessionStore) Create() (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("session create failed: token generation", "error", err)
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sessions[token] = sessionEntry{
		createdAt: now,
		expiresAt: now.Add(auth.SessionDuration),
	}
	slog.Debug("session created", "token_prefix", token[:16], "expires_at", now.Add(auth.SessionDuration))
	return token, nil
}

// IsValid reports whether the token identifies a live session.
// An expired entry is evicted on lookup (lazy expiry).
func (s *SessionStore) IsValid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, token)
		slog.Debug("session expired", "token_prefix", token[:min(16, len(token))])
		return false
	}
	return true
}

// Touch extends a live session's expiry to now + TTL (sliding expiration).
// Touching an absent or expired token is a no-op; it never resurrects.
func (s *SessionStore) Touch(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok {
		return
	}
	now := s.now()
	if !now.Before(entry.expiresAt) {
		delete(s.sessions, token)
		return
	}
	entry.expiresAt = now.Add(auth.SessionDuration)
	s.sessions[token] = entry
}

// Revoke removes the session if present. Idempotent.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Clear removes every session. Used after a password change to force
// re-authentication everywhere.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.sessions)
	s.sessions = make(map[string]sessionEntry)
	if n > 0 {
		slog.Info("all sessions cleared", "count", n)
	}
}
