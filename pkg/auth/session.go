package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

// SessionDuration is the validity window of an admin session. The window
// slides: each authenticated use restarts it.
const SessionDuration = time.Hour

const sessionCookieName = "formdrop_session"

// SessionCookieName はセッションクッキー名
func SessionCookieName() string {
	return sessionCookieName
}

// GenerateSessionToken returns a 64-char hex opaque token (32 random bytes).
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SetSessionCookie writes the session token as an HttpOnly cookie.
// SameSite=None + Secure because the admin panel is served from a
// different origin than the API.
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// SessionTokenFromRequest extracts the session token from the request
// cookie. Returns "" when no cookie is present.
func SessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
