package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

// APIKeyHeader is the request header carrying the shared admin secret.
const APIKeyHeader = "x-api-key"

type contextKey string

const authMethodKey contextKey = "auth_method"

// Auth methods recorded in the request context after a successful gate pass.
const (
	MethodAPIKey  = "api_key"
	MethodSession = "session"
)

// WithAuthMethod は context に認可方式をセットする
func WithAuthMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, authMethodKey, method)
}

// AuthMethodFromContext returns how the request passed the admin gate.
// Returns false when the gate was not passed.
func AuthMethodFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(authMethodKey).(string)
	return v, ok
}

// Gate is the single authorization predicate guarding admin operations.
// Implemented by service.AuthGate.
type Gate interface {
	// Authorize returns the granted method (MethodAPIKey or MethodSession)
	// and whether access is allowed.
	Authorize(presentedKey, presentedToken string) (string, bool)
}

// RequireAdmin は管理者専用ミドルウェア。API キーまたはセッションクッキーを検証する
func RequireAdmin(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			token := SessionTokenFromRequest(r)

			method, ok := gate.Authorize(key, token)
			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			ctx := WithAuthMethod(r.Context(), method)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
