package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/formdrop/backend/internal/model"
	"github.com/formdrop/backend/internal/notify"
	"github.com/formdrop/backend/internal/repository"
	"github.com/formdrop/backend/internal/service"
	"github.com/formdrop/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
)

// AdminHandler handles the admin panel endpoints: login, listing and
// deleting submissions, password rotation, logout.
type AdminHandler struct {
	gate        service.AuthService
	submissions service.SubmissionService
	notifier    notify.Notifier
}

// NewAdminHandler creates an AdminHandler with the given collaborators.
func NewAdminHandler(gate service.AuthService, submissions service.SubmissionService, notifier notify.Notifier) *AdminHandler {
	return &AdminHandler{gate: gate, submissions: submissions, notifier: notifier}
}

// verifyRequest is the expected JSON body for POST /admin/verify.
type verifyRequest struct {
	Password string `json:"password"`
}

// Verify handles POST /admin/verify. On a password match it issues a session
// token and hands it back as an HttpOnly cookie.
func (h *AdminHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	token, err := h.gate.Login(r.Context(), req.Password)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_password"})
		return
	}

	// Informational only; the login outcome is already decided, so the
	// send happens off the request path.
	ev := model.AccessEvent{IP: clientIP(r, 1), UserAgent: r.UserAgent(), At: time.Now().UTC()}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.notifier.NotifyAccess(ctx, ev); err != nil {
			slog.Warn("admin access notification failed", "error", err)
		}
	}()

	auth.SetSessionCookie(w, token)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// submissionsResponse is the JSON response for GET /admin/submissions.
type submissionsResponse struct {
	Rows []*model.Submission `json:"rows"`
}

// Submissions handles GET /admin/submissions (and its POST mirror for
// transports that block GET to API-like paths). Requires the admin gate.
// Supports optional limit/offset query params.
func (h *AdminHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	var opts model.SubmissionListOptions
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			opts.Limit = n
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	rows, err := h.submissions.List(r.Context(), opts)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, repository.ErrUnavailable) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "datastore_unavailable"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if rows == nil {
		rows = []*model.Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submissionsResponse{Rows: rows})
}

// Delete handles DELETE /admin/submissions/{id}. Requires the admin gate.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "id_required"})
		return
	}

	if err := h.submissions.DeleteByID(r.Context(), id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "delete_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// changePasswordRequest is the expected JSON body for POST /admin/change-password.
type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles POST /admin/change-password. Requires the admin
// gate plus confirmation of the current password. A successful rotation
// clears every session, including the caller's.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if err := h.gate.ChangePassword(r.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case errors.Is(err, service.ErrInvalidCredential):
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_current_password"})
		case errors.Is(err, service.ErrPasswordTooShort):
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "password_too_short"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "change_password_failed"})
		}
		return
	}

	auth.ClearSessionCookie(w)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// Logout handles POST /admin/logout. Always succeeds, with or without a
// valid session cookie.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Logout(auth.SessionTokenFromRequest(r))
	auth.ClearSessionCookie(w)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
