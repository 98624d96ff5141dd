package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/formdrop/backend/internal/model"
	"github.com/formdrop/backend/internal/notify"
)

// AccessHandler handles the public admin-access notification endpoint.
type AccessHandler struct {
	notifier notify.Notifier
}

// NewAccessHandler creates an AccessHandler with the given notifier.
func NewAccessHandler(notifier notify.Notifier) *AccessHandler {
	return &AccessHandler{notifier: notifier}
}

// accessRequest is the expected JSON body for POST /api/admin-access.
// All fields are caller-claimed and must not be treated as trustworthy
// telemetry; absent fields default from the request itself.
type accessRequest struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	Timestamp string `json:"timestamp"`
}

// Notify handles POST /api/admin-access. It fires a best-effort notification
// and reports the outcome of the send itself, independent of any auth state.
func (h *AccessHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req accessRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	ev := model.AccessEvent{
		IP:        req.IP,
		UserAgent: req.UserAgent,
		At:        time.Now().UTC(),
	}
	if ev.IP == "" {
		ev.IP = clientIP(r, 1)
	}
	if ev.UserAgent == "" {
		ev.UserAgent = r.UserAgent()
	}
	if req.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, req.Timestamp); err == nil {
			ev.At = t
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := h.notifier.NotifyAccess(r.Context(), ev); err != nil {
		slog.Warn("admin access notification failed", "error", err)
		_ = json.NewEncoder(w).Encode(map[string]any{"sent": false, "error": "send_failed"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"sent": true})
}
