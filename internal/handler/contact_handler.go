package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/formdrop/backend/internal/model"
	"github.com/formdrop/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles public contact form submission.
type ContactHandler struct {
	submissions service.SubmissionService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(submissions service.SubmissionService) *ContactHandler {
	return &ContactHandler{submissions: submissions}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// name and email are required; company and message are optional.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	if len([]rune(req.Message)) > maxMessageLength {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "message_too_long"})
		return
	}

	sub := &model.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	if err := h.submissions.Create(r.Context(), sub); err != nil {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case errors.Is(err, service.ErrNameRequired):
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "name_required"})
		case errors.Is(err, service.ErrEmailRequired):
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "email_required"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": sub.ID, "success": true})
}
