package handler

import (
	"encoding/json"
	"net/http"
)

// Health handles GET /_health. No auth, no datastore dependency.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
