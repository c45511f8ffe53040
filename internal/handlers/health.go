// internal/handlers/health.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthHandler serves the liveness payload at GET /api/health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}
