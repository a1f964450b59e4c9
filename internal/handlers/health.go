package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides a health check endpoint for the local server.
type HealthHandler struct {
	log *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		log: log,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ServeHTTP handles health check requests.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}, h.log)
}
