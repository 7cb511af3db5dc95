package handler

import (
	"net/http"
	"time"

	"github.com/eventmate/api/internal/database"
	"github.com/eventmate/api/internal/model"
)

// APIVersion is reported by the root and health routes.
const APIVersion = "1.0.0"

// HealthHandler serves the root route, the health check and the 404
// fallback for unknown routes.
type HealthHandler struct {
	db        database.Database
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// Root handles GET / with a service banner and an endpoint index
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"name":      "EventMate API",
		"version":   APIVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": map[string]string{
			"events":  "/events",
			"guests":  "/guests",
			"vendors": "/vendors",
			"health":  "/health",
		},
	}

	WriteData(w, http.StatusOK, data, "Welcome to the EventMate API")
}

// Health handles GET /health reporting liveness and database connectivity
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	dbState := "connected"
	if err := h.db.Ping(r.Context()); err != nil {
		dbState = "disconnected"
	}

	data := map[string]interface{}{
		"status":   "ok",
		"uptime":   time.Since(h.startTime).Round(time.Second).String(),
		"database": dbState,
	}

	WriteData(w, http.StatusOK, data, "EventMate API is running")
}

// NotFound is the JSON fallback for unknown routes
func (h *HealthHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, &model.APIError{
		Status:  http.StatusNotFound,
		Message: "Route not found",
	})
}
