package handlers

import (
	"net/http"
)

// HealthResponse is the liveness probe payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health responds with basic service status. Orchestration tooling
// polls this route to decide whether the instance is alive.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}
