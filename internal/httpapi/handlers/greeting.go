package handlers

import (
	"net/http"
	"time"
)

// isoLayout renders naive local time with microsecond precision,
// e.g. 2024-01-01T12:00:00.000000.
const isoLayout = "2006-01-02T15:04:05.000000"

// GreetingResponse is the payload served from the root route.
type GreetingResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Greeting responds with the stage 1 welcome payload stamped with the
// current wall-clock time.
func Greeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GreetingResponse{
		Message:   "Hello from DevOps Stage 1 - Django!",
		Status:    "success",
		Timestamp: time.Now().Format(isoLayout),
	})
}
