package httpapi

import (
	"net/http"
	"time"

	"github.com/Reaganz-Wat/devops-stage1-deployment/internal/httpapi/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	GreetingHandler http.HandlerFunc
	HealthHandler   http.HandlerFunc
	Logger          *zap.Logger
}

// NewRouter wires HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	if deps.Logger != nil {
		r.Use(middleware.RequestLogger(deps.Logger))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Neither route constrains the HTTP method, so both are registered
	// for all verbs.
	if deps.HealthHandler != nil {
		r.HandleFunc("/health", deps.HealthHandler)
	}
	if deps.GreetingHandler != nil {
		r.HandleFunc("/", deps.GreetingHandler)
	}

	return r
}
