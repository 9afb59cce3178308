package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"separator-calculator/internal/calculator"
	"separator-calculator/internal/handlers"
	"separator-calculator/internal/observability"
)

// NewRouter assembles the middleware chain, the operational endpoints and the
// separator calculators.
func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Get("/", calculator.Index)
	calculator.RegisterRoutes(r)

	return r
}
