package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter constructs a ServeMux with the submission API routes registered.
func NewRouter(h *Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/submit-application", h.SubmitApplication)
	mux.HandleFunc("/api/health", h.Health)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	return CORS(mux)
}
