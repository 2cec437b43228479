package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	files_http "github.com/saransh1220/html-drop/internal/modules/files/interfaces/http"
)

// RouterConfig holds the handlers needed for routing
type RouterConfig struct {
	FileHandler *files_http.FileHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// File Routes
	mux.HandleFunc("GET /view", config.FileHandler.View)
	mux.HandleFunc("POST /upload", config.FileHandler.Upload)

	return mux
}
