// Package server provides the HTTP surface of the Arcana daemon: health and
// reading APIs, the camera preview stream, and the gesture event WebSocket.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lmorel/arcana/internal/app"
	"github.com/lmorel/arcana/internal/server/api"
	"github.com/lmorel/arcana/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server is the HTTP server for the Arcana application.
type Server struct {
	config Config
	mux    *http.ServeMux
	events *EventsHandler
	start  time.Time
}

// New creates a Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Store != nil {
		readingsHandler := api.NewReadingsHandler(s.config.Store)
		s.mux.Handle("/api/readings", readingsHandler)
		s.mux.Handle("/api/readings/", readingsHandler)

		sessionsHandler := api.NewSessionsHandler(s.config.Store)
		s.mux.Handle("/api/sessions", sessionsHandler)
		s.mux.Handle("/api/sessions/", sessionsHandler)
	}

	if s.config.App != nil {
		s.mux.Handle("/api/deck", api.NewDeckHandler(s.config.App))
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Camera()))

		// Gesture events are pushed from the pipeline rather than polled.
		s.events = NewEventsHandler()
		s.config.App.OnEvent(s.events.Publish)
		s.mux.Handle("/api/events", s.events)
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
