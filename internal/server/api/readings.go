// Package api provides HTTP API handlers for the Arcana daemon.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lmorel/arcana/internal/store"
)

// ReadingsHandler handles HTTP requests for reading resources.
type ReadingsHandler struct {
	store *store.Store
}

// NewReadingsHandler creates a ReadingsHandler with the given store.
func NewReadingsHandler(s *store.Store) *ReadingsHandler {
	return &ReadingsHandler{store: s}
}

// ServeHTTP routes requests to the collection and item endpoints.
// Expected paths: /api/readings or /api/readings/{id}
func (h *ReadingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/readings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type readingResponse struct {
	ID             string `json:"id"`
	SessionID      string `json:"session_id"`
	CardIndex      int    `json:"card_index"`
	CardName       string `json:"card_name"`
	Gesture        string `json:"gesture"`
	Interpretation string `json:"interpretation"`
	CreatedAt      string `json:"created_at"`
}

type listReadingsResponse struct {
	Readings []readingResponse `json:"readings"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toReadingResponse(rd *store.Reading) readingResponse {
	return readingResponse{
		ID:             rd.ID,
		SessionID:      rd.SessionID,
		CardIndex:      rd.CardIndex,
		CardName:       rd.CardName,
		Gesture:        rd.Gesture,
		Interpretation: rd.Interpretation,
		CreatedAt:      rd.CreatedAt.Format(time.RFC3339),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/readings. With ?session={id} it returns only that
// session's readings.
func (h *ReadingsHandler) list(w http.ResponseWriter, r *http.Request) {
	var readings []*store.Reading
	var err error

	if sessionID := r.URL.Query().Get("session"); sessionID != "" {
		readings, err = h.store.Readings().ListBySession(sessionID)
	} else {
		readings, err = h.store.Readings().List()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list readings")
		return
	}

	response := listReadingsResponse{
		Readings: make([]readingResponse, 0, len(readings)),
	}
	for _, rd := range readings {
		response.Readings = append(response.Readings, toReadingResponse(rd))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/readings/{id}.
func (h *ReadingsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	reading, err := h.store.Readings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Reading not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get reading")
		return
	}

	writeJSON(w, http.StatusOK, toReadingResponse(reading))
}

// delete handles DELETE /api/readings/{id}.
func (h *ReadingsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Readings().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Reading not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete reading")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
