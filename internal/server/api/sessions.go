package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lmorel/arcana/internal/store"
)

// SessionsHandler handles HTTP requests for session resources.
type SessionsHandler struct {
	store *store.Store
}

// NewSessionsHandler creates a SessionsHandler with the given store.
func NewSessionsHandler(s *store.Store) *SessionsHandler {
	return &SessionsHandler{store: s}
}

// ServeHTTP routes requests to the collection and item endpoints.
// Expected paths: /api/sessions or /api/sessions/{id}
func (h *SessionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/api/sessions")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w, r)
		return
	}
	h.get(w, r, path)
}

type sessionResponse struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at,omitempty"`
	Events    int    `json:"events"`
}

type sessionDetailResponse struct {
	sessionResponse
	Gestures []gestureEventResponse `json:"gestures"`
}

type gestureEventResponse struct {
	Gesture   string `json:"gesture"`
	CreatedAt string `json:"created_at"`
}

type listSessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

func (h *SessionsHandler) toResponse(sess *store.Session) sessionResponse {
	resp := sessionResponse{
		ID:        sess.ID,
		StartedAt: sess.StartedAt.Format(time.RFC3339),
	}
	if sess.EndedAt != nil {
		resp.EndedAt = sess.EndedAt.Format(time.RFC3339)
	}
	if count, err := h.store.Events().CountBySession(sess.ID); err == nil {
		resp.Events = count
	}
	return resp
}

// list handles GET /api/sessions.
func (h *SessionsHandler) list(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.store.Sessions().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list sessions")
		return
	}

	response := listSessionsResponse{
		Sessions: make([]sessionResponse, 0, len(sessions)),
	}
	for _, sess := range sessions {
		response.Sessions = append(response.Sessions, h.toResponse(sess))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/sessions/{id} and includes the session's gesture
// history.
func (h *SessionsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sess, err := h.store.Sessions().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get session")
		return
	}

	events, err := h.store.Events().ListBySession(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list session events")
		return
	}

	response := sessionDetailResponse{
		sessionResponse: h.toResponse(sess),
		Gestures:        make([]gestureEventResponse, 0, len(events)),
	}
	for _, ev := range events {
		response.Gestures = append(response.Gestures, gestureEventResponse{
			Gesture:   ev.Gesture,
			CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, response)
}
