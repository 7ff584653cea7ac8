package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/lmorel/arcana/internal/store"
)

// newTestStore creates a Store with a temporary database for testing.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func seedReading(t *testing.T, s *store.Store, id, sessionID string, cardIndex int, cardName string) {
	t.Helper()

	if err := s.Sessions().Create(&store.Session{ID: sessionID}); err != nil {
		// Session may already exist for a second reading.
		if _, gerr := s.Sessions().GetByID(sessionID); gerr != nil {
			t.Fatalf("failed to create session: %v", err)
		}
	}
	if err := s.Readings().Create(&store.Reading{
		ID:        id,
		SessionID: sessionID,
		CardIndex: cardIndex,
		CardName:  cardName,
		Gesture:   "fist",
		CreatedAt: time.Now(),
	}); err != nil {
		t.Fatalf("failed to create reading: %v", err)
	}
}

func TestReadingsHandler_List(t *testing.T) {
	s := newTestStore(t)
	handler := NewReadingsHandler(s)

	seedReading(t, s, "r1", "sess-1", 0, "The Fool")
	seedReading(t, s, "r2", "sess-2", 13, "Death")

	req := httptest.NewRequest(http.MethodGet, "/api/readings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listReadingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Readings) != 2 {
		t.Fatalf("expected 2 readings, got %d", len(response.Readings))
	}
}

func TestReadingsHandler_ListBySession(t *testing.T) {
	s := newTestStore(t)
	handler := NewReadingsHandler(s)

	seedReading(t, s, "r1", "sess-1", 0, "The Fool")
	seedReading(t, s, "r2", "sess-2", 13, "Death")

	req := httptest.NewRequest(http.MethodGet, "/api/readings?session=sess-2", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listReadingsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Readings) != 1 {
		t.Fatalf("expected 1 reading, got %d", len(response.Readings))
	}
	if response.Readings[0].CardName != "Death" {
		t.Errorf("expected card 'Death', got %s", response.Readings[0].CardName)
	}
}

func TestReadingsHandler_Get(t *testing.T) {
	s := newTestStore(t)
	handler := NewReadingsHandler(s)

	seedReading(t, s, "r1", "sess-1", 17, "The Star")

	t.Run("existing reading", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/readings/r1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response readingResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.CardIndex != 17 || response.CardName != "The Star" {
			t.Errorf("unexpected reading: %+v", response)
		}
	})

	t.Run("missing reading", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/readings/nope", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}

func TestReadingsHandler_Delete(t *testing.T) {
	s := newTestStore(t)
	handler := NewReadingsHandler(s)

	seedReading(t, s, "r1", "sess-1", 0, "The Fool")

	req := httptest.NewRequest(http.MethodDelete, "/api/readings/r1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	if _, err := s.Readings().GetByID("r1"); err == nil {
		t.Error("reading should be gone after delete")
	}
}

func TestReadingsHandler_MethodNotAllowed(t *testing.T) {
	s := newTestStore(t)
	handler := NewReadingsHandler(s)

	req := httptest.NewRequest(http.MethodPost, "/api/readings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}

func TestSessionsHandler_Get(t *testing.T) {
	s := newTestStore(t)
	handler := NewSessionsHandler(s)

	if err := s.Sessions().Create(&store.Session{ID: "sess-1"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	for _, g := range []string{"swipe-left", "swipe-left", "fist"} {
		if err := s.Events().Create(&store.Event{
			SessionID: "sess-1",
			Gesture:   g,
			CreatedAt: time.Now(),
		}); err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/sess-1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response sessionDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Events != 3 {
		t.Errorf("expected 3 events, got %d", response.Events)
	}
	if len(response.Gestures) != 3 {
		t.Fatalf("expected 3 gestures, got %d", len(response.Gestures))
	}
	if response.Gestures[2].Gesture != "fist" {
		t.Errorf("expected last gesture 'fist', got %s", response.Gestures[2].Gesture)
	}
}

func TestSessionsHandler_List(t *testing.T) {
	s := newTestStore(t)
	handler := NewSessionsHandler(s)

	if err := s.Sessions().Create(&store.Session{ID: "sess-1"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response listSessionsResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(response.Sessions))
	}
}
