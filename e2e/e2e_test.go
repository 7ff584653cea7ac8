package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/lmorel/arcana/internal/app"
	"github.com/lmorel/arcana/internal/deck"
	"github.com/lmorel/arcana/internal/detector"
	"github.com/lmorel/arcana/internal/gesture"
	"github.com/lmorel/arcana/internal/server"
	"github.com/lmorel/arcana/internal/store"
)

func TestE2E_CardSelectionWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "data.db")

	s, err := store.New(dbPath)
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	application := app.New(app.Config{
		Store:    s,
		Cooldown: 10 * time.Millisecond,
	})
	application.SetDetector(detector.NewMockDetector())

	srv := server.New(server.Config{Store: s, App: application})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := ts.Client()

	t.Run("Health", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/health")
		if err != nil {
			t.Fatalf("health check error = %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	})

	t.Run("DeckStartsAtTheFool", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/deck")
		if err != nil {
			t.Fatalf("deck request error = %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Cards   []deck.Card `json:"cards"`
			Hovered int         `json:"hovered"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode deck: %v", err)
		}
		if len(body.Cards) != 22 {
			t.Fatalf("expected 22 cards, got %d", len(body.Cards))
		}
		if body.Hovered != 0 {
			t.Errorf("hovered = %d, want 0", body.Hovered)
		}
	})

	// Simulate a hand browsing the spread and confirming a card. Events
	// flow through the real engine, selector, and store.
	sessionID := application.StartSession()

	var events []app.Event
	application.OnEvent(func(ev app.Event) { events = append(events, ev) })

	t.Run("BrowseAndConfirm", func(t *testing.T) {
		palm := detector.OpenPalmFrame()
		t0 := time.Now()
		application.Feed(palm, t0)
		application.Feed(palm.Shift(-0.2, 0), t0.Add(50*time.Millisecond))
		application.Feed(detector.FistFrame(), t0.Add(100*time.Millisecond))

		if len(events) != 2 {
			t.Fatalf("got %d events, want 2", len(events))
		}
		if events[0].Gesture != gesture.SwipeRight {
			t.Errorf("first gesture = %s, want %s", events[0].Gesture, gesture.SwipeRight)
		}
		if events[1].Gesture != gesture.Fist || events[1].Confirmed == nil {
			t.Fatalf("second event should confirm a card, got %+v", events[1])
		}
		if events[1].Confirmed.Name != "The Magician" {
			t.Errorf("confirmed card = %s, want The Magician", events[1].Confirmed.Name)
		}
	})

	t.Run("ReadingVisibleOverAPI", func(t *testing.T) {
		resp, err := client.Get(ts.URL + "/api/readings?session=" + sessionID)
		if err != nil {
			t.Fatalf("readings request error = %v", err)
		}
		defer resp.Body.Close()

		var body struct {
			Readings []struct {
				CardName string `json:"card_name"`
				Gesture  string `json:"gesture"`
			} `json:"readings"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode readings: %v", err)
		}
		if len(body.Readings) != 1 {
			t.Fatalf("expected 1 reading, got %d", len(body.Readings))
		}
		if body.Readings[0].CardName != "The Magician" {
			t.Errorf("card = %s, want The Magician", body.Readings[0].CardName)
		}
	})
}
