package api

import (
	"net/http"

	"github.com/lmorel/arcana/internal/app"
	"github.com/lmorel/arcana/internal/deck"
)

// DeckHandler exposes the card spread and the current hover position.
type DeckHandler struct {
	app *app.App
}

// NewDeckHandler creates a DeckHandler over the running app.
func NewDeckHandler(a *app.App) *DeckHandler {
	return &DeckHandler{app: a}
}

type deckResponse struct {
	Cards   []deck.Card `json:"cards"`
	Hovered int         `json:"hovered"`
	Enabled bool        `json:"enabled"`
}

// ServeHTTP handles GET /api/deck.
func (h *DeckHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, deckResponse{
		Cards:   h.app.Cards(),
		Hovered: h.app.Hovered().Index,
		Enabled: h.app.IsEnabled(),
	})
}
