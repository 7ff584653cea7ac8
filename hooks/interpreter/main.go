// Package main provides a stock interpreter hook. It reads a confirmed card
// from stdin and answers with a short canned interpretation, serving as both
// a working default and a template for custom interpreters.
package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Request is the input from the daemon.
type Request struct {
	Card      string `json:"card"`
	CardIndex int    `json:"cardIndex"`
	Gesture   string `json:"gesture"`
	SessionID string `json:"sessionId"`
}

// Response is the output back to the daemon.
type Response struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	Interpretation string `json:"interpretation,omitempty"`
}

// interpretations holds one short upright meaning per major arcana card.
var interpretations = map[string]string{
	"The Fool":             "A leap into the unknown. Trust the journey before the map exists.",
	"The Magician":         "Every tool you need is already on the table. Begin.",
	"The High Priestess":   "The answer is not out there. Sit with what you already know.",
	"The Empress":          "Growth wants tending, not forcing. Nurture what is alive.",
	"The Emperor":          "Structure is not a cage. Build the frame that holds the work.",
	"The Hierophant":       "Tradition carries lessons. Learn the rules before bending them.",
	"The Lovers":           "A real choice is in front of you. Choose with the whole self.",
	"The Chariot":          "Opposing forces pull at once. Drive them in one direction.",
	"Strength":             "The quiet kind of power. Patience over force.",
	"The Hermit":           "Step back from the noise. The lantern lights one step at a time.",
	"Wheel of Fortune":     "The wheel turns without asking. Ride the change, not against it.",
	"Justice":              "Cause meets consequence. Weigh the decision honestly.",
	"The Hanged Man":       "Nothing moves right now, and that is the point. See it upside down.",
	"Death":                "An ending clears the ground. Let go of what is already over.",
	"Temperance":           "Blend, do not choose. The middle path holds both.",
	"The Devil":            "Look at the chain before claiming it cannot be broken.",
	"The Tower":            "What falls was built on a flaw. Rebuild on rock.",
	"The Star":             "After the storm, a clear sky. Hope is a discipline.",
	"The Moon":             "Not everything is as it appears tonight. Walk carefully.",
	"The Sun":              "Plain, warm, honest success. Enjoy it without suspicion.",
	"Judgement":            "An old call sounds again. Answer it this time.",
	"The World":            "The circle closes. Finish, celebrate, and only then begin anew.",
}

func main() {
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeResponse(Response{Success: false, Error: fmt.Sprintf("failed to decode request: %v", err)})
		os.Exit(1)
	}

	text, ok := interpretations[req.Card]
	if !ok {
		writeResponse(Response{Success: false, Error: fmt.Sprintf("unknown card: %q", req.Card)})
		os.Exit(1)
	}

	writeResponse(Response{Success: true, Interpretation: text})
}

func writeResponse(resp Response) {
	json.NewEncoder(os.Stdout).Encode(resp)
}
