package deck

import "github.com/lmorel/arcana/internal/gesture"

// Selector tracks which card the user is hovering and applies gesture
// events to it. Horizontal swipes move the hover index with wraparound;
// swipe-up and fist confirm the hovered card. One selector per session;
// not safe for concurrent use.
type Selector struct {
	cards []Card
	hover int
}

// NewSelector creates a Selector over the given spread, hovering the first
// card. An empty spread falls back to the major arcana.
func NewSelector(cards []Card) *Selector {
	if len(cards) == 0 {
		cards = MajorArcana()
	}
	return &Selector{cards: cards}
}

// Apply routes one debounced gesture event. The returned card is non-nil
// only when the gesture confirms the hovered card; movement and none
// return nil.
func (s *Selector) Apply(g gesture.Gesture) *Card {
	switch g {
	case gesture.SwipeLeft:
		s.hover = (s.hover - 1 + len(s.cards)) % len(s.cards)
	case gesture.SwipeRight:
		s.hover = (s.hover + 1) % len(s.cards)
	case gesture.SwipeUp, gesture.Fist:
		c := s.cards[s.hover]
		return &c
	}
	return nil
}

// Hovered returns the currently hovered card.
func (s *Selector) Hovered() Card {
	return s.cards[s.hover]
}

// Cards returns the spread the selector was built over.
func (s *Selector) Cards() []Card {
	return s.cards
}

// Reset moves the hover back to the first card.
func (s *Selector) Reset() {
	s.hover = 0
}
