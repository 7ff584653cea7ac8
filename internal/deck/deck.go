// Package deck models the tarot deck and the hover/confirm selection state
// driven by debounced gesture events.
package deck

// Card is one tarot card in the spread.
type Card struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// majorArcana lists the 22 major arcana in traditional order.
var majorArcana = []string{
	"The Fool",
	"The Magician",
	"The High Priestess",
	"The Empress",
	"The Emperor",
	"The Hierophant",
	"The Lovers",
	"The Chariot",
	"Strength",
	"The Hermit",
	"Wheel of Fortune",
	"Justice",
	"The Hanged Man",
	"Death",
	"Temperance",
	"The Devil",
	"The Tower",
	"The Star",
	"The Moon",
	"The Sun",
	"Judgement",
	"The World",
}

// MajorArcana returns the 22 major arcana cards in order.
func MajorArcana() []Card {
	cards := make([]Card, len(majorArcana))
	for i, name := range majorArcana {
		cards[i] = Card{Index: i, Name: name}
	}
	return cards
}
