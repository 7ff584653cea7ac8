// Package gesture turns the per-frame stream of hand landmarks into
// discrete, debounced user-intent events for the touchless card UI.
//
// The pipeline has four stages: geometric classification of a single frame
// (fist, open palm, palm center), a single-step swipe check between
// consecutive frames, a motion accumulator for slower multi-frame swipes,
// and a debounce gate that keeps one intent from flooding into many events.
// Engine ties the stages together behind one Step call per captured frame.
package gesture

// Gesture is the closed vocabulary of events the pipeline can emit.
type Gesture string

const (
	// SwipeLeft pages the card hover to the left.
	SwipeLeft Gesture = "swipe-left"
	// SwipeRight pages the card hover to the right.
	SwipeRight Gesture = "swipe-right"
	// SwipeUp confirms the hovered card.
	SwipeUp Gesture = "swipe-up"
	// Fist confirms the hovered card.
	Fist Gesture = "fist"
	// None means no hand, or no classifiable intent. "No hand detected"
	// and "ambiguous geometry" are both None, never an error.
	None Gesture = "none"
)

// Direction is the instantaneous dominant motion direction between two
// consecutive palm centers.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirNone  Direction = "none"
)

// Gesture maps a motion direction onto the swipe vocabulary.
func (d Direction) Gesture() Gesture {
	switch d {
	case DirLeft:
		return SwipeLeft
	case DirRight:
		return SwipeRight
	case DirUp:
		return SwipeUp
	default:
		return None
	}
}
