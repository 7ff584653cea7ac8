package gesture

import (
	"time"

	"github.com/lmorel/arcana/internal/detector"
)

// Engine is the per-session pipeline entry point. It owns the previous
// frame, the motion accumulator, and the debounce gate, and applies the
// fixed precedence fist > per-frame swipe > accumulated swipe > none.
//
// One Engine per tracking session (camera attach to camera detach). Frames
// must be delivered in capture order; the engine performs no I/O and never
// blocks. Not safe for concurrent use.
type Engine struct {
	tracker  *MotionTracker
	debounce *Debouncer
	prev     detector.Frame
}

// NewEngine creates an Engine whose debounce gate uses the given cooldown
// (DefaultCooldown when non-positive).
func NewEngine(cooldown time.Duration) *Engine {
	return &Engine{
		tracker:  NewMotionTracker(),
		debounce: NewDebouncer(cooldown),
	}
}

// Step consumes the next frame and returns the debounced event for it, or
// None.
//
// An invalid frame counts as hand loss: it resets the motion accumulator
// and the previous-frame reference but not the debounce cooldown. A
// cooldown started just before the hand disappears keeps suppressing
// after it reappears.
func (e *Engine) Step(frame detector.Frame, now time.Time) Gesture {
	if !frame.Valid() {
		e.tracker.Reset()
		e.prev = nil
		e.debounce.Process(None, now)
		return None
	}

	raw := Dispatch(frame, e.prev)
	if raw == None && e.prev.Valid() {
		raw = e.tracker.Step(PalmCenter(frame), PalmCenter(e.prev)).Gesture()
	}
	e.prev = frame

	out, ok := e.debounce.Process(raw, now)
	if !ok {
		return None
	}
	return out
}

// Reset returns the engine to its initial state, including the debounce
// gate. Used when a session is torn down and restarted.
func (e *Engine) Reset() {
	e.tracker.Reset()
	e.debounce.Reset()
	e.prev = nil
}
