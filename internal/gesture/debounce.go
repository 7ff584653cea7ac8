package gesture

import "time"

// DefaultCooldown is the suppression window between emitted events when the
// caller does not supply one.
const DefaultCooldown = 600 * time.Millisecond

// Debouncer turns the raw per-frame gesture stream into isolated discrete
// events: one emission per intent, with a global cooldown between events.
// One debouncer per session; not safe for concurrent use.
type Debouncer struct {
	cooldown time.Duration
	last     Gesture
	lastAt   time.Time
}

// NewDebouncer creates a Debouncer with the given cooldown.
// Non-positive cooldowns fall back to DefaultCooldown.
func NewDebouncer(cooldown time.Duration) *Debouncer {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Debouncer{cooldown: cooldown, last: None}
}

// Process applies the single-shot/cooldown gate to one raw gesture observed
// at time now. ok reports whether g should be delivered as a discrete event.
//
// A repeat of the last emitted gesture is suppressed until an intervening
// None re-arms it. Any non-None gesture inside the cooldown window is
// suppressed regardless of identity. An observed None clears the identity
// latch but leaves the cooldown clock running.
func (d *Debouncer) Process(g Gesture, now time.Time) (out Gesture, ok bool) {
	if g == None {
		d.last = None
		return None, false
	}
	if g == d.last {
		return None, false
	}
	if !d.lastAt.IsZero() && now.Sub(d.lastAt) < d.cooldown {
		return None, false
	}

	d.last = g
	d.lastAt = now
	return g, true
}

// Reset clears the identity latch and the cooldown clock, so the next
// non-None gesture emits immediately.
func (d *Debouncer) Reset() {
	d.last = None
	d.lastAt = time.Time{}
}
