package gesture

import (
	"testing"
	"time"

	"github.com/lmorel/arcana/internal/detector"
)

func TestEngine_PerFrameSwipe(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	palm := detector.OpenPalmFrame()

	if got := e.Step(palm, t0); got != None {
		t.Fatalf("first frame = %v, want none", got)
	}
	if got := e.Step(palm.Shift(0, -0.2), t0.Add(33*time.Millisecond)); got != SwipeUp {
		t.Errorf("upward flick = %v, want swipe-up", got)
	}
}

func TestEngine_FistPriority(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Fist fires on the very first frame, with no previous frame needed.
	if got := e.Step(detector.FistFrame(), t0); got != Fist {
		t.Errorf("fist frame = %v, want fist", got)
	}
}

func TestEngine_AccumulatedSwipe(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	palm := detector.OpenPalmFrame()

	// Per-frame displacement of 0.012 sits below the fast-path threshold,
	// so only the accumulator can see this swipe. The sum crosses 0.06 on
	// the sixth frame pair.
	frame := palm
	now := t0
	if got := e.Step(frame, now); got != None {
		t.Fatalf("first frame = %v, want none", got)
	}

	var events []Gesture
	for i := 0; i < 8; i++ {
		frame = frame.Shift(0.012, 0)
		now = now.Add(33 * time.Millisecond)
		if got := e.Step(frame, now); got != None {
			events = append(events, got)
		}
	}

	if len(events) != 1 || events[0] != SwipeLeft {
		t.Errorf("accumulated swipe events = %v, want exactly one swipe-left", events)
	}
}

func TestEngine_HandLossResetsTrackerOnly(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	palm := detector.OpenPalmFrame()

	// Build up 4 x 0.014 = 0.056 of horizontal accumulation.
	frame := palm
	now := t0
	e.Step(frame, now)
	for i := 0; i < 4; i++ {
		frame = frame.Shift(0.014, 0)
		now = now.Add(33 * time.Millisecond)
		if got := e.Step(frame, now); got != None {
			t.Fatalf("accumulating step = %v, want none", got)
		}
	}

	// Hand disappears.
	now = now.Add(33 * time.Millisecond)
	if got := e.Step(nil, now); got != None {
		t.Fatalf("invalid frame = %v, want none", got)
	}

	// The hand reappears and keeps drifting. The first frame has no
	// predecessor; the next delta alone must not emit, which proves the
	// pre-loss accumulation was discarded.
	now = now.Add(33 * time.Millisecond)
	if got := e.Step(frame, now); got != None {
		t.Fatalf("reacquired frame = %v, want none", got)
	}
	frame = frame.Shift(0.014, 0)
	now = now.Add(33 * time.Millisecond)
	if got := e.Step(frame, now); got != None {
		t.Errorf("first delta after reacquire = %v, want none", got)
	}
}

func TestEngine_HandLossKeepsCooldown(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := e.Step(detector.FistFrame(), t0); got != Fist {
		t.Fatalf("fist = %v, want fist", got)
	}

	// Hand loss clears the identity latch but the cooldown survives, so a
	// fist right after the hand reappears stays suppressed.
	e.Step(nil, t0.Add(50*time.Millisecond))
	if got := e.Step(detector.FistFrame(), t0.Add(100*time.Millisecond)); got != None {
		t.Errorf("fist inside cooldown = %v, want none", got)
	}

	// Once the cooldown lapses the re-armed fist emits again.
	e.Step(nil, t0.Add(150*time.Millisecond))
	if got := e.Step(detector.FistFrame(), t0.Add(700*time.Millisecond)); got != Fist {
		t.Errorf("fist after cooldown = %v, want fist", got)
	}
}

func TestEngine_Reset(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e.Step(detector.FistFrame(), t0)
	e.Reset()

	// A full reset clears the cooldown too.
	if got := e.Step(detector.FistFrame(), t0.Add(time.Millisecond)); got != Fist {
		t.Errorf("fist after Reset = %v, want fist", got)
	}
}

func TestEngine_DebouncesRepeatedFist(t *testing.T) {
	e := NewEngine(500 * time.Millisecond)
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fist := detector.FistFrame()

	emitted := 0
	for i := 0; i < 30; i++ {
		if got := e.Step(fist, t0.Add(time.Duration(i)*33*time.Millisecond)); got == Fist {
			emitted++
		}
	}

	// A held fist across ~1s of frames produces exactly one event; the
	// identity latch never re-arms without an intervening none.
	if emitted != 1 {
		t.Errorf("held fist emitted %d events, want 1", emitted)
	}
}
