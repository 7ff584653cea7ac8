package gesture

import (
	"math"

	"github.com/lmorel/arcana/internal/detector"
)

const (
	// swipeThreshold is the accumulated palm displacement that counts as
	// a deliberate swipe.
	swipeThreshold = 0.06
	// maxTrackedFrames bounds how long a swipe attempt may accumulate
	// before it is discarded as stale.
	maxTrackedFrames = 10
)

// stepDirection classifies a single palm-center delta. Vertical motion wins
// when it dominates and points upward. The camera feed is mirrored for the
// user, so a positive dx (the hand physically moving to the user's right)
// reads as a semantic left, and vice versa.
func stepDirection(dx, dy, threshold float64) Direction {
	if math.Abs(dy) > math.Abs(dx) && dy < -threshold {
		return DirUp
	}
	if dx > threshold {
		return DirLeft
	}
	if dx < -threshold {
		return DirRight
	}
	return DirNone
}

// MotionTracker integrates palm-center deltas across frames to catch
// deliberate swipes that are too slow for the single-frame check.
// One tracker per session; not safe for concurrent use.
type MotionTracker struct {
	dx, dy  float64
	frames  int
	lastDir Direction
}

// NewMotionTracker creates an empty tracker.
func NewMotionTracker() *MotionTracker {
	return &MotionTracker{lastDir: DirNone}
}

// Step folds one (current, previous) palm-center pair into the accumulator.
// It returns the swipe direction exactly once when the accumulated
// displacement crosses the threshold, and DirNone while still accumulating.
// Frames must arrive in capture order.
func (t *MotionTracker) Step(curr, prev detector.Point3D) Direction {
	dx := curr.X - prev.X
	dy := curr.Y - prev.Y

	dir := stepDirection(dx, dy, 0)

	// A reversal discards prior accumulation, so a hand wavering back and
	// forth never adds up to a swipe.
	if t.lastDir != DirNone && dir != DirNone && dir != t.lastDir {
		t.dx = 0
		t.dy = 0
		t.frames = 0
	}
	t.lastDir = dir

	t.dx += dx
	t.dy += dy
	t.frames++

	// Vertical first: the upward flick is the more intentional gesture.
	if t.dy < -swipeThreshold {
		t.Reset()
		return DirUp
	}
	if math.Abs(t.dx) > swipeThreshold {
		sum := t.dx
		t.Reset()
		if sum > 0 {
			return DirLeft
		}
		return DirRight
	}

	// Stale attempt: too many frames without a crossing.
	if t.frames >= maxTrackedFrames {
		t.Reset()
	}
	return DirNone
}

// Reset zeroes all accumulator state immediately, e.g. on hand loss.
func (t *MotionTracker) Reset() {
	t.dx = 0
	t.dy = 0
	t.frames = 0
	t.lastDir = DirNone
}
