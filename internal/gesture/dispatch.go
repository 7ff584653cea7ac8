package gesture

import "github.com/lmorel/arcana/internal/detector"

// frameSwipeThreshold is the single-step displacement for the fast-path
// swipe check. Tighter than the accumulated threshold: a deliberate upward
// flick typically clears it in one frame, a slow horizontal page usually
// does not.
const frameSwipeThreshold = 0.015

// Dispatch classifies a single frame against its predecessor. A fist wins
// over any motion signal for the frame. Otherwise the single-step palm
// displacement is checked against frameSwipeThreshold. Slow multi-frame
// swipes are invisible here: when Dispatch yields None the caller routes
// the same frame pair into a MotionTracker.
func Dispatch(curr, prev detector.Frame) Gesture {
	if !curr.Valid() {
		return None
	}
	if IsFist(curr) {
		return Fist
	}
	if !prev.Valid() {
		return None
	}

	c := PalmCenter(curr)
	p := PalmCenter(prev)
	return stepDirection(c.X-p.X, c.Y-p.Y, frameSwipeThreshold).Gesture()
}
