package gesture

import "github.com/lmorel/arcana/internal/detector"

// Classification thresholds, in normalized camera-space units.
// Y increases downward, so mcp.Y - tip.Y is how far a tip sits above
// its knuckle.
const (
	// fistThreshold: a finger is closed when its tip has not risen this
	// far above the knuckle.
	fistThreshold = 0.07
	// openThreshold: a finger counts as extended past this rise.
	openThreshold = 0.05
)

// nonThumbFingers pairs each finger tip with its MCP knuckle. The thumb is
// excluded on purpose: its geometry during a fist is too unreliable for a
// vertical threshold test.
var nonThumbFingers = [4][2]int{
	{detector.IndexTip, detector.IndexMCP},
	{detector.MiddleTip, detector.MiddleMCP},
	{detector.RingTip, detector.RingMCP},
	{detector.PinkyTip, detector.PinkyMCP},
}

func fingerClosed(tip, mcp detector.Point3D) bool {
	return mcp.Y-tip.Y < fistThreshold
}

func fingerExtended(tip, mcp detector.Point3D) bool {
	return mcp.Y-tip.Y > openThreshold
}

// IsFist reports whether the frame shows a closed fist: all four non-thumb
// fingers closed. Invalid frames are never a fist.
func IsFist(frame detector.Frame) bool {
	if !frame.Valid() {
		return false
	}
	for _, f := range nonThumbFingers {
		if !fingerClosed(frame[f[0]], frame[f[1]]) {
			return false
		}
	}
	return true
}

// IsPalmOpen reports whether the frame shows an open palm: at least three
// of the four non-thumb fingers extended, tolerating one noisy finger.
// Invalid frames are never open.
func IsPalmOpen(frame detector.Frame) bool {
	if !frame.Valid() {
		return false
	}
	extended := 0
	for _, f := range nonThumbFingers {
		if fingerExtended(frame[f[0]], frame[f[1]]) {
			extended++
		}
	}
	return extended >= 3
}

// PalmCenter returns the centroid of the wrist and the four MCP knuckles,
// a proxy for overall hand position that stays stable while individual
// fingers move. Invalid frames map to the origin.
func PalmCenter(frame detector.Frame) detector.Point3D {
	if !frame.Valid() {
		return detector.Point3D{}
	}

	joints := [5]int{
		detector.Wrist,
		detector.IndexMCP,
		detector.MiddleMCP,
		detector.RingMCP,
		detector.PinkyMCP,
	}

	var c detector.Point3D
	for _, j := range joints {
		c.X += frame[j].X
		c.Y += frame[j].Y
	}
	c.X /= float64(len(joints))
	c.Y /= float64(len(joints))
	return c
}
