// Package detector provides hand landmark detection interfaces and types
// for the Arcana gesture pipeline.
package detector

// Hand landmark indices following the MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a normalized camera-space point. X and Y are in [0,1] with Y
// increasing downward; X is the raw, unmirrored camera coordinate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Frame is one ordered set of hand landmarks for a single video frame.
// A frame is only meaningful when it carries exactly NumLandmarks points;
// anything else (including nil) means "no hand present" and every stage of
// the pipeline treats it that way rather than reporting an error.
type Frame []Point3D

// Valid reports whether the frame carries a complete set of landmarks.
func (f Frame) Valid() bool {
	return len(f) == NumLandmarks
}

// Shift returns a copy of the frame translated by (dx, dy). Useful for
// synthesizing motion sequences from a single pose.
func (f Frame) Shift(dx, dy float64) Frame {
	if f == nil {
		return nil
	}
	out := make(Frame, len(f))
	for i, p := range f {
		out[i] = Point3D{X: p.X + dx, Y: p.Y + dy, Z: p.Z}
	}
	return out
}

// Hand is one detected hand: its landmark frame plus detection metadata.
type Hand struct {
	Frame      Frame   `json:"points"`
	Handedness string  `json:"handedness"` // "Left" or "Right"
	Score      float64 `json:"score"`
}
