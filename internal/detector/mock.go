package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// OpenPalmFrame returns a canonical open-palm frame: all four non-thumb
// finger tips well above their knuckles, thumb out to the side, wrist at
// the bottom center of the image.
func OpenPalmFrame() Frame {
	f := make(Frame, NumLandmarks)

	f[Wrist] = Point3D{X: 0.50, Y: 0.80}

	// Thumb extended to the side
	f[ThumbCMC] = Point3D{X: 0.56, Y: 0.74, Z: 0.02}
	f[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	f[ThumbIP] = Point3D{X: 0.68, Y: 0.66, Z: 0.03}
	f[ThumbTip] = Point3D{X: 0.73, Y: 0.62, Z: 0.03}

	// Index finger extended upward
	f[IndexMCP] = Point3D{X: 0.56, Y: 0.62}
	f[IndexPIP] = Point3D{X: 0.57, Y: 0.52}
	f[IndexDIP] = Point3D{X: 0.58, Y: 0.42}
	f[IndexTip] = Point3D{X: 0.58, Y: 0.34}

	// Middle finger extended upward (slightly longer)
	f[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	f[MiddlePIP] = Point3D{X: 0.50, Y: 0.49}
	f[MiddleDIP] = Point3D{X: 0.50, Y: 0.38}
	f[MiddleTip] = Point3D{X: 0.50, Y: 0.30}

	// Ring finger extended upward
	f[RingMCP] = Point3D{X: 0.44, Y: 0.62}
	f[RingPIP] = Point3D{X: 0.43, Y: 0.52}
	f[RingDIP] = Point3D{X: 0.42, Y: 0.43}
	f[RingTip] = Point3D{X: 0.42, Y: 0.36}

	// Pinky finger extended upward
	f[PinkyMCP] = Point3D{X: 0.38, Y: 0.66}
	f[PinkyPIP] = Point3D{X: 0.37, Y: 0.58}
	f[PinkyDIP] = Point3D{X: 0.36, Y: 0.50}
	f[PinkyTip] = Point3D{X: 0.36, Y: 0.44}

	return f
}

// FistFrame returns a canonical closed-fist frame: every non-thumb finger
// tip at or below its knuckle, thumb folded across the fingers.
func FistFrame() Frame {
	f := make(Frame, NumLandmarks)

	f[Wrist] = Point3D{X: 0.50, Y: 0.80}

	// Thumb folded across the curled fingers
	f[ThumbCMC] = Point3D{X: 0.56, Y: 0.75, Z: 0.01}
	f[ThumbMCP] = Point3D{X: 0.58, Y: 0.71, Z: 0.00}
	f[ThumbIP] = Point3D{X: 0.55, Y: 0.69, Z: -0.02}
	f[ThumbTip] = Point3D{X: 0.50, Y: 0.68, Z: -0.03}

	// Index finger curled, tip below the knuckle
	f[IndexMCP] = Point3D{X: 0.56, Y: 0.62}
	f[IndexPIP] = Point3D{X: 0.57, Y: 0.58, Z: -0.03}
	f[IndexDIP] = Point3D{X: 0.56, Y: 0.61, Z: -0.05}
	f[IndexTip] = Point3D{X: 0.54, Y: 0.65, Z: -0.04}

	// Middle finger curled
	f[MiddleMCP] = Point3D{X: 0.50, Y: 0.60}
	f[MiddlePIP] = Point3D{X: 0.50, Y: 0.56, Z: -0.03}
	f[MiddleDIP] = Point3D{X: 0.49, Y: 0.59, Z: -0.05}
	f[MiddleTip] = Point3D{X: 0.48, Y: 0.63, Z: -0.04}

	// Ring finger curled
	f[RingMCP] = Point3D{X: 0.44, Y: 0.62}
	f[RingPIP] = Point3D{X: 0.44, Y: 0.58, Z: -0.03}
	f[RingDIP] = Point3D{X: 0.43, Y: 0.61, Z: -0.05}
	f[RingTip] = Point3D{X: 0.42, Y: 0.65, Z: -0.04}

	// Pinky finger curled
	f[PinkyMCP] = Point3D{X: 0.38, Y: 0.66}
	f[PinkyPIP] = Point3D{X: 0.38, Y: 0.63, Z: -0.03}
	f[PinkyDIP] = Point3D{X: 0.37, Y: 0.65, Z: -0.04}
	f[PinkyTip] = Point3D{X: 0.36, Y: 0.68, Z: -0.03}

	return f
}
