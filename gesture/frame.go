// Package gesture turns noisy hand-landmark frames from an external
// detector into smoothed, hysteretic control signals: a growth scalar
// from the primary hand and a distortion cursor from the secondary one.
package gesture

// Landmark indices for the two fingertips used by pinch classification,
// following the standard 21-point hand layout.
const (
	landmarkThumbTip = 4
	landmarkIndexTip = 8
)

// numLandmarks is the fixed landmark count per detected hand.
const numLandmarks = 21

// Point is a 2D landmark normalized to [0,1] in detector frame space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand is one detected hand's ordered landmark set.
type Hand [numLandmarks]Point

// Frame is one detection pass. Hand identity is positional: the first
// entry controls growth, the second controls distortion. The detector
// does not guarantee a stable mapping to physical hands across frames.
type Frame struct {
	// TimestampMS is the source video frame timestamp. Frames whose
	// timestamp has not advanced are dropped by the interpreter.
	TimestampMS float64 `json:"ts"`
	Hands       []Hand  `json:"hands"`
}

// Signals is the control state published to the render loop. Values
// are snapshots: the frame driver reads whatever was most recently
// published and stale-by-one reads are expected.
type Signals struct {
	Growth float64

	// CursorX/Y are NDC in [-1,1]; valid only while CursorActive.
	CursorX, CursorY float64
	CursorActive     bool

	// HandsSeen and Pinching are surfaced for the HUD.
	HandsSeen int
	Pinching  bool
}
