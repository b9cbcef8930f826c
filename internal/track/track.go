// Package track supplies aim and gesture input to the game. The primary
// implementation reads hand landmarks from an out-of-process tracking
// service over a websocket and classifies finger poses into shoot, reload
// and pause gestures; a mouse-backed tracker serves as the fallback when the
// service is unavailable.
package track

// Point is a pixel position in screen coordinates.
type Point struct {
	X int
	Y int
}

// Gestures is one tick's worth of classified hand poses. The zero value
// means no gesture detected.
type Gestures struct {
	Shoot  bool
	Reload bool
	Pause  bool
}

// Tracker is the input boundary the game polls once per tick. A tracker
// that cannot see a hand returns nil landmarks; DetectGestures on nil or
// incomplete landmarks yields the zero Gestures, so a lost frame suppresses
// gestures for that tick only.
type Tracker interface {
	// Landmarks returns the current hand landmark positions in screen
	// coordinates, or nil when no hand is visible.
	Landmarks() []Point

	// DetectGestures classifies the landmark frame into gesture flags.
	DetectGestures(landmarks []Point) Gestures

	// AimPosition derives the smoothed aim point from the landmark frame.
	// The second return is false when no aim is available.
	AimPosition(landmarks []Point) (Point, bool)

	// Shutdown releases the tracker's resources. It is safe to call once
	// regardless of how much of the tracker initialized.
	Shutdown()
}
