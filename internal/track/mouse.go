package track

import "chosenoffset.com/quickdraw/internal/render"

// MouseTracker is the fallback input when the hand tracking service is
// unavailable: the cursor aims, left click shoots, right click reloads and
// middle click pauses. It never reports landmarks.
type MouseTracker struct {
	input   render.InputManager
	screenW int
	screenH int
}

// NewMouseTracker creates a mouse-backed tracker clamped to the given
// screen dimensions.
func NewMouseTracker(input render.InputManager, screenW, screenH int) *MouseTracker {
	return &MouseTracker{
		input:   input,
		screenW: screenW,
		screenH: screenH,
	}
}

// Landmarks always returns nil; there is no hand to track.
func (m *MouseTracker) Landmarks() []Point {
	return nil
}

// DetectGestures maps mouse buttons onto the gesture set.
func (m *MouseTracker) DetectGestures(_ []Point) Gestures {
	return Gestures{
		Shoot:  m.input.IsMouseButtonPressed(render.MouseButtonLeft),
		Reload: m.input.IsMouseButtonPressed(render.MouseButtonRight),
		Pause:  m.input.IsMouseButtonPressed(render.MouseButtonMiddle),
	}
}

// AimPosition returns the cursor position clamped inside the screen.
func (m *MouseTracker) AimPosition(_ []Point) (Point, bool) {
	x, y := m.input.GetCursorPosition()
	x = clampInt(x, 0, m.screenW-1)
	y = clampInt(y, 0, m.screenH-1)
	return Point{X: x, Y: y}, true
}

// Shutdown is a no-op; the mouse needs no teardown.
func (m *MouseTracker) Shutdown() {}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
