package track

import "log"

// Hand landmark indices, matching the 21-point layout produced by the
// tracking service (wrist first, then four joints per finger).
const (
	landmarkIndexTip = 8
	landmarkCount    = 21
)

const defaultFilterSize = 5

// LandmarkSource supplies the most recent frame of normalized hand
// landmarks. A frame that is missing or too old to act on returns ok=false.
type LandmarkSource interface {
	Latest() ([]NormPoint, bool)
	Close() error
}

// HandTracker turns landmark frames from a source into aim positions and
// gestures. Aim is smoothed through a moving-average filter whose window
// adapts to the calibrated sensitivity.
type HandTracker struct {
	source      LandmarkSource
	screenW     int
	screenH     int
	filter      *MovementFilter
	calibration *Calibration
}

// NewHandTracker wraps a landmark source for the given screen dimensions.
func NewHandTracker(source LandmarkSource, screenW, screenH int) *HandTracker {
	return &HandTracker{
		source:      source,
		screenW:     screenW,
		screenH:     screenH,
		filter:      NewMovementFilter(defaultFilterSize),
		calibration: NewCalibration(),
	}
}

// Landmarks fetches the latest frame and scales it to screen coordinates.
// Returns nil when no fresh frame is available.
func (t *HandTracker) Landmarks() []Point {
	pts, ok := t.source.Latest()
	if !ok {
		return nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: int(p.X * float64(t.screenW)),
			Y: int(p.Y * float64(t.screenH)),
		}
	}
	return out
}

// fingerState records which of the four classified fingers point up. The
// thumb is deliberately left out; its extension axis is horizontal and not
// robust across handedness.
type fingerState struct {
	index  bool
	middle bool
	ring   bool
	pinky  bool
}

// fingersUp classifies finger extension by comparing each tip against its
// PIP joint: a smaller y means the tip is above the joint in image space.
// Index finger joints run MCP=5, PIP=6, DIP=7, TIP=8; the other fingers
// follow in groups of four.
func fingersUp(landmarks []Point) fingerState {
	extended := func(tip, pip int) bool {
		return landmarks[tip].Y < landmarks[pip].Y
	}
	return fingerState{
		index:  extended(8, 6),
		middle: extended(12, 10),
		ring:   extended(16, 14),
		pinky:  extended(20, 18),
	}
}

// DetectGestures classifies the frame: index finger alone is shoot, a fist
// is reload, an open palm is pause. Frames with fewer than 21 landmarks
// yield no gestures.
func (t *HandTracker) DetectGestures(landmarks []Point) Gestures {
	if len(landmarks) < landmarkCount {
		return Gestures{}
	}
	fingers := fingersUp(landmarks)

	return Gestures{
		Shoot:  fingers.index && !fingers.middle && !fingers.ring && !fingers.pinky,
		Reload: !fingers.index && !fingers.middle && !fingers.ring && !fingers.pinky,
		Pause:  fingers.index && fingers.middle && fingers.ring && fingers.pinky,
	}
}

// AimPosition returns the smoothed index-fingertip position. Sensitivity is
// recalibrated per frame and shrinks the filter window when the hand is
// close (more responsive) or grows it when far (steadier).
func (t *HandTracker) AimPosition(landmarks []Point) (Point, bool) {
	if len(landmarks) <= landmarkIndexTip {
		return Point{}, false
	}

	sens := t.calibration.AdjustSensitivity(landmarks, t.screenH)
	switch {
	case sens >= 1.6:
		t.filter.SetSize(3)
	case sens >= 1.2:
		t.filter.SetSize(4)
	case sens >= 0.8:
		t.filter.SetSize(5)
	default:
		t.filter.SetSize(7)
	}

	pos := landmarks[landmarkIndexTip]
	if last, ok := t.filter.Last(); ok {
		dx := pos.X - last.X
		dy := pos.Y - last.Y
		if absInt(dx) < t.calibration.Deadzone && absInt(dy) < t.calibration.Deadzone {
			pos = last
		}
	}
	t.filter.Add(pos)
	return t.filter.Position()
}

// Shutdown closes the landmark source.
func (t *HandTracker) Shutdown() {
	if err := t.source.Close(); err != nil {
		log.Printf("closing landmark source: %v", err)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
