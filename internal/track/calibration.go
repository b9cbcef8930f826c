package track

// Calibration derives an aim sensitivity signal from hand position. The
// wrist's vertical position relative to half the screen height gives a rough
// distance proxy, clamped to [0.5, 2.0]. Sensitivity in turn drives how
// aggressively the movement filter smooths.
type Calibration struct {
	Sensitivity float64
	Deadzone    int // px; movements below this snap to the previous reading
}

// NewCalibration returns a calibration with neutral sensitivity and a 5px
// deadzone.
func NewCalibration() *Calibration {
	return &Calibration{
		Sensitivity: 1.0,
		Deadzone:    5,
	}
}

// AdjustSensitivity recomputes sensitivity from the wrist landmark and
// returns it. An empty frame leaves the previous value in place.
func (c *Calibration) AdjustSensitivity(landmarks []Point, screenHeight int) float64 {
	if len(landmarks) == 0 {
		return c.Sensitivity
	}
	wristY := landmarks[0].Y
	base := screenHeight / 2
	if base < 1 {
		base = 1
	}
	s := float64(wristY) / float64(base)
	if s < 0.5 {
		s = 0.5
	}
	if s > 2.0 {
		s = 2.0
	}
	c.Sensitivity = s
	return s
}
