package track

import "math"

// MovementFilter smooths aim positions with a trailing moving average. The
// window size can shrink or grow at runtime; shrinking keeps the most recent
// entries.
type MovementFilter struct {
	size int
	buf  []Point
}

// NewMovementFilter creates a filter averaging over at most size positions.
// Sizes below 1 are raised to 1.
func NewMovementFilter(size int) *MovementFilter {
	if size < 1 {
		size = 1
	}
	return &MovementFilter{size: size}
}

// SetSize changes the window size, dropping the oldest entries if the buffer
// no longer fits.
func (f *MovementFilter) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	if size == f.size {
		return
	}
	f.size = size
	if len(f.buf) > size {
		f.buf = append([]Point(nil), f.buf[len(f.buf)-size:]...)
	}
}

// Add appends a position, evicting the oldest when the window is full.
func (f *MovementFilter) Add(p Point) {
	f.buf = append(f.buf, p)
	if len(f.buf) > f.size {
		f.buf = f.buf[1:]
	}
}

// Last returns the most recently added position.
func (f *MovementFilter) Last() (Point, bool) {
	if len(f.buf) == 0 {
		return Point{}, false
	}
	return f.buf[len(f.buf)-1], true
}

// Position returns the rounded average of the buffered positions.
func (f *MovementFilter) Position() (Point, bool) {
	if len(f.buf) == 0 {
		return Point{}, false
	}
	var sx, sy int
	for _, p := range f.buf {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(f.buf))
	return Point{
		X: int(math.Round(float64(sx) / n)),
		Y: int(math.Round(float64(sy) / n)),
	}, true
}

// Len returns the number of buffered positions.
func (f *MovementFilter) Len() int {
	return len(f.buf)
}
