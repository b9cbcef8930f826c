// Package target implements the circular shooting targets: spawn-time
// attribute derivation from the difficulty multipliers, bounce physics
// for the moving kind, and the inclusive circle hit test.
package target

import (
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/quickdraw/internal/render"
)

// Kind identifies a target variety.
type Kind int

const (
	// Static is a stationary mid-size target.
	Static Kind = iota
	// Moving drifts and bounces off the playfield edges.
	Moving
	// Small is stationary but half the size, worth the most points.
	Small
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Moving:
		return "moving"
	case Small:
		return "small"
	}
	return "unknown"
}

const minRadius = 8

// Target is one live target. Radius, Points and Color are fixed at
// construction; only position and velocity change afterward.
type Target struct {
	X, Y   float64
	Kind   Kind
	Radius int
	Points int
	Color  color.NRGBA
	VX, VY float64

	boundsW int
	boundsH int
}

// New constructs a target at (x, y) with the active difficulty
// multipliers baked in. A later profile change does not touch targets
// already spawned.
func New(rng *rand.Rand, x, y float64, kind Kind, boundsW, boundsH int, speedMul, sizeMul, pointsMul float64) *Target {
	t := &Target{
		X:       x,
		Y:       y,
		Kind:    kind,
		boundsW: boundsW,
		boundsH: boundsH,
	}

	baseRadius := 40.0
	basePoints := 10.0
	switch kind {
	case Static:
		t.Color = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	case Moving:
		basePoints = 20
		t.Color = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
		speed := (1.0 + rng.Float64()*2.0) * math.Max(0.1, speedMul)
		ang := rng.Float64() * 2 * math.Pi
		t.VX = math.Cos(ang) * speed
		t.VY = math.Sin(ang) * speed
	case Small:
		baseRadius = 20
		basePoints = 30
		t.Color = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	}

	t.Radius = int(math.Round(baseRadius * sizeMul))
	if t.Radius < minRadius {
		t.Radius = minRadius
	}
	t.Points = int(math.Round(basePoints * pointsMul))
	return t
}

// Update advances the target by one tick. Only the moving kind has
// velocity; it bounces elastically off the playfield edges, clamping
// position to the boundary so it never tunnels out.
func (t *Target) Update() {
	if t.Kind != Moving {
		return
	}
	t.X += t.VX
	t.Y += t.VY

	r := float64(t.Radius)
	if t.X < r {
		t.X = r
		t.VX = -t.VX
	} else if t.X > float64(t.boundsW)-r {
		t.X = float64(t.boundsW) - r
		t.VX = -t.VX
	}
	if t.Y < r {
		t.Y = r
		t.VY = -t.VY
	} else if t.Y > float64(t.boundsH)-r {
		t.Y = float64(t.boundsH) - r
		t.VY = -t.VY
	}
}

// CheckCollision reports whether (x, y) lies inside the target. The
// boundary counts as a hit.
func (t *Target) CheckCollision(x, y int) bool {
	dx := float64(x) - t.X
	dy := float64(y) - t.Y
	r := float64(t.Radius)
	return dx*dx+dy*dy <= r*r
}

// Draw renders the target as a filled disc with a black outline.
func (t *Target) Draw(r render.Renderer, dst render.Image) {
	x := float32(t.X)
	y := float32(t.Y)
	radius := float32(t.Radius)
	r.FillCircle(dst, x, y, radius, t.Color)
	r.StrokeCircle(dst, x, y, radius, 2, color.NRGBA{A: 255})
}
