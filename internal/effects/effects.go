// Package effects implements the transient visual feedback layered over the
// playfield: particle bursts when a target dies, expanding shockwave rings,
// shot tracers, and muzzle flashes at the aim point. Effects are purely
// cosmetic; nothing here feeds back into game state.
package effects

import (
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/quickdraw/internal/render"
)

const (
	explosionParticles = 18
	particleDamping    = 0.98

	shockwaveStartRadius = 8.0
	shockwaveMaxRadius   = 90.0
	shockwaveLifeMS      = 350.0
	shockwaveGrowthPxSec = 180.0

	tracerLifeMS = 120.0
	flashLifeMS  = 90.0
)

// Particle is a single explosion fragment. Velocity decays a little every
// tick so bursts settle instead of flying off screen.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64 // remaining, ms
	MaxLife float64
	Radius  int
	Color   color.NRGBA
}

// Shockwave is an expanding ring left behind by a destroyed target.
type Shockwave struct {
	X, Y    int
	R       float64
	MaxR    float64
	Life    float64 // remaining, ms
	MaxLife float64
	Color   color.NRGBA
}

// Tracer is a short-lived shot line drawn from the aim point toward the
// struck target.
type Tracer struct {
	SX, SY  int
	EX, EY  int
	Life    float64 // remaining, ms
	MaxLife float64
}

// MuzzleFlash is a brief two-tone flare at the aim point when a shot fires.
type MuzzleFlash struct {
	X, Y    int
	Life    float64 // remaining, ms
	MaxLife float64
}

// System owns all live effects and advances them on a fixed per-kind
// schedule. Effects keep aging while the game is paused.
type System struct {
	rng *rand.Rand

	particles  []*Particle
	shockwaves []*Shockwave
	tracers    []*Tracer
	flashes    []*MuzzleFlash
}

// NewSystem creates an empty effect system using the given random source for
// particle scatter.
func NewSystem(rng *rand.Rand) *System {
	return &System{rng: rng}
}

// SpawnExplosion scatters a burst of particles in the destroyed target's
// color. Each particle gets a random direction, speed in [1.5, 4.0), life in
// [250, 600] ms and radius in [2, 4].
func (s *System) SpawnExplosion(x, y int, clr color.NRGBA) {
	for i := 0; i < explosionParticles; i++ {
		ang := s.rng.Float64() * 2 * math.Pi
		spd := 1.5 + s.rng.Float64()*2.5
		life := float64(250 + s.rng.Intn(351))
		s.particles = append(s.particles, &Particle{
			X:       float64(x),
			Y:       float64(y),
			VX:      math.Cos(ang) * spd,
			VY:      math.Sin(ang) * spd,
			Life:    life,
			MaxLife: life,
			Radius:  2 + s.rng.Intn(3),
			Color:   clr,
		})
	}
}

// SpawnShockwave starts an expanding ring at (x, y) in the given color.
func (s *System) SpawnShockwave(x, y int, clr color.NRGBA) {
	s.shockwaves = append(s.shockwaves, &Shockwave{
		X:       x,
		Y:       y,
		R:       shockwaveStartRadius,
		MaxR:    shockwaveMaxRadius,
		Life:    shockwaveLifeMS,
		MaxLife: shockwaveLifeMS,
		Color:   clr,
	})
}

// SpawnTracer adds a shot line from the aim position toward the hit target.
func (s *System) SpawnTracer(sx, sy, ex, ey int) {
	s.tracers = append(s.tracers, &Tracer{
		SX:      sx,
		SY:      sy,
		EX:      ex,
		EY:      ey,
		Life:    tracerLifeMS,
		MaxLife: tracerLifeMS,
	})
}

// SpawnMuzzleFlash adds a flash at the aim position.
func (s *System) SpawnMuzzleFlash(x, y int) {
	s.flashes = append(s.flashes, &MuzzleFlash{
		X:       x,
		Y:       y,
		Life:    flashLifeMS,
		MaxLife: flashLifeMS,
	})
}

// Update advances every effect by dtMS milliseconds and drops the ones that
// have run out. Removal is a filtered keep so slices are reused.
func (s *System) Update(dtMS float64) {
	keptParticles := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= particleDamping
		p.VY *= particleDamping
		p.Life -= dtMS
		if p.Life > 0 {
			keptParticles = append(keptParticles, p)
		}
	}
	s.particles = keptParticles

	keptWaves := s.shockwaves[:0]
	for _, w := range s.shockwaves {
		w.R += shockwaveGrowthPxSec * (dtMS / 1000.0)
		w.Life -= dtMS
		if w.R < w.MaxR && w.Life > 0 {
			keptWaves = append(keptWaves, w)
		}
	}
	s.shockwaves = keptWaves

	keptTracers := s.tracers[:0]
	for _, t := range s.tracers {
		t.Life -= dtMS
		if t.Life > 0 {
			keptTracers = append(keptTracers, t)
		}
	}
	s.tracers = keptTracers

	keptFlashes := s.flashes[:0]
	for _, f := range s.flashes {
		f.Life -= dtMS
		if f.Life > 0 {
			keptFlashes = append(keptFlashes, f)
		}
	}
	s.flashes = keptFlashes
}

// Draw renders all live effects: explosion particles first, then muzzle
// flashes, shockwaves and tracers on top.
func (s *System) Draw(r render.Renderer, dst render.Image) {
	for _, p := range s.particles {
		frac := lifeFrac(p.Life, p.MaxLife)
		radius := maxInt(1, int(float64(p.Radius)*frac))
		clr := p.Color
		clr.A = uint8(255 * frac)
		r.FillCircle(dst, float32(p.X), float32(p.Y), float32(radius), clr)
	}

	for _, f := range s.flashes {
		frac := lifeFrac(f.Life, f.MaxLife)
		radius := maxInt(6, int(18*frac))
		x := float32(f.X)
		y := float32(f.Y)
		r.FillCircle(dst, x, y, float32(radius), color.NRGBA{R: 255, G: 240, B: 120, A: 200})
		r.FillCircle(dst, x, y, float32(maxInt(2, radius/2)), color.NRGBA{R: 255, G: 120, B: 0, A: 220})
	}

	for _, w := range s.shockwaves {
		frac := lifeFrac(w.Life, w.MaxLife)
		clr := w.Color
		clr.A = uint8(200 * frac)
		width := maxInt(1, int(6*frac))
		r.StrokeCircle(dst, float32(w.X), float32(w.Y), float32(w.R), float32(width), clr)
	}

	for _, t := range s.tracers {
		frac := 1.0 - lifeFrac(t.Life, t.MaxLife)
		px := t.SX + int(float64(t.EX-t.SX)*frac)
		py := t.SY + int(float64(t.EY-t.SY)*frac)
		r.StrokeLine(dst, float32(t.SX), float32(t.SY), float32(px), float32(py), 2, color.NRGBA{R: 255, G: 255, B: 180, A: 255})
	}
}

// ParticleCount returns the number of live explosion particles.
func (s *System) ParticleCount() int { return len(s.particles) }

// ShockwaveCount returns the number of live shockwaves.
func (s *System) ShockwaveCount() int { return len(s.shockwaves) }

// TracerCount returns the number of live tracers.
func (s *System) TracerCount() int { return len(s.tracers) }

// MuzzleFlashCount returns the number of live muzzle flashes.
func (s *System) MuzzleFlashCount() int { return len(s.flashes) }

func lifeFrac(life, maxLife float64) float64 {
	if maxLife <= 0 {
		return 0
	}
	frac := life / maxLife
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
