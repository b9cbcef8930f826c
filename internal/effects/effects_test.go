package effects

import (
	"image/color"
	"math/rand"
	"testing"
)

func newTestSystem() *System {
	return NewSystem(rand.New(rand.NewSource(1)))
}

func TestSpawnExplosion(t *testing.T) {
	s := newTestSystem()
	s.SpawnExplosion(100, 100, color.NRGBA{R: 0, G: 255, B: 0, A: 255})

	if s.ParticleCount() != 18 {
		t.Fatalf("Expected 18 particles, got %d", s.ParticleCount())
	}

	for _, p := range s.particles {
		if p.Life < 250 || p.Life > 600 {
			t.Errorf("Expected particle life in [250, 600], got %v", p.Life)
		}
		if p.Radius < 2 || p.Radius > 4 {
			t.Errorf("Expected particle radius in [2, 4], got %d", p.Radius)
		}
		if p.X != 100 || p.Y != 100 {
			t.Errorf("Expected particle to start at (100, 100), got (%v, %v)", p.X, p.Y)
		}
	}
}

func TestParticleMotionAndDamping(t *testing.T) {
	s := newTestSystem()
	s.particles = []*Particle{{X: 0, Y: 0, VX: 1, VY: 2, Life: 100, MaxLife: 100, Radius: 3}}

	s.Update(16)

	p := s.particles[0]
	if p.X != 1 || p.Y != 2 {
		t.Errorf("Expected position (1, 2), got (%v, %v)", p.X, p.Y)
	}
	if p.VX != 0.98 || p.VY != 1.96 {
		t.Errorf("Expected damped velocity (0.98, 1.96), got (%v, %v)", p.VX, p.VY)
	}
	if p.Life != 84 {
		t.Errorf("Expected life 84, got %v", p.Life)
	}
}

func TestUpdateRemovesExpiredParticles(t *testing.T) {
	s := newTestSystem()
	s.particles = []*Particle{
		{Life: 10, MaxLife: 100},
		{Life: 500, MaxLife: 500},
	}

	s.Update(16)

	if s.ParticleCount() != 1 {
		t.Fatalf("Expected 1 surviving particle, got %d", s.ParticleCount())
	}
	if s.particles[0].Life != 484 {
		t.Errorf("Expected survivor life 484, got %v", s.particles[0].Life)
	}
}

func TestSpawnShockwaveDefaults(t *testing.T) {
	s := newTestSystem()
	s.SpawnShockwave(50, 60, color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	if s.ShockwaveCount() != 1 {
		t.Fatalf("Expected 1 shockwave, got %d", s.ShockwaveCount())
	}
	w := s.shockwaves[0]
	if w.R != 8 {
		t.Errorf("Expected start radius 8, got %v", w.R)
	}
	if w.MaxR != 90 {
		t.Errorf("Expected max radius 90, got %v", w.MaxR)
	}
	if w.Life != 350 {
		t.Errorf("Expected life 350, got %v", w.Life)
	}
}

func TestShockwaveGrowth(t *testing.T) {
	s := newTestSystem()
	s.SpawnShockwave(0, 0, color.NRGBA{A: 255})

	// 180 px/sec over 100ms grows the ring by 18px
	s.Update(100)

	if s.ShockwaveCount() != 1 {
		t.Fatalf("Expected shockwave to survive, got %d left", s.ShockwaveCount())
	}
	if got := s.shockwaves[0].R; got != 26 {
		t.Errorf("Expected radius 26 after 100ms, got %v", got)
	}
}

func TestShockwaveRemovedAtMaxRadius(t *testing.T) {
	s := newTestSystem()
	// Plenty of life left, but the ring is about to outgrow its cap
	s.shockwaves = []*Shockwave{{R: 89, MaxR: 90, Life: 300, MaxLife: 350}}

	s.Update(100)

	if s.ShockwaveCount() != 0 {
		t.Errorf("Expected shockwave removed at max radius, got %d left", s.ShockwaveCount())
	}
}

func TestTracerAndFlashExpiry(t *testing.T) {
	s := newTestSystem()
	s.SpawnTracer(0, 0, 100, 100)
	s.SpawnMuzzleFlash(10, 10)

	// Tracers live 120ms, flashes 90ms
	s.Update(100)
	if s.TracerCount() != 1 {
		t.Errorf("Expected tracer alive at 100ms, got %d", s.TracerCount())
	}
	if s.MuzzleFlashCount() != 0 {
		t.Errorf("Expected flash expired at 100ms, got %d", s.MuzzleFlashCount())
	}

	s.Update(100)
	if s.TracerCount() != 0 {
		t.Errorf("Expected tracer expired at 200ms, got %d", s.TracerCount())
	}
}
