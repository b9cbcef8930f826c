package target

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(11))
}

func TestNewDerivesAttributesByKind(t *testing.T) {
	rng := newTestRNG()
	tests := []struct {
		kind       Kind
		wantRadius int
		wantPoints int
		wantColor  color.NRGBA
	}{
		{Static, 40, 10, color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{Moving, 40, 20, color.NRGBA{R: 255, G: 255, B: 0, A: 255}},
		{Small, 20, 30, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
	}
	for _, tt := range tests {
		tgt := New(rng, 100, 100, tt.kind, 1280, 720, 1, 1, 1)
		if tgt.Radius != tt.wantRadius {
			t.Errorf("%s: expected radius %d, got %d", tt.kind, tt.wantRadius, tgt.Radius)
		}
		if tgt.Points != tt.wantPoints {
			t.Errorf("%s: expected points %d, got %d", tt.kind, tt.wantPoints, tgt.Points)
		}
		if tgt.Color != tt.wantColor {
			t.Errorf("%s: expected color %v, got %v", tt.kind, tt.wantColor, tgt.Color)
		}
	}
}

func TestNewAppliesMultipliers(t *testing.T) {
	rng := newTestRNG()

	tgt := New(rng, 100, 100, Static, 1280, 720, 1, 1.1, 0.9)
	if tgt.Radius != 44 {
		t.Errorf("Expected radius 44 with size mul 1.1, got %d", tgt.Radius)
	}
	if tgt.Points != 9 {
		t.Errorf("Expected points 9 with points mul 0.9, got %d", tgt.Points)
	}

	small := New(rng, 100, 100, Small, 1280, 720, 1, 1.2, 1.2)
	if small.Radius != 24 {
		t.Errorf("Expected radius 24 with size mul 1.2, got %d", small.Radius)
	}
	if small.Points != 36 {
		t.Errorf("Expected points 36 with points mul 1.2, got %d", small.Points)
	}
}

func TestNewEnforcesRadiusFloor(t *testing.T) {
	rng := newTestRNG()
	tgt := New(rng, 100, 100, Small, 1280, 720, 1, 0.1, 1)
	if tgt.Radius != 8 {
		t.Errorf("Expected radius floored at 8, got %d", tgt.Radius)
	}
}

func TestMovingVelocityRange(t *testing.T) {
	rng := newTestRNG()
	for i := 0; i < 200; i++ {
		tgt := New(rng, 100, 100, Moving, 1280, 720, 1, 1, 1)
		speed := math.Hypot(tgt.VX, tgt.VY)
		if speed < 1.0 || speed >= 3.0 {
			t.Fatalf("Expected speed in [1, 3), got %f", speed)
		}
	}
}

func TestMovingSpeedMultiplierFloor(t *testing.T) {
	rng := newTestRNG()
	// A zero multiplier is floored at 0.1 so moving targets never stall.
	for i := 0; i < 50; i++ {
		tgt := New(rng, 100, 100, Moving, 1280, 720, 0, 1, 1)
		speed := math.Hypot(tgt.VX, tgt.VY)
		if speed < 0.1 || speed >= 0.3 {
			t.Fatalf("Expected floored speed in [0.1, 0.3), got %f", speed)
		}
	}
}

func TestStaticAndSmallDoNotMove(t *testing.T) {
	rng := newTestRNG()
	for _, kind := range []Kind{Static, Small} {
		tgt := New(rng, 200, 200, kind, 1280, 720, 1, 1, 1)
		tgt.Update()
		if tgt.X != 200 || tgt.Y != 200 {
			t.Errorf("%s: expected target to stay put, got (%f, %f)", kind, tgt.X, tgt.Y)
		}
	}
}

func TestMovingTargetMoves(t *testing.T) {
	rng := newTestRNG()
	tgt := New(rng, 640, 360, Moving, 1280, 720, 1, 1, 1)
	x, y := tgt.X, tgt.Y
	tgt.Update()
	if tgt.X == x && tgt.Y == y {
		t.Error("Expected moving target to change position")
	}
	if tgt.X != x+tgt.VX || tgt.Y != y+tgt.VY {
		t.Errorf("Expected position advanced by velocity, got (%f, %f)", tgt.X, tgt.Y)
	}
}

func TestBounceOffEdges(t *testing.T) {
	rng := newTestRNG()
	tests := []struct {
		name   string
		x, y   float64
		vx, vy float64
		wantX  float64
		wantY  float64
	}{
		{"left", 41, 360, -2, 0, 40, 360},
		{"right", 1239, 360, 2, 0, 1240, 360},
		{"top", 41, 41, 0, -2, 41, 40},
		{"bottom", 41, 679, 0, 2, 41, 680},
	}
	for _, tt := range tests {
		tgt := New(rng, tt.x, tt.y, Moving, 1280, 720, 1, 1, 1)
		tgt.VX, tgt.VY = tt.vx, tt.vy

		tgt.Update()

		if tgt.X != tt.wantX || tgt.Y != tt.wantY {
			t.Errorf("%s: expected clamp to (%f, %f), got (%f, %f)", tt.name, tt.wantX, tt.wantY, tgt.X, tgt.Y)
		}
		if tt.vx != 0 && tgt.VX != -tt.vx {
			t.Errorf("%s: expected vx flipped to %f, got %f", tt.name, -tt.vx, tgt.VX)
		}
		if tt.vy != 0 && tgt.VY != -tt.vy {
			t.Errorf("%s: expected vy flipped to %f, got %f", tt.name, -tt.vy, tgt.VY)
		}
	}
}

func TestCheckCollision(t *testing.T) {
	rng := newTestRNG()
	tgt := New(rng, 400, 300, Static, 1280, 720, 1, 1, 1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"center", 400, 300, true},
		{"inside", 410, 310, true},
		{"boundary right", 440, 300, true},
		{"boundary up", 400, 260, true},
		{"just outside", 441, 300, false},
		{"far away", 900, 600, false},
	}
	for _, tt := range tests {
		if got := tgt.CheckCollision(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: expected CheckCollision(%d, %d) = %v, got %v", tt.name, tt.x, tt.y, tt.want, got)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Static, "static"},
		{Moving, "moving"},
		{Small, "small"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
