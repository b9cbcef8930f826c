package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"chosenoffset.com/quickdraw/internal/target"
)

func TestProfileByName(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantAmmo int
		wantCool time.Duration
	}{
		{"Easy", "Easy", 8, 300 * time.Millisecond},
		{"Normal", "Normal", 6, 250 * time.Millisecond},
		{"Hard", "Hard", 5, 220 * time.Millisecond},
		{"bogus", "Normal", 6, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		p := ProfileByName(tt.name)
		if p.Name != tt.wantName {
			t.Errorf("%s: expected profile %s, got %s", tt.name, tt.wantName, p.Name)
		}
		if p.MaxAmmo != tt.wantAmmo {
			t.Errorf("%s: expected max ammo %d, got %d", tt.name, tt.wantAmmo, p.MaxAmmo)
		}
		if p.ShotCooldown != tt.wantCool {
			t.Errorf("%s: expected cooldown %v, got %v", tt.name, tt.wantCool, p.ShotCooldown)
		}
	}
}

func TestProfileWeightsSumToOne(t *testing.T) {
	for _, name := range ProfileNames() {
		p := ProfileByName(name)
		sum := 0.0
		for _, w := range p.Weights {
			sum += w.Weight
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("%s: expected weights to sum to 1, got %f", name, sum)
		}
	}
}

func TestPickKindFollowsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := ProfileByName("Normal")

	const n = 3000
	counts := map[target.Kind]int{}
	for i := 0; i < n; i++ {
		counts[p.PickKind(rng)]++
	}

	wants := map[target.Kind]float64{
		target.Static: 0.5,
		target.Moving: 0.35,
		target.Small:  0.15,
	}
	for kind, want := range wants {
		got := float64(counts[kind]) / n
		if math.Abs(got-want) > 0.05 {
			t.Errorf("Kind %s: expected share near %f, got %f", kind, want, got)
		}
	}
}

func TestPickKindCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := ProfileByName("Hard")

	seen := map[target.Kind]bool{}
	for i := 0; i < 500; i++ {
		seen[p.PickKind(rng)] = true
	}
	for _, kind := range []target.Kind{target.Static, target.Moving, target.Small} {
		if !seen[kind] {
			t.Errorf("Expected kind %s to be spawnable on Hard", kind)
		}
	}
}

func TestPickKindFallsBackToLastKind(t *testing.T) {
	// Weights that never accumulate past zero force the rounding guard.
	p := Profile{
		Weights: []SpawnWeight{
			{target.Static, 0},
			{target.Small, 0},
		},
	}
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		if kind := p.PickKind(rng); kind != target.Small {
			t.Fatalf("Expected fallback to the last kind, got %s", kind)
		}
	}
}
