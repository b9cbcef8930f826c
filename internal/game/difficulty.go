package game

import (
	"math/rand"
	"time"

	"chosenoffset.com/quickdraw/internal/target"
)

// SpawnWeight pairs a target kind with its share of spawns.
type SpawnWeight struct {
	Kind   target.Kind
	Weight float64
}

// Profile bundles the tuning for one difficulty level.
type Profile struct {
	Name             string
	SpawnInterval    int // frames between spawns
	SpawnIntervalMin int // escalation floor, in frames
	MaxAmmo          int
	ShotCooldown     time.Duration
	SpeedMul         float64
	SizeMul          float64
	PointsMul        float64
	Weights          []SpawnWeight
}

var profiles = map[string]Profile{
	"Easy": {
		Name:             "Easy",
		SpawnInterval:    70,
		SpawnIntervalMin: 30,
		MaxAmmo:          8,
		ShotCooldown:     300 * time.Millisecond,
		SpeedMul:         0.85,
		SizeMul:          1.10,
		PointsMul:        0.9,
		Weights: []SpawnWeight{
			{target.Static, 0.6},
			{target.Moving, 0.3},
			{target.Small, 0.1},
		},
	},
	"Normal": {
		Name:             "Normal",
		SpawnInterval:    60,
		SpawnIntervalMin: 20,
		MaxAmmo:          6,
		ShotCooldown:     250 * time.Millisecond,
		SpeedMul:         1.0,
		SizeMul:          1.0,
		PointsMul:        1.0,
		Weights: []SpawnWeight{
			{target.Static, 0.5},
			{target.Moving, 0.35},
			{target.Small, 0.15},
		},
	},
	"Hard": {
		Name:             "Hard",
		SpawnInterval:    50,
		SpawnIntervalMin: 10,
		MaxAmmo:          5,
		ShotCooldown:     220 * time.Millisecond,
		SpeedMul:         1.25,
		SizeMul:          0.9,
		PointsMul:        1.2,
		Weights: []SpawnWeight{
			{target.Static, 0.35},
			{target.Moving, 0.45},
			{target.Small, 0.20},
		},
	},
}

// ProfileByName looks up a difficulty profile, falling back to Normal
// for unknown names.
func ProfileByName(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return profiles["Normal"]
}

// ProfileNames lists the selectable difficulties in ascending order.
func ProfileNames() []string {
	return []string{"Easy", "Normal", "Hard"}
}

// PickKind selects a target kind using the profile's spawn weights.
func (p Profile) PickKind(rng *rand.Rand) target.Kind {
	r := rng.Float64()
	acc := 0.0
	for _, w := range p.Weights {
		acc += w.Weight
		if r <= acc {
			return w.Kind
		}
	}
	return p.Weights[len(p.Weights)-1].Kind
}
