package game

import (
	"time"

	"chosenoffset.com/quickdraw/internal/audio"
	"chosenoffset.com/quickdraw/internal/target"
	"chosenoffset.com/quickdraw/internal/track"
)

// tryShoot fires at the current aim point if the session allows it,
// giving dry-fire feedback when the magazine is empty. The shot
// cooldown failing is silent.
func (g *Game) tryShoot(now time.Time) {
	if g.paused || g.reloading {
		return
	}
	if g.ammo <= 0 {
		g.Sound.Play(audio.CueDry)
		g.dryMsgUntil = now.Add(dryMsgTime)
		return
	}
	if now.Sub(g.lastShot) < g.profile.ShotCooldown {
		return
	}

	g.lastShot = now
	g.ammo--
	if g.aimOK {
		g.effects.SpawnMuzzleFlash(g.aim.X, g.aim.Y)
	}
	g.Sound.Play(audio.CueShot)
	if g.aimOK {
		g.checkHit(g.aim)
	}
}

// checkHit destroys the first target containing the aim point and
// scores it.
func (g *Game) checkHit(aim track.Point) {
	for i, t := range g.targets {
		if !t.CheckCollision(aim.X, aim.Y) {
			continue
		}
		g.score += t.Points
		g.targets = append(g.targets[:i], g.targets[i+1:]...)
		g.effects.SpawnExplosion(int(t.X), int(t.Y), t.Color)
		g.Sound.Play(audio.CueHit)
		g.effects.SpawnShockwave(int(t.X), int(t.Y), t.Color)
		g.effects.SpawnTracer(aim.X, aim.Y, int(t.X), int(t.Y))
		return
	}
}

// startReload begins a reload unless one is running or the magazine is
// already full.
func (g *Game) startReload() {
	if g.reloading || g.ammo >= g.profile.MaxAmmo {
		return
	}
	g.reloading = true
	g.reloadStarted = g.clock.Now()
}

// updateReload completes a finished reload. The timer is wall clock, so
// a reload keeps progressing while the session is paused.
func (g *Game) updateReload(now time.Time) {
	if g.reloading && now.Sub(g.reloadStarted) >= reloadTime {
		g.reloading = false
		g.ammo = g.profile.MaxAmmo
		g.Sound.Play(audio.CueReload)
	}
}

// spawnTarget places a new target away from the screen edges.
func (g *Game) spawnTarget() {
	kind := g.profile.PickKind(g.rng)
	x := float64(spawnInset + g.rng.Intn(g.ScreenWidth-2*spawnInset+1))
	y := float64(spawnInset + g.rng.Intn(g.ScreenHeight-2*spawnInset+1))
	g.targets = append(g.targets, target.New(
		g.rng, x, y, kind,
		g.ScreenWidth, g.ScreenHeight,
		g.profile.SpeedMul, g.profile.SizeMul, g.profile.PointsMul,
	))
}

// escalate recomputes the spawn interval from the session age, floored
// at the profile minimum.
func (g *Game) escalate(now time.Time) {
	step := int(now.Sub(g.startTime).Seconds()) / escalationPeriod
	interval := escalationBase - step*escalationStep
	if interval < g.profile.SpawnIntervalMin {
		interval = g.profile.SpawnIntervalMin
	}
	g.spawnInterval = interval
}
