// Package game runs the shooting session: target spawning, shooting and
// reload, difficulty escalation, audio mixing, and the frame loop the
// render engine drives.
package game

import (
	"math/rand"
	"time"

	"chosenoffset.com/quickdraw/internal/audio"
	"chosenoffset.com/quickdraw/internal/effects"
	"chosenoffset.com/quickdraw/internal/render"
	"chosenoffset.com/quickdraw/internal/target"
	"chosenoffset.com/quickdraw/internal/track"
	"chosenoffset.com/quickdraw/internal/ui/hud"
	"chosenoffset.com/quickdraw/internal/ui/options"
)

const (
	// The engine ticks at a fixed 60 updates per second.
	frameDeltaMS = 1000.0 / 60.0

	reloadTime = 1200 * time.Millisecond
	dryMsgTime = 700 * time.Millisecond

	spawnInset      = 50
	crosshairRadius = 12

	// The spawn ramp always walks down from 60 frames regardless of the
	// profile's starting interval.
	escalationBase   = 60
	escalationStep   = 5
	escalationPeriod = 20 // seconds per step
)

// Game holds all session state and collaborators.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	Renderer render.Renderer
	InputMgr render.InputManager
	Tracker  track.Tracker
	Sound    SoundPlayer

	clock Clock
	rng   *rand.Rand

	profile       Profile
	spawnInterval int
	spawnTimer    int
	startTime     time.Time

	score int
	ammo  int

	reloading     bool
	reloadStarted time.Time
	lastShot      time.Time
	dryMsgUntil   time.Time

	paused           bool
	pausedBeforeMenu bool

	pauseGestureActive  bool
	reloadGestureActive bool

	aim   track.Point
	aimOK bool

	targets []*target.Target
	effects *effects.System

	master  float64
	muted   bool
	baseVol map[audio.Cue]float64

	menu *options.Menu
	hud  *hud.HUD
}

// New assembles a session from its collaborators and settings.
func New(r render.Renderer, input render.InputManager, tr track.Tracker, sound SoundPlayer, s Settings) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Game{
		ScreenWidth:  s.Width,
		ScreenHeight: s.Height,
		Renderer:     r,
		InputMgr:     input,
		Tracker:      tr,
		Sound:        sound,
		clock:        SystemClock(),
		rng:          rng,
		effects:      effects.NewSystem(rng),
		master:       clamp01(s.MasterVolume),
		muted:        s.Muted,
		baseVol: map[audio.Cue]float64{
			audio.CueShot:   0.9,
			audio.CueHit:    0.8,
			audio.CueReload: 0.8,
			audio.CueDry:    0.7,
		},
		menu: options.NewMenu(s.Width, s.Height),
		hud:  hud.New(r),
	}
	g.applyProfile(ProfileByName(s.Difficulty))
	g.startTime = g.clock.Now()
	g.applyVolumes()
	return g
}

// Update advances the session by one tick.
func (g *Game) Update() error {
	now := g.clock.Now()

	if g.menu.Visible() {
		if g.menu.HandleInput(g.InputMgr, g) {
			g.closeMenu()
		}
	} else if err := g.handleKeys(); err != nil {
		return err
	}

	landmarks := g.Tracker.Landmarks()
	gestures := g.Tracker.DetectGestures(landmarks)
	g.aim, g.aimOK = g.Tracker.AimPosition(landmarks)

	if !g.menu.Visible() {
		if gestures.Pause {
			if !g.pauseGestureActive {
				g.togglePause()
				g.pauseGestureActive = true
			}
		} else {
			g.pauseGestureActive = false
		}

		if gestures.Reload {
			if !g.reloadGestureActive {
				g.startReload()
				g.reloadGestureActive = true
			}
		} else {
			g.reloadGestureActive = false
		}

		if gestures.Shoot {
			g.tryShoot(now)
		}
		if g.InputMgr.IsKeyPressed(render.KeySpace) {
			g.tryShoot(now)
		}
	}

	g.updateReload(now)

	if !g.paused {
		g.spawnTimer++
		if g.spawnTimer >= g.spawnInterval {
			g.spawnTarget()
			g.spawnTimer = 0
			g.escalate(now)
		}
		for _, t := range g.targets {
			t.Update()
		}
	}

	g.effects.Update(frameDeltaMS)
	return nil
}

// handleKeys processes gameplay key bindings. It returns
// render.Termination when the player quits.
func (g *Game) handleKeys() error {
	in := g.InputMgr
	if in.IsKeyJustPressed(render.KeyEscape) {
		return render.Termination
	}
	if in.IsKeyJustPressed(render.KeyP) {
		g.togglePause()
	}
	if in.IsKeyJustPressed(render.KeyO) {
		g.openMenu()
	}
	if in.IsKeyJustPressed(render.KeyR) {
		g.startReload()
	}
	if in.IsKeyJustPressed(render.Key1) {
		g.SetDifficulty("Easy")
	}
	if in.IsKeyJustPressed(render.Key2) {
		g.SetDifficulty("Normal")
	}
	if in.IsKeyJustPressed(render.Key3) {
		g.SetDifficulty("Hard")
	}
	if in.IsKeyJustPressed(render.KeyM) {
		g.ToggleMute()
	}
	if in.IsKeyJustPressed(render.KeyMinus) {
		g.ChangeMasterVolume(-0.05)
	}
	if in.IsKeyJustPressed(render.KeyEqual) {
		g.ChangeMasterVolume(+0.05)
	}
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) togglePause() {
	g.paused = !g.paused
}

// openMenu shows the options overlay and force-pauses the session,
// remembering the pause state to restore on close.
func (g *Game) openMenu() {
	g.pausedBeforeMenu = g.paused
	g.paused = true
	g.menu.Open()
}

func (g *Game) closeMenu() {
	g.menu.Close()
	g.paused = g.pausedBeforeMenu
}

// applyProfile installs a difficulty profile and refills the magazine.
func (g *Game) applyProfile(p Profile) {
	g.profile = p
	g.spawnInterval = p.SpawnInterval
	g.ammo = p.MaxAmmo
}

// SetDifficulty switches profiles by name, falling back to Normal.
func (g *Game) SetDifficulty(name string) {
	g.applyProfile(ProfileByName(name))
}

// applyVolumes pushes the effective per-cue volumes to the player.
func (g *Game) applyVolumes() {
	for cue, base := range g.baseVol {
		vol := 0.0
		if !g.muted {
			vol = clamp01(g.master * base)
		}
		g.Sound.SetVolume(cue, vol)
	}
}

// ToggleMute flips the mute state.
func (g *Game) ToggleMute() {
	g.muted = !g.muted
	g.applyVolumes()
}

// ChangeMasterVolume nudges the master volume by delta, clamped to [0, 1].
func (g *Game) ChangeMasterVolume(delta float64) {
	g.SetMasterVolume(g.master + delta)
}

// SetMasterVolume sets the master volume, clamped to [0, 1].
func (g *Game) SetMasterVolume(vol float64) {
	g.master = clamp01(vol)
	g.applyVolumes()
}

// Muted reports the mute state.
func (g *Game) Muted() bool { return g.muted }

// MasterVolume reports the master volume.
func (g *Game) MasterVolume() float64 { return g.master }

// Preview plays a cue directly, bypassing gameplay gating.
func (g *Game) Preview(cue audio.Cue) {
	g.Sound.Play(cue)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
