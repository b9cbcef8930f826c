package game

import (
	"image/color"

	"chosenoffset.com/quickdraw/internal/render"
	"chosenoffset.com/quickdraw/internal/ui/hud"
)

// Draw renders the session to the screen. Effects land on top of the
// HUD, and the options overlay covers everything.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.NRGBA{15, 15, 18, 255})

	if g.aimOK {
		g.drawCrosshair(screen)
	}

	for _, t := range g.targets {
		t.Draw(g.Renderer, screen)
	}

	g.hud.Draw(screen, g.hudState())
	g.effects.Draw(g.Renderer, screen)
	g.menu.Draw(screen, g.Renderer, g)
}

func (g *Game) drawCrosshair(screen render.Image) {
	x := float32(g.aim.X)
	y := float32(g.aim.Y)
	red := color.NRGBA{255, 0, 0, 255}
	g.Renderer.StrokeCircle(screen, x, y, crosshairRadius, 2, red)
	g.Renderer.StrokeLine(screen, x-20, y, x+20, y, 1, red)
	g.Renderer.StrokeLine(screen, x, y-20, x, y+20, 1, red)
}

// hudState snapshots the session for the HUD.
func (g *Game) hudState() hud.State {
	now := g.clock.Now()
	frac := 0.0
	if g.reloading {
		frac = clamp01(float64(now.Sub(g.reloadStarted)) / float64(reloadTime))
	}
	return hud.State{
		Score:        g.score,
		Ammo:         g.ammo,
		MaxAmmo:      g.profile.MaxAmmo,
		Reloading:    g.reloading,
		ReloadFrac:   frac,
		Paused:       g.paused,
		Difficulty:   g.profile.Name,
		AudioEnabled: g.Sound.Enabled(),
		Muted:        g.muted,
		MasterVolume: g.master,
		ShowNoAmmo:   now.Before(g.dryMsgUntil),
	}
}
