// Package hud draws the in-game status readout: score, ammo, reload
// progress, pause banner, and the difficulty and audio labels.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/quickdraw/internal/render"
)

const fontSize = 36

// State is the per-frame snapshot the session hands to the HUD.
type State struct {
	Score        int
	Ammo         int
	MaxAmmo      int
	Reloading    bool
	ReloadFrac   float64
	Paused       bool
	Difficulty   string
	AudioEnabled bool
	Muted        bool
	MasterVolume float64
	ShowNoAmmo   bool
}

// HUD renders a State onto the screen each frame.
type HUD struct {
	renderer render.Renderer
}

// New creates a HUD drawing through the given renderer.
func New(r render.Renderer) *HUD {
	return &HUD{renderer: r}
}

// Draw paints the full readout for one frame.
func (h *HUD) Draw(screen render.Image, s State) {
	r := h.renderer
	white := color.NRGBA{255, 255, 255, 255}
	cyan := color.NRGBA{0, 200, 255, 255}

	r.DrawText(screen, fmt.Sprintf("Score: %d", s.Score), 20, 20, white, fontSize)
	r.DrawText(screen, fmt.Sprintf("Ammo: %d/%d", s.Ammo, s.MaxAmmo), 20, 60, white, fontSize)

	if s.Reloading {
		frac := s.ReloadFrac
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
		r.FillRoundedRect(screen, 20, 100, 200, 16, 4, color.NRGBA{80, 80, 80, 255})
		if fill := float32(200 * frac); fill > 0 {
			r.FillRoundedRect(screen, 20, 100, fill, 16, 4, cyan)
		}
		r.DrawText(screen, "Reloading...", 230, 96, cyan, fontSize)
	}

	screenW, _ := screen.Size()

	if s.Paused {
		tw, th := r.MeasureText("PAUSED", fontSize)
		r.DrawText(screen, "PAUSED", screenW/2-tw/2, 40-th/2, color.NRGBA{255, 255, 0, 255}, fontSize)
	}

	diff := fmt.Sprintf("Diff: %s", s.Difficulty)
	diffW, diffH := r.MeasureText(diff, fontSize)
	r.DrawText(screen, diff, screenW-20-diffW, 20, color.NRGBA{200, 200, 200, 255}, fontSize)

	audioText, audioColor := audioStatus(s)
	audioW, _ := r.MeasureText(audioText, fontSize)
	r.DrawText(screen, audioText, screenW-20-audioW, 20+diffH+8, audioColor, fontSize)

	if s.ShowNoAmmo {
		r.DrawText(screen, "NO AMMO", 20, 140, color.NRGBA{255, 80, 80, 255}, fontSize)
	}
}

// audioStatus picks the top-right audio label and its color.
func audioStatus(s State) (string, color.NRGBA) {
	switch {
	case !s.AudioEnabled:
		return "Audio: Off", color.NRGBA{180, 180, 180, 255}
	case s.Muted:
		return "Audio: Muted", color.NRGBA{255, 120, 120, 255}
	default:
		return fmt.Sprintf("Vol: %d%%", int(s.MasterVolume*100)), color.NRGBA{200, 200, 200, 255}
	}
}
