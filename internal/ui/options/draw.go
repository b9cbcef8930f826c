package options

import (
	"fmt"
	"image/color"

	"chosenoffset.com/quickdraw/internal/render"
)

const fontSize = 36

var previewLabels = [4]string{"Shot", "Hit", "Reload", "Dry"}

// Draw paints the dimmed backdrop and the options panel. It is a no-op
// while the overlay is hidden.
func (m *Menu) Draw(screen render.Image, r render.Renderer, ac AudioControls) {
	if !m.visible {
		return
	}

	w, h := screen.Size()
	r.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{0, 0, 0, 160})

	l := m.layoutRects()
	white := color.NRGBA{255, 255, 255, 255}

	r.FillRoundedRect(screen, float32(l.panel.x), float32(l.panel.y), float32(l.panel.w), float32(l.panel.h), 10, color.NRGBA{30, 30, 34, 255})
	r.StrokeRoundedRect(screen, float32(l.panel.x), float32(l.panel.y), float32(l.panel.w), float32(l.panel.h), 10, 2, color.NRGBA{200, 200, 200, 255})

	r.DrawText(screen, "Options", l.panel.x+20, l.panel.y+20, white, fontSize)
	r.DrawText(screen, "Audio", l.panel.x+20, l.panel.y+80, color.NRGBA{200, 200, 200, 255}, fontSize)

	// Mute button
	r.FillRoundedRect(screen, float32(l.muteBtn.x), float32(l.muteBtn.y), float32(l.muteBtn.w), float32(l.muteBtn.h), 6, color.NRGBA{60, 60, 70, 255})
	muteLabel := "Mute: Off"
	if ac.Muted() {
		muteLabel = "Mute: On"
	}
	r.DrawText(screen, muteLabel, l.muteBtn.x+10, l.muteBtn.y+4, white, fontSize)

	// Volume bar, emptied while muted
	r.FillRoundedRect(screen, float32(l.volBar.x), float32(l.volBar.y), float32(l.volBar.w), float32(l.volBar.h), 6, color.NRGBA{80, 80, 90, 255})
	shown := ac.MasterVolume()
	if ac.Muted() {
		shown = 0
	}
	if fill := float32(float64(l.volBar.w) * shown); fill > 0 {
		r.FillRoundedRect(screen, float32(l.volBar.x), float32(l.volBar.y), fill, float32(l.volBar.h), 6, color.NRGBA{0, 200, 255, 255})
	}
	pct := fmt.Sprintf("%d%%", int(ac.MasterVolume()*100))
	r.DrawText(screen, pct, l.volBar.x+372, l.volBar.y-6, color.NRGBA{200, 200, 200, 255}, fontSize)

	// Cue preview buttons
	for i, pr := range l.previews {
		r.FillRoundedRect(screen, float32(pr.x), float32(pr.y), float32(pr.w), float32(pr.h), 6, color.NRGBA{60, 60, 70, 255})
		drawCentered(r, screen, previewLabels[i], pr)
	}

	// Resume button
	r.FillRoundedRect(screen, float32(l.resume.x), float32(l.resume.y), float32(l.resume.w), float32(l.resume.h), 6, color.NRGBA{0, 160, 120, 255})
	drawCentered(r, screen, "Resume", l.resume)
}

func drawCentered(r render.Renderer, screen render.Image, text string, in rect) {
	tw, th := r.MeasureText(text, fontSize)
	r.DrawText(screen, text, in.x+(in.w-tw)/2, in.y+(in.h-th)/2, color.NRGBA{255, 255, 255, 255}, fontSize)
}
