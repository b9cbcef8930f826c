// Package options implements the modal in-game options overlay. It
// exposes the mute toggle, the master volume bar, and one preview
// button per sound cue.
package options

import (
	"chosenoffset.com/quickdraw/internal/audio"
	"chosenoffset.com/quickdraw/internal/render"
)

const (
	panelWidth  = 640
	panelHeight = 360
	volumeStep  = 0.05
)

// AudioControls is the audio state the overlay reads and manipulates.
// The game session implements it.
type AudioControls interface {
	Muted() bool
	MasterVolume() float64
	SetMasterVolume(vol float64)
	ChangeMasterVolume(delta float64)
	ToggleMute()
	Preview(cue audio.Cue)
}

// rect is an integer pixel rectangle used for layout and hit testing.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// layout holds the overlay's widget rectangles for one screen size.
type layout struct {
	panel    rect
	muteBtn  rect
	volBar   rect
	previews [4]rect
	resume   rect
}

// Menu is the options overlay. It is hidden until Open is called and
// modal while visible.
type Menu struct {
	width, height int
	visible       bool
	dragging      bool
}

// NewMenu creates a hidden overlay sized for the given screen.
func NewMenu(width, height int) *Menu {
	return &Menu{width: width, height: height}
}

// Visible reports whether the overlay is open.
func (m *Menu) Visible() bool { return m.visible }

// Open shows the overlay.
func (m *Menu) Open() {
	m.visible = true
	m.dragging = false
}

// Close hides the overlay.
func (m *Menu) Close() {
	m.visible = false
	m.dragging = false
}

func (m *Menu) layoutRects() layout {
	px := (m.width - panelWidth) / 2
	py := (m.height - panelHeight) / 2
	return layout{
		panel:   rect{px, py, panelWidth, panelHeight},
		muteBtn: rect{px + 20, py + 110, 100, 32},
		volBar:  rect{px + 140, py + 110, 360, 16},
		previews: [4]rect{
			{px + 20, py + 180, 120, 36},
			{px + 170, py + 180, 120, 36},
			{px + 320, py + 180, 120, 36},
			{px + 470, py + 180, 120, 36},
		},
		resume: rect{px + panelWidth - 160, py + panelHeight - 56, 140, 40},
	}
}

// HandleInput processes one frame of overlay input and reports whether
// the overlay asked to close.
func (m *Menu) HandleInput(in render.InputManager, ac AudioControls) bool {
	if !m.visible {
		return false
	}

	if in.IsKeyJustPressed(render.KeyEscape) || in.IsKeyJustPressed(render.KeyO) {
		return true
	}
	if in.IsKeyJustPressed(render.KeyM) {
		ac.ToggleMute()
	}
	if in.IsKeyJustPressed(render.KeyMinus) {
		ac.ChangeMasterVolume(-volumeStep)
	}
	if in.IsKeyJustPressed(render.KeyEqual) {
		ac.ChangeMasterVolume(+volumeStep)
	}
	previewKeys := [4]render.Key{render.Key1, render.Key2, render.Key3, render.Key4}
	for i, key := range previewKeys {
		if in.IsKeyJustPressed(key) {
			ac.Preview(audio.Cues[i])
		}
	}

	l := m.layoutRects()
	mx, my := in.GetCursorPosition()

	if in.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		switch {
		case l.resume.contains(mx, my):
			return true
		case l.muteBtn.contains(mx, my):
			ac.ToggleMute()
		case l.volBar.contains(mx, my):
			ac.SetMasterVolume(barFraction(l.volBar, mx))
			m.dragging = true
		default:
			for i, pr := range l.previews {
				if pr.contains(mx, my) {
					ac.Preview(audio.Cues[i])
					break
				}
			}
		}
	}

	if !in.IsMouseButtonPressed(render.MouseButtonLeft) {
		m.dragging = false
	} else if m.dragging {
		ac.SetMasterVolume(barFraction(l.volBar, mx))
	}

	return false
}

// barFraction maps a cursor x position onto the volume bar as [0, 1].
func barFraction(bar rect, mx int) float64 {
	frac := float64(mx-bar.x) / float64(bar.w)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return frac
}
