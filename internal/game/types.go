package game

import (
	"chosenoffset.com/quickdraw/internal/audio"
)

// Settings carries the session tuning resolved at startup.
type Settings struct {
	Width        int
	Height       int
	Difficulty   string
	MasterVolume float64
	Muted        bool
}

// SoundPlayer is the audio boundary the session drives. audio.Player
// implements it; a player without a device absorbs every call.
type SoundPlayer interface {
	Play(cue audio.Cue)
	SetVolume(cue audio.Cue, vol float64)
	Enabled() bool
}
