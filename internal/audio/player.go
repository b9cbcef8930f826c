// Package audio synthesizes and plays the game's sound cues with the
// beep library. All cues are short generated waveforms rendered into
// memory once at startup, so no asset files are needed.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Cue names a synthesized sound effect the game can trigger.
type Cue string

const (
	CueShot   Cue = "shot"
	CueHit    Cue = "hit"
	CueReload Cue = "reload"
	CueDry    Cue = "dry"
)

// Cues lists every cue the player knows, in preview-key order.
var Cues = []Cue{CueShot, CueHit, CueReload, CueDry}

// Player owns the speaker and the rendered cue set. Every method is
// safe to call when the audio device could not be opened; the player
// then degrades to a silent no-op.
type Player struct {
	mu          sync.Mutex
	initialized bool
	mixer       *beep.Mixer
	buffers     map[Cue]*beep.Buffer
	volumes     map[Cue]float64
}

// NewPlayer creates a player in the disabled state. Call Init to open
// the audio device.
func NewPlayer() *Player {
	volumes := make(map[Cue]float64, len(Cues))
	for _, cue := range Cues {
		volumes[cue] = 1.0
	}
	return &Player{
		mixer:   &beep.Mixer{},
		buffers: make(map[Cue]*beep.Buffer, len(Cues)),
		volumes: volumes,
	}
}

// Init opens the audio device and renders the cue waveforms. On failure
// the player stays disabled and all later calls are no-ops.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("initialize speaker: %w", err)
	}

	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	for _, cue := range Cues {
		buf := beep.NewBuffer(format)
		buf.Append(cueStreamer(cue))
		p.buffers[cue] = buf
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// cueStreamer builds the waveform for one cue.
func cueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueShot:
		return newTone(700, 90*time.Millisecond, 0.7, waveSquare, sampleRate)
	case CueHit:
		return newNoiseBurst(260*time.Millisecond, 0.55, sampleRate)
	case CueReload:
		// Two clicks with a gap, like a magazine seat and slide release.
		return beep.Seq(
			newTone(500, 100*time.Millisecond, 0.5, waveSine, sampleRate),
			beep.Silence(sampleRate.N(80*time.Millisecond)),
			newTone(500, 100*time.Millisecond, 0.5, waveSine, sampleRate),
		)
	case CueDry:
		return newTone(180, 60*time.Millisecond, 0.5, waveSine, sampleRate)
	}
	return beep.Silence(0)
}

// Play mixes a one-shot replay of the cue at its configured volume.
// Unknown cues and calls on a disabled player are ignored.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.buffers[cue]
	if !ok {
		return
	}

	s := newVolume(buf.Streamer(0, buf.Len()), p.volumes[cue])
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume sets a cue's playback volume, clamped to [0, 1]. Zero fully
// silences the cue. The volume applies to subsequent Play calls.
func (p *Player) SetVolume(cue Cue, vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.volumes[cue]; !ok {
		return
	}
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	p.volumes[cue] = vol
}

// Volume returns the configured volume for a cue, or 0 for unknown cues.
func (p *Player) Volume(cue Cue) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumes[cue]
}

// Enabled reports whether the audio device opened successfully.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Close stops all pending playback and disables the player. It is safe
// to call more than once.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
