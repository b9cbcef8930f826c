package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// waveShape selects the oscillator waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
)

// tone streams a fixed-length waveform at a given frequency and peak
// amplitude. A short linear attack and release ramp (1% and 5% of the
// duration) keeps the cue from clicking at its edges.
type tone struct {
	freq     float64
	amp      float64
	shape    waveShape
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

func newTone(freq float64, d time.Duration, amp float64, shape waveShape, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &tone{
		freq:    freq,
		amp:     amp,
		shape:   shape,
		rate:    rate,
		total:   total,
		attack:  total / 100,
		release: total / 20,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, false
		}

		var val float64
		switch t.shape {
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.amp * t.gain()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase = t.phase - math.Floor(t.phase) // Keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

// gain is the envelope value at the current sample position.
func (t *tone) gain() float64 {
	if t.attack > 0 && t.position < t.attack {
		return float64(t.position) / float64(t.attack)
	}
	if t.release > 0 && t.position >= t.total-t.release {
		return float64(t.total-t.position) / float64(t.release)
	}
	return 1.0
}

func (t *tone) Err() error { return nil }

// noiseBurst streams white noise shaped by an exponential decay, fading
// to roughly -43 dB of the starting amplitude by the end of the burst.
type noiseBurst struct {
	amp      float64
	position int
	total    int
}

func newNoiseBurst(d time.Duration, amp float64, rate beep.SampleRate) beep.Streamer {
	return &noiseBurst{amp: amp, total: rate.N(d)}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, false
		}

		decay := math.Exp(-5.0 * float64(b.position) / float64(b.total))
		val := (rand.Float64()*2 - 1) * b.amp * decay

		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// newVolume wraps a streamer with logarithmic volume scaling, fully
// silencing it at or below zero.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
