// Package audio plays short synthesized cues for control-state
// transitions: a chime when the bloom completes and a low pulse when
// distortion engages. Everything is generated, no sample assets.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Engine owns the speaker. A nil or disabled engine is silent and all
// methods are no-ops, so audio failure never affects the render loop.
type Engine struct {
	rate    beep.SampleRate
	enabled bool
}

// NewEngine initializes the speaker. Returns a disabled engine (and
// the error, for logging) if the audio device cannot be opened.
func NewEngine(sampleRate int) (*Engine, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(50*time.Millisecond)); err != nil {
		return &Engine{}, fmt.Errorf("opening audio device: %w", err)
	}
	return &Engine{rate: rate, enabled: true}, nil
}

// BloomChime plays a rising two-tone chime; triggered once each time
// growth first reaches fully built.
func (e *Engine) BloomChime() {
	if e == nil || !e.enabled {
		return
	}
	first := newTone(660, 140*time.Millisecond, 0.25, e.rate)
	second := newTone(990, 220*time.Millisecond, 0.22, e.rate)
	speaker.Play(beep.Seq(first, second))
}

// DistortPulse plays a short low thrum when the distortion cursor
// engages.
func (e *Engine) DistortPulse() {
	if e == nil || !e.enabled {
		return
	}
	speaker.Play(newTone(110, 180*time.Millisecond, 0.3, e.rate))
}

// Close releases the audio device.
func (e *Engine) Close() {
	if e == nil || !e.enabled {
		return
	}
	speaker.Close()
	e.enabled = false
}

// tone is a sine burst with a linear attack/release envelope.
type tone struct {
	freq   float64
	volume float64
	phase  float64
	pos    int
	total  int
	ramp   int
	rate   beep.SampleRate
}

func newTone(freq float64, d time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	ramp := total / 8
	if ramp < 1 {
		ramp = 1
	}
	return &tone{freq: freq, volume: volume, total: total, ramp: ramp, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		env := 1.0
		if t.pos < t.ramp {
			env = float64(t.pos) / float64(t.ramp)
		} else if rem := t.total - t.pos; rem < t.ramp {
			env = float64(rem) / float64(t.ramp)
		}
		v := math.Sin(2*math.Pi*t.phase) * t.volume * env
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
