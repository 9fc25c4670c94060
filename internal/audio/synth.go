// Package audio turns simulation cues into short synthesized sound effects.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-starfield/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from start to end.
type sweep struct {
	start, end float64
	phase      float64
	pos, total int
	wave       Wave
	rate       beep.SampleRate
	rng        *rand.Rand
}

// NewSweep creates a finite oscillator gliding from start to end Hz.
// Equal start and end give a steady tone.
func NewSweep(start, end float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start: start,
		end:   end,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(int64(start*1000 + end))),
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		freq := o.start + (o.end-o.start)*float64(o.pos)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// decay shapes a stream with a linear attack followed by an exponential fall.
type decay struct {
	s        beep.Streamer
	pos      int
	attack   int
	total    int
	halfLife float64 // In samples
}

// NewDecay applies an attack ramp and an exponential decay with the given
// half-life, cutting the stream at d.
func NewDecay(s beep.Streamer, d, attack, halfLife time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		s:        s,
		attack:   rate.N(attack),
		total:    rate.N(d),
		halfLife: float64(rate.N(halfLife)),
	}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}
	n, ok = e.s.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else if e.halfLife > 0 {
			vol = math.Exp2(-float64(e.pos-e.attack) / e.halfLife)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

// gain scales a stream linearly. Zero or less is silence.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Recipe builds the raw, unity-gain streamer for a cue.
type Recipe func(rate beep.SampleRate) beep.Streamer

// Recipes maps every cue to its sound.
var Recipes = map[core.Cue]Recipe{
	core.CueLaser:      laserSound,
	core.CueEnemyLaser: enemyLaserSound,
	core.CueThrust:     thrustSound,
	core.CueExplosion:  explosionSound,
}

// Duration of each cue sound.
const (
	laserDuration      = 120 * time.Millisecond
	enemyLaserDuration = 160 * time.Millisecond
	thrustDuration     = 70 * time.Millisecond
	explosionDuration  = 600 * time.Millisecond
)

// Descending square chirp.
func laserSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(1400, 500, laserDuration, WaveSquare, rate)
	return gain(NewDecay(osc, laserDuration, 2*time.Millisecond, 40*time.Millisecond, rate), 0.5)
}

// Lower, buzzier saw chirp.
func enemyLaserSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(600, 250, enemyLaserDuration, WaveSaw, rate)
	return gain(NewDecay(osc, enemyLaserDuration, 3*time.Millisecond, 60*time.Millisecond, rate), 0.5)
}

// Short burst of noise.
func thrustSound(rate beep.SampleRate) beep.Streamer {
	noise := NewSweep(0, 0, thrustDuration, WaveNoise, rate)
	return gain(NewDecay(noise, thrustDuration, 10*time.Millisecond, 30*time.Millisecond, rate), 0.6)
}

// Noise crack over a low rumble.
func explosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewDecay(NewSweep(0, 0, explosionDuration, WaveNoise, rate),
		explosionDuration, time.Millisecond, 80*time.Millisecond, rate)

	var rumble beep.Streamer
	if sine, err := generators.SineTone(rate, 55); err == nil {
		rumble = NewDecay(sine, explosionDuration, 5*time.Millisecond, 150*time.Millisecond, rate)
	} else {
		rumble = NewDecay(NewSweep(55, 55, explosionDuration, WaveSine, rate),
			explosionDuration, 5*time.Millisecond, 150*time.Millisecond, rate)
	}

	return beep.Mix(gain(noise, 0.55), gain(rumble, 0.45))
}
