// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"time"
)

const twoPi = 2 * math.Pi

// Oscillator is a phase-continuous sine generator.
//
// Frequency and volume changes are ramped over a fixed number of samples:
// volume linearly, frequency geometrically so the pitch glide is linear on
// a musical scale. A new ramp always starts from the current instantaneous
// value, never from the value the previous ramp started at.
//
// Oscillator is not safe for concurrent use.
type Oscillator struct {
	sampleRate float64
	phase      float64 // [0, 2*pi)

	freq ramp
	vol  ramp
}

// NewOscillator returns an oscillator at the given frequency and volume
// with phase 0.
func NewOscillator(sampleRate int, frequency, volume float64) (*Oscillator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return &Oscillator{
		sampleRate: float64(sampleRate),
		freq:       ramp{value: frequency, target: frequency, geometric: true},
		vol:        ramp{value: volume, target: volume},
	}, nil
}

func (o *Oscillator) SampleRate() int { return int(o.sampleRate) }

// Frequency returns the instantaneous frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.freq.value }

// Volume returns the instantaneous volume.
func (o *Oscillator) Volume() float64 { return o.vol.value }

// Phase returns the current phase in [0, 2*pi).
func (o *Oscillator) Phase() float64 { return o.phase }

// Ramping reports whether a frequency or volume ramp is still in flight.
func (o *Oscillator) Ramping() bool { return o.freq.left > 0 || o.vol.left > 0 }

// SetFrequency glides to target Hz over d. d <= 0 jumps immediately.
func (o *Oscillator) SetFrequency(target float64, d time.Duration) {
	o.freq.start(target, DurationSamples(d, int(o.sampleRate)))
}

// SetVolume fades to target over d. d <= 0 jumps immediately.
func (o *Oscillator) SetVolume(target float64, d time.Duration) {
	o.vol.start(target, DurationSamples(d, int(o.sampleRate)))
}

// Next fills dst with sin(phase)*volume, advancing phase and ramps one
// step per sample.
func (o *Oscillator) Next(dst []float64) {
	for i := range dst {
		dst[i] = math.Sin(o.phase) * o.vol.value

		o.phase += twoPi * o.freq.value / o.sampleRate
		if o.phase >= twoPi || o.phase < 0 {
			o.phase = math.Mod(o.phase, twoPi)
			if o.phase < 0 {
				o.phase += twoPi
			}
		}

		o.freq.advance()
		o.vol.advance()
	}
}

// NextSamples returns the next n samples.
func (o *Oscillator) NextSamples(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	o.Next(out)
	return out
}

// ramp interpolates value towards target over left remaining samples.
// A geometric ramp multiplies by step each sample, a linear one adds it.
type ramp struct {
	value     float64
	target    float64
	step      float64
	left      int
	geometric bool
	mul       bool
}

func (r *ramp) start(target float64, samples int) {
	r.target = target
	if samples <= 0 || r.value == target {
		r.value = target
		r.left = 0
		return
	}

	r.left = samples
	// A geometric glide needs both ends strictly positive; from or to
	// silence (0 Hz) falls back to a linear ramp.
	if r.geometric && r.value > 0 && target > 0 {
		r.mul = true
		r.step = math.Pow(target/r.value, 1/float64(samples))
		return
	}
	r.mul = false
	r.step = (target - r.value) / float64(samples)
}

func (r *ramp) advance() {
	if r.left == 0 {
		return
	}

	r.left--
	if r.left == 0 {
		r.value = r.target
		return
	}
	if r.mul {
		r.value *= r.step
	} else {
		r.value += r.step
	}
}

// DurationSamples converts d to a sample count at sampleRate, rounding to
// the nearest sample. Negative durations yield 0.
func DurationSamples(d time.Duration, sampleRate int) int {
	if d <= 0 || sampleRate <= 0 {
		return 0
	}
	return int(math.Round(d.Seconds() * float64(sampleRate)))
}
