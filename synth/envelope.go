// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Envelope is an attack/decay/sustain/release amplitude shape applied once
// to a finite signal. Sustain fills whatever the other three stages leave.
type Envelope struct {
	Attack       time.Duration
	Decay        time.Duration
	Release      time.Duration
	SustainLevel float64
}

// Curve returns the gain curve for a signal of n samples.
//
// Stage lengths are taken in order attack, decay, release; a stage that
// does not fit in what is left is clamped, down to zero length.
//   - attack:  eased rise 0 -> 1 (1 - x^2, x from -1 to 0)
//   - decay:   eased fall 1 -> sustain
//   - sustain: constant sustain
//   - release: eased fall sustain -> 0
func (e Envelope) Curve(n, sampleRate int) []float64 {
	if n <= 0 {
		return nil
	}

	attack := min(DurationSamples(e.Attack, sampleRate), n)
	decay := min(DurationSamples(e.Decay, sampleRate), n-attack)
	release := min(DurationSamples(e.Release, sampleRate), n-attack-decay)
	sustain := n - attack - decay - release

	s := e.SustainLevel
	out := make([]float64, 0, n)

	for _, x := range linspace(-1, 0, attack) {
		out = append(out, 1-x*x)
	}
	for _, x := range linspace(-1, 0, decay) {
		out = append(out, x*x*(1-s)+s)
	}
	for range sustain {
		out = append(out, s)
	}
	for _, x := range linspace(-1, 0, release) {
		out = append(out, x*x*s)
	}

	return out
}

// Apply returns signal multiplied by the envelope. signal is not modified.
func (e Envelope) Apply(signal []float64, sampleRate int) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}
	vecmath.MulBlock(out, signal, e.Curve(len(signal), sampleRate))
	return out
}

// linspace returns n evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}

	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}
