// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-vecmath"
)

// Bank is a fixed-size, index-stable set of oscillators mixed together.
//
// The mix is the arithmetic mean of all oscillators, so output stays in
// [-1, 1] for volumes in [0, 1] whatever the oscillator count.
//
// Bank is not safe for concurrent use.
type Bank struct {
	oscs    []*Oscillator
	scratch []float64
}

// NewBank creates one silent oscillator per frequency.
func NewBank(sampleRate int, freqs []float64) (*Bank, error) {
	oscs := make([]*Oscillator, len(freqs))
	for i, f := range freqs {
		o, err := NewOscillator(sampleRate, f, 0)
		if err != nil {
			return nil, err
		}
		oscs[i] = o
	}

	return &Bank{oscs: oscs}, nil
}

// NewBlankBank creates count silent oscillators at 0 Hz, for callers that
// assign frequencies frame by frame.
func NewBlankBank(sampleRate, count int) (*Bank, error) {
	return NewBank(sampleRate, make([]float64, count))
}

func (b *Bank) Len() int { return len(b.oscs) }

// Oscillator returns the i-th oscillator.
func (b *Bank) Oscillator(i int) *Oscillator { return b.oscs[i] }

// SetFrequencies ramps every oscillator to the position-aligned value.
func (b *Bank) SetFrequencies(values []float64, d time.Duration) error {
	if len(values) != len(b.oscs) {
		return fmt.Errorf("%w: %d frequencies for %d oscillators", ErrLengthMismatch, len(values), len(b.oscs))
	}
	for i, o := range b.oscs {
		o.SetFrequency(values[i], d)
	}
	return nil
}

// SetVolumes ramps every oscillator to the position-aligned value.
func (b *Bank) SetVolumes(values []float64, d time.Duration) error {
	if len(values) != len(b.oscs) {
		return fmt.Errorf("%w: %d volumes for %d oscillators", ErrLengthMismatch, len(values), len(b.oscs))
	}
	for i, o := range b.oscs {
		o.SetVolume(values[i], d)
	}
	return nil
}

// Frequencies returns the instantaneous frequency of every oscillator.
func (b *Bank) Frequencies() []float64 {
	out := make([]float64, len(b.oscs))
	for i, o := range b.oscs {
		out[i] = o.Frequency()
	}
	return out
}

// Volumes returns the instantaneous volume of every oscillator.
func (b *Bank) Volumes() []float64 {
	out := make([]float64, len(b.oscs))
	for i, o := range b.oscs {
		out[i] = o.Volume()
	}
	return out
}

// Next fills dst with the mean of all oscillators. An empty bank yields
// silence.
func (b *Bank) Next(dst []float64) {
	clear(dst)
	if len(b.oscs) == 0 || len(dst) == 0 {
		return
	}

	// Grow but never shrink, so steady block sizes do not allocate.
	if cap(b.scratch) < len(dst) {
		b.scratch = make([]float64, len(dst))
	}
	tmp := b.scratch[:len(dst)]

	for _, o := range b.oscs {
		o.Next(tmp)
		vecmath.AddBlockInPlace(dst, tmp)
	}
	vecmath.ScaleBlockInPlace(dst, 1/float64(len(b.oscs)))
}

// NextSamples returns the next n mixed samples.
func (b *Bank) NextSamples(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	b.Next(out)
	return out
}
