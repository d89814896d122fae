// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/owl/utils"
)

// Resampler streams src at another sample rate using Catmull-Rom cubic
// interpolation. Channels are preserved. When downsampling, incoming frames
// pass through a one-pole low-pass at 45% of the destination rate.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// history holds the source frames at t-1, t0, t+1 and t+2 around pos.
	// real marks the ones read from the source rather than repeated past
	// its end.
	history [4][]float32
	real    [4]bool
	pos     float64

	in     []float32
	inPos  int
	inLen  int
	srcEOF bool
	empty  int

	alpha  float32
	state  []float32
	warm   bool
	primed bool
	done   bool
}

// NewResampler wraps src so that it plays at dstRate, which must be
// positive.
func NewResampler(src Source, dstRate int) *Resampler {
	ch := max(src.Channels(), 1)
	size := max(src.BufSize(), 1024) / ch * ch

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		ratio:    float64(src.SampleRate()) / float64(dstRate),
		channels: ch,
		in:       make([]float32, max(size, ch)),
	}
	for i := range r.history {
		r.history[i] = make([]float32, ch)
	}

	if r.ratio > 1 {
		cutoff := 0.45 * float64(dstRate)
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff/float64(src.SampleRate())))
		r.state = make([]float32, ch)
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst, whose length must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.done {
		return 0, io.EOF
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}
		// Past the last source frame.
		if !r.real[1] || (!r.real[2] && r.pos > 0) {
			r.done = true
			break
		}

		h := &r.history
		x := float32(r.pos)
		out := dst[written*r.channels:]
		for c := range r.channels {
			out[c] = utils.CubicInterpolate(h[0][c], h[1][c], h[2][c], h[3][c], x)
		}
		written++
		r.pos += r.ratio
	}

	if r.done {
		return written * r.channels, io.EOF
	}
	return written * r.channels, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.next(r.history[1])
	if err != nil {
		return err
	}
	if !ok {
		r.done = true
		return io.EOF
	}
	copy(r.history[0], r.history[1])
	r.real[0], r.real[1] = true, true

	for i := 2; i < len(r.history); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	return nil
}

// shift advances the history by one source frame.
func (r *Resampler) shift() error {
	oldest := r.history[0]
	copy(r.history[:3], r.history[1:])
	copy(r.real[:3], r.real[1:])
	r.history[3] = oldest

	return r.fill(3)
}

// fill reads the next frame into history[i], repeating the previous frame
// once the source is exhausted.
func (r *Resampler) fill(i int) error {
	ok, err := r.next(r.history[i])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.history[i], r.history[i-1])
	}
	r.real[i] = ok
	return nil
}

// next copies one source frame into dst, reporting false at end of stream.
func (r *Resampler) next(dst []float32) (bool, error) {
	for r.inPos >= r.inLen {
		if r.srcEOF {
			return false, nil
		}
		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.srcEOF = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n > 0 {
			r.empty = 0
		} else if r.empty++; r.empty >= MaxEmptyReads {
			r.srcEOF = true
		}
	}

	copy(dst, r.in[r.inPos:r.inPos+r.channels])
	r.inPos += r.channels

	if r.state != nil {
		if !r.warm {
			copy(r.state, dst)
			r.warm = true
		}
		for c, x := range dst {
			r.state[c] += r.alpha * (x - r.state[c])
			dst[c] = r.state[c]
		}
	}
	return true, nil
}
