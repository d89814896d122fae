// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/ik5/owl/curve"
	"github.com/ik5/owl/imaging"
	"github.com/ik5/owl/synth"
)

// targets is one frame's worth of oscillator parameters handed from the
// producer to the consumer. A zero frequency leaves that oscillator's pitch
// unchanged; a nil freqs slice leaves all of them unchanged.
type targets struct {
	freqs     []float64
	vols      []float64
	transient time.Duration
}

type extractor func(*imaging.Frame) (targets, *imaging.Frame, error)

// Static drives a fixed bank of oscillators whose targets are recomputed on
// every frame. The bank is only ever touched by Pull; OnFrame publishes new
// targets through an atomic pointer swap.
type Static struct {
	rate      int
	bank      *synth.Bank
	transient time.Duration
	extract   extractor
	pending   atomic.Pointer[targets]

	active atomic.Bool
	frames atomic.Uint64

	hooks  Hooks
	logger *slog.Logger
}

func newStatic(rate int, bank *synth.Bank, transient time.Duration, o options) *Static {
	return &Static{
		rate:      rate,
		bank:      bank,
		transient: max(transient, 0),
		hooks:     o.hooks,
		logger:    o.logger,
	}
}

// NewCurve returns a converter that plays one oscillator per curve point.
// The frame is square-cropped and area-resized to the curve's side; each
// oscillator's volume is the brightness of its point.
func NewCurve(fc *curve.FrequencyCurve, sampleRate int, transient time.Duration, opts ...Option) (*Static, error) {
	if fc == nil || fc.Len() == 0 {
		return nil, ErrNoFrequencies
	}

	bank, err := synth.NewBank(sampleRate, fc.Frequencies())
	if err != nil {
		return nil, fmt.Errorf("curve converter: %w", err)
	}

	o := applyOptions(opts)
	s := newStatic(sampleRate, bank, transient, o)

	side := fc.SideLength()
	points := fc.Points()
	s.extract = func(f *imaging.Frame) (targets, *imaging.Frame, error) {
		small, err := f.SquareCrop().Resize(side, side)
		if err != nil {
			return targets{}, nil, err
		}

		vols := make([]float64, len(points))
		for i, p := range points {
			vols[i] = small.At(p.X, p.Y)
		}
		return targets{vols: vols}, small, nil
	}

	return s, nil
}

// NewShifters returns a converter that follows up to k bright regions.
//
// The frame is square-cropped, resized to the curve's side and thresholded
// at its median. Weighted k-means over the remaining pixels (brightness
// quantized to intensityLevels) yields cluster centers; each center is
// rounded to a curve point, takes that point's frequency and plays at the
// square of its population share. Voices are ordered by frequency, so an
// oscillator index does not follow the same region from frame to frame.
func NewShifters(fc *curve.FrequencyCurve, k, intensityLevels, sampleRate int, transient time.Duration, opts ...Option) (*Static, error) {
	if fc == nil || fc.Len() == 0 || k <= 0 {
		return nil, ErrNoFrequencies
	}
	if intensityLevels <= 0 {
		return nil, fmt.Errorf("%w: intensity levels %d", ErrInvalidParameter, intensityLevels)
	}

	bank, err := synth.NewBlankBank(sampleRate, k)
	if err != nil {
		return nil, fmt.Errorf("shifters converter: %w", err)
	}

	o := applyOptions(opts)
	s := newStatic(sampleRate, bank, transient, o)

	side := fc.SideLength()
	s.extract = func(f *imaging.Frame) (targets, *imaging.Frame, error) {
		small, err := f.SquareCrop().Resize(side, side)
		if err != nil {
			return targets{}, nil, err
		}
		thresholded := imaging.MedianThreshold(small)
		clusters := imaging.KMeans(imaging.Foreground(thresholded, intensityLevels), k, o.kmeans)

		t, err := voices(fc, clusters, k)
		if err != nil {
			return targets{}, nil, err
		}
		return t, thresholded, nil
	}

	return s, nil
}

// voices maps cluster centers to frequency-ordered targets for k
// oscillators. Oscillators without a cluster are silenced.
func voices(fc *curve.FrequencyCurve, clusters []imaging.Cluster, k int) (targets, error) {
	type sine struct{ hz, vol float64 }

	sines := make([]sine, 0, len(clusters))
	for _, c := range clusters {
		p := curve.Point{X: int(math.Round(c.X)), Y: int(math.Round(c.Y))}
		hz, ok := fc.Frequency(p)
		if !ok {
			return targets{}, fmt.Errorf("%w: %v outside side %d", ErrOutOfBoundsCluster, p, fc.SideLength())
		}
		sines = append(sines, sine{hz: hz, vol: c.Weight * c.Weight})
	}
	slices.SortStableFunc(sines, func(a, b sine) int {
		return cmp.Compare(a.hz, b.hz)
	})

	t := targets{freqs: make([]float64, k), vols: make([]float64, k)}
	for i, sn := range sines[:min(len(sines), k)] {
		t.freqs[i], t.vols[i] = sn.hz, sn.vol
	}
	return t, nil
}

// OnFrame computes new targets and publishes them for the next Pull. The
// first frame is applied without a ramp.
func (s *Static) OnFrame(frame *imaging.Frame) error {
	if frame.Empty() {
		return ErrEmptyFrame
	}
	s.hooks.pre(frame)

	t, post, err := s.extract(frame)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	s.hooks.post(post)

	t.transient = s.transient
	if !s.active.Swap(true) {
		t.transient = 0
	}
	s.pending.Store(&t)

	n := s.frames.Add(1)
	s.logger.Debug("frame converted", "frame", n, "oscillators", len(t.vols))
	return nil
}

// Pull applies any pending targets and renders the bank into dst.
func (s *Static) Pull(dst []float64) {
	if t := s.pending.Swap(nil); t != nil {
		s.apply(t)
	}
	s.bank.Next(dst)
}

func (s *Static) apply(t *targets) {
	for i, hz := range t.freqs {
		if hz > 0 {
			s.bank.Oscillator(i).SetFrequency(hz, t.transient)
		}
	}
	// Lengths are fixed at construction.
	_ = s.bank.SetVolumes(t.vols, t.transient)
}

func (s *Static) SampleRate() int { return s.rate }
func (s *Static) Active() bool    { return s.active.Load() }

func (s *Static) Stats() Stats {
	return Stats{Frames: s.frames.Load()}
}

// Len returns the number of oscillators.
func (s *Static) Len() int { return s.bank.Len() }

// Volumes returns the oscillators' current volumes. Call it only from the
// goroutine that calls Pull.
func (s *Static) Volumes() []float64 { return s.bank.Volumes() }

// Frequencies returns the oscillators' current frequencies. Call it only
// from the goroutine that calls Pull.
func (s *Static) Frequencies() []float64 { return s.bank.Frequencies() }
