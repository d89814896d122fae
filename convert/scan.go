// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/ik5/owl/imaging"
	"github.com/ik5/owl/synth"
)

// Orientation selects how a scan converter walks the frame.
type Orientation int

const (
	// Horizontal plays columns left to right. Frequency j follows the rows
	// from the bottom, so the lowest pitch is the bottom row.
	Horizontal Orientation = iota
	// Vertical plays rows top to bottom. Frequency j follows the columns
	// from the left.
	Vertical
	// Circular plays concentric rings from the center outwards. Frequency
	// j samples the ring at angle 2*pi*j/n, clockwise from twelve o'clock.
	Circular
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Circular:
		return "circular"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ScanEnvelope shapes every scan before it is queued.
var ScanEnvelope = synth.Envelope{
	Attack:       5 * time.Millisecond,
	Decay:        time.Millisecond,
	Release:      time.Millisecond,
	SustainLevel: 0.8,
}

// Scan renders each frame into a finite block of audio, strip by strip, and
// queues it for the consumer. The bank belongs to OnFrame; Pull only drains
// the queue.
type Scan struct {
	orientation     Orientation
	rate            int
	strips          int
	samplesPerStrip int
	slackSamples    int

	bank    *synth.Bank
	queue   *SampleQueue
	cue     []float64
	segment []float64
	volumes []float64

	active     atomic.Bool
	frames     atomic.Uint64
	dropped    atomic.Uint64
	underflows atomic.Uint64
	missing    atomic.Uint64

	// Producer side: counters as of the last underflow report.
	reportedUnderflows uint64
	reportedMissing    uint64

	hooks  Hooks
	logger *slog.Logger
}

// NewScan returns a scan converter. Every frame becomes stripCount strips of
// frameDuration/stripCount each; freqs are the per-strip oscillator
// frequencies, lowest first.
func NewScan(orientation Orientation, stripCount int, freqs []float64, frameDuration time.Duration, sampleRate int, opts ...Option) (*Scan, error) {
	switch orientation {
	case Horizontal, Vertical, Circular:
	default:
		return nil, fmt.Errorf("%w: orientation %v", ErrInvalidParameter, orientation)
	}
	if len(freqs) == 0 {
		return nil, ErrNoFrequencies
	}
	if stripCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStripCount, stripCount)
	}

	bank, err := synth.NewBank(sampleRate, freqs)
	if err != nil {
		return nil, fmt.Errorf("scan converter: %w", err)
	}

	perStrip := int(frameDuration.Seconds() * float64(sampleRate) / float64(stripCount))
	if perStrip <= 0 {
		return nil, fmt.Errorf("%w: %d strips do not fit in %v", ErrInvalidStripCount, stripCount, frameDuration)
	}

	o := applyOptions(opts)
	slack := synth.DurationSamples(o.slack, sampleRate)
	segment := perStrip * stripCount

	return &Scan{
		orientation:     orientation,
		rate:            sampleRate,
		strips:          stripCount,
		samplesPerStrip: perStrip,
		slackSamples:    slack,
		bank:            bank,
		queue:           NewSampleQueue(slack + len(o.cue) + segment + 1),
		cue:             o.cue,
		segment:         make([]float64, segment),
		volumes:         make([]float64, len(freqs)),
		hooks:           o.hooks,
		logger:          o.logger,
	}, nil
}

// OnFrame renders the frame and queues it, unless more than the slack is
// already queued, in which case the frame is dropped.
func (s *Scan) OnFrame(frame *imaging.Frame) error {
	if frame.Empty() {
		return ErrEmptyFrame
	}
	s.active.Store(true)
	s.reportUnderflows()
	s.hooks.pre(frame)

	queued := s.queue.Len()
	if queued > s.slackSamples {
		n := s.dropped.Add(1)
		s.logger.Debug("frame dropped", "queued_ms", s.millis(queued), "dropped", n)
		return nil
	}

	sampled, err := s.sample(frame)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	s.hooks.post(sampled)

	if len(s.cue) > 0 {
		s.queue.Push(s.cue)
	}
	s.logger.Debug("converting frame", "spare_ms", s.millis(s.queue.Len()))

	for i := range s.strips {
		s.strip(sampled, i, s.volumes)
		_ = s.bank.SetVolumes(s.volumes, StripRamp)
		s.bank.Next(s.segment[i*s.samplesPerStrip : (i+1)*s.samplesPerStrip])
	}
	s.queue.Push(ScanEnvelope.Apply(s.segment, s.rate))
	s.frames.Add(1)

	return nil
}

// Pull drains the queue into dst and pads any shortfall with silence. The
// shortfall is counted here and logged by the next OnFrame.
func (s *Scan) Pull(dst []float64) {
	n := s.queue.Pop(dst)
	if n == len(dst) {
		return
	}
	core.Zero(dst[n:])

	if !s.active.Load() {
		return
	}
	s.underflows.Add(1)
	s.missing.Add(uint64(len(dst) - n))
}

// reportUnderflows logs the underflows counted by Pull since the last
// report. Pull itself must not log.
func (s *Scan) reportUnderflows() {
	u, m := s.underflows.Load(), s.missing.Load()
	if u == s.reportedUnderflows {
		return
	}
	s.logger.Warn("underflow",
		"count", u-s.reportedUnderflows,
		"deficit", m-s.reportedMissing,
		"deficit_ms", s.millis(int(m-s.reportedMissing)))
	s.reportedUnderflows, s.reportedMissing = u, m
}

// sample resizes the frame to the grid the orientation reads from.
func (s *Scan) sample(f *imaging.Frame) (*imaging.Frame, error) {
	n := len(s.volumes)
	switch s.orientation {
	case Horizontal:
		return f.Resize(s.strips, n)
	case Vertical:
		return f.Resize(n, s.strips)
	default:
		side := 2 * s.strips
		return f.SquareCrop().Resize(side, side)
	}
}

// strip writes the volumes of strip i of the sampled frame into dst.
func (s *Scan) strip(f *imaging.Frame, i int, dst []float64) {
	switch s.orientation {
	case Horizontal:
		for j := range dst {
			dst[j] = f.At(i, f.Height-1-j)
		}
	case Vertical:
		for j := range dst {
			dst[j] = f.At(j, i)
		}
	default:
		c := float64(f.Width)/2 - 0.5
		r := float64(i) + 0.5
		for j := range dst {
			theta := 2 * math.Pi * float64(j) / float64(len(dst))
			dst[j] = f.Bicubic(c+r*math.Sin(theta), c-r*math.Cos(theta))
		}
	}
}

func (s *Scan) millis(samples int) float64 {
	return 1000 * float64(samples) / float64(s.rate)
}

func (s *Scan) SampleRate() int { return s.rate }
func (s *Scan) Active() bool    { return s.active.Load() }

func (s *Scan) Stats() Stats {
	return Stats{
		Frames:     s.frames.Load(),
		Dropped:    s.dropped.Load(),
		Underflows: s.underflows.Load(),
		Missing:    s.missing.Load(),
	}
}

// Orientation returns the scan direction.
func (s *Scan) Orientation() Orientation { return s.orientation }

// SamplesPerScan returns the audio length of one converted frame, cue
// included.
func (s *Scan) SamplesPerScan() int { return len(s.cue) + len(s.segment) }

// Queued returns the number of samples waiting to be pulled.
func (s *Scan) Queued() int { return s.queue.Len() }

// SlackSamples returns the backpressure threshold in samples.
func (s *Scan) SlackSamples() int { return s.slackSamples }
