// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"log/slog"
	"time"

	"github.com/ik5/owl/imaging"
)

// Converter turns video frames into a continuous audio signal.
//
// OnFrame runs on the frame producer goroutine and may block briefly.
// Pull runs on the audio consumer goroutine, never blocks and always fills
// all of dst. Each side must be driven by a single goroutine.
type Converter interface {
	OnFrame(frame *imaging.Frame) error
	Pull(dst []float64)
	SampleRate() int
	// Active reports whether a frame has been seen.
	Active() bool
	Stats() Stats
}

// Stats are cumulative counters, safe to read from any goroutine.
type Stats struct {
	Frames     uint64 // frames converted
	Dropped    uint64 // frames skipped by backpressure
	Underflows uint64 // pulls that had to be padded with silence
	Missing    uint64 // total silent samples padded by underflows
}

// Hooks observe frames as they pass through a converter. Pre receives the
// frame given to OnFrame; Post receives the frame the converter actually
// sampled (resized, thresholded). Hooks run on the producer goroutine and
// must not retain the frame.
type Hooks struct {
	Pre  func(*imaging.Frame)
	Post func(*imaging.Frame)
}

func (h Hooks) pre(f *imaging.Frame) {
	if h.Pre != nil {
		h.Pre(f)
	}
}

func (h Hooks) post(f *imaging.Frame) {
	if h.Post != nil {
		h.Post(f)
	}
}

// Samples pulls exactly n samples from c.
func Samples(c Converter, n int) []float64 {
	out := make([]float64, max(n, 0))
	c.Pull(out)
	return out
}

// Default timing.
const (
	// DefaultTransient is the ramp applied to static converter targets.
	DefaultTransient = 10 * time.Millisecond
	// DefaultFrameInterval is assumed when the video rate is unknown.
	DefaultFrameInterval = time.Second / 30
	// StripRamp is the volume ramp between consecutive scan strips.
	StripRamp = 10 * time.Millisecond
)

type options struct {
	logger        *slog.Logger
	hooks         Hooks
	cue           []float64
	slack         time.Duration
	frameInterval time.Duration
	kmeans        imaging.KMeansOptions
}

func defaultOptions() options {
	return options{
		logger:        slog.Default(),
		frameInterval: DefaultFrameInterval,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.slack <= 0 {
		o.slack = 3 * o.frameInterval
	}
	return o
}

// Option configures a converter.
type Option func(*options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHooks installs frame observers.
func WithHooks(h Hooks) Option {
	return func(o *options) {
		o.hooks = h
	}
}

// WithCue prepends signal to every scan. Scan converters only.
func WithCue(signal []float64) Option {
	return func(o *options) {
		o.cue = append([]float64(nil), signal...)
	}
}

// WithFrameInterval sets the expected time between frames, used to derive
// the default slack. Non-positive values are ignored.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithSlack sets how much queued audio a scan converter tolerates before it
// drops incoming frames. Defaults to three frame intervals.
func WithSlack(d time.Duration) Option {
	return func(o *options) {
		o.slack = d
	}
}

// WithKMeans tunes cluster extraction for the shifters converter.
func WithKMeans(opts imaging.KMeansOptions) Option {
	return func(o *options) {
		o.kmeans = opts
	}
}
