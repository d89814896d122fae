// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ik5/owl/audio"
)

// Sink consumes a mono sample stream at a fixed rate. Open starts
// consumption and Close stops it; a closed sink may be opened again.
type Sink interface {
	Open() error
	Close() error
	SampleRate() int
}

const (
	// DefaultBufferSize is the device buffer of the live sink.
	DefaultBufferSize = 100 * time.Millisecond
	// DefaultTick is how often clock-driven sinks pull from their source.
	DefaultTick = 20 * time.Millisecond
)

type options struct {
	logger *slog.Logger
	buffer time.Duration
	tick   time.Duration
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBufferSize sets the audio device buffer length.
func WithBufferSize(d time.Duration) Option {
	return func(o *options) { o.buffer = d }
}

// WithTick sets the pull period of clock-driven sinks.
func WithTick(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.tick = d
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: slog.Default(),
		buffer: DefaultBufferSize,
		tick:   DefaultTick,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// adapt returns src as a mono stream at rate.
func adapt(src audio.Source, rate int) audio.Source {
	if src.SampleRate() != rate {
		src = audio.NewResampler(src, rate)
	}
	if src.Channels() != 1 {
		src = audio.NewMonoMixer(src)
	}
	return src
}

func checkRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}
	return nil
}

// pace calls pull every tick with the number of samples that became due
// since it started, until ctx is done or pull fails.
func pace(ctx context.Context, rate int, tick time.Duration, pull func(n int) error) error {
	t := time.NewTicker(tick)
	defer t.Stop()

	start := time.Now()
	var pulled int64
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			due := int64(now.Sub(start).Seconds()*float64(rate)) - pulled
			if due <= 0 {
				continue
			}
			if err := pull(int(due)); err != nil {
				return err
			}
			pulled += due
		}
	}
}
