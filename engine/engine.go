// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-vecmath"

	"github.com/ik5/owl/convert"
	"github.com/ik5/owl/imaging"
	"github.com/ik5/owl/output"
	"github.com/ik5/owl/video"
)

// SampleWriter accepts pushed audio, as output.FileSink does.
type SampleWriter interface {
	Write(samples []float64) error
}

// Engine moves frames from a video source into a converter. In real time
// the sink pulls audio on its own clock; Render instead pushes each frame's
// worth of audio itself.
type Engine struct {
	src  video.Source
	conv convert.Converter
	sink output.Sink

	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

type options struct {
	logger   *slog.Logger
	interval time.Duration
}

type Option func(*options)

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFrameInterval overrides the pace derived from the source frame rate.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// FrameInterval returns the time between frames at fps, falling back to
// convert.DefaultFrameInterval for unknown rates.
func FrameInterval(fps float64) time.Duration {
	if fps <= 0 || math.IsInf(fps, 0) || math.IsNaN(fps) {
		return convert.DefaultFrameInterval
	}
	return time.Duration(float64(time.Second) / fps)
}

// New wires src into conv. sink may be nil when only Render is used.
func New(src video.Source, conv convert.Converter, sink output.Sink, opts ...Option) (*Engine, error) {
	if src == nil || conv == nil {
		return nil, ErrNoSource
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval <= 0 {
		o.interval = FrameInterval(src.FPS())
	}

	return &Engine{
		src:      src,
		conv:     conv,
		sink:     sink,
		interval: o.interval,
		logger:   o.logger,
		stop:     make(chan struct{}),
	}, nil
}

// Interval returns the frame pace.
func (e *Engine) Interval() time.Duration { return e.interval }

// Stop ends Run or Render after the current frame. It is safe to call
// from any goroutine, more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
}

func (e *Engine) stopped(ctx context.Context) bool {
	select {
	case <-e.stop:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// Run opens the sink and feeds frames at the source rate until the source
// ends, ctx is cancelled or Stop is called. The sink is closed and the
// source released on return.
func (e *Engine) Run(ctx context.Context) (err error) {
	if e.sink == nil {
		return ErrNoSink
	}
	if err := e.sink.Open(); err != nil {
		return fmt.Errorf("open sink: %w", err)
	}
	defer func() {
		err = errors.Join(err, e.finish())
		if cerr := e.sink.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close sink: %w", cerr))
		}
	}()

	e.logger.Info("engine started", "interval", e.interval, "rate", e.sink.SampleRate())

	timer := time.NewTimer(e.interval)
	defer timer.Stop()

	next := time.Now()
	for frames := 0; !e.stopped(ctx); frames++ {
		more, err := e.step(frames)
		if err != nil || !more {
			return err
		}

		next = next.Add(e.interval)
		wait := time.Until(next)
		if wait <= 0 {
			// Running late: keep going without trying to catch up.
			next = time.Now()
			continue
		}
		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-e.stop:
		case <-ctx.Done():
		}
	}
	return nil
}

// Render converts the whole source as fast as possible, writing
// interval*rate samples per frame to w. Audio still queued in the converter
// when the source ends is flushed too.
func (e *Engine) Render(ctx context.Context, w SampleWriter) (err error) {
	defer func() { err = errors.Join(err, e.finish()) }()

	rate := e.conv.SampleRate()
	perFrame := int(math.Round(e.interval.Seconds() * float64(rate)))
	buf := make([]float64, perFrame)

	var peak float64
	var written int
	push := func(b []float64) error {
		peak = max(peak, vecmath.MaxAbs(b))
		written += len(b)
		if err := w.Write(b); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}
		return nil
	}

	e.logger.Info("render started", "interval", e.interval, "rate", rate)
	for frames := 0; !e.stopped(ctx); frames++ {
		more, err := e.step(frames)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		e.conv.Pull(buf)
		if err := push(buf); err != nil {
			return err
		}
	}

	if q, ok := e.conv.(interface{ Queued() int }); ok {
		if n := q.Queued(); n > 0 {
			if err := push(convert.Samples(e.conv, n)); err != nil {
				return err
			}
		}
	}

	e.logger.Info("render finished",
		"seconds", float64(written)/float64(rate),
		"peak_db", core.LinearToDB(peak))
	return nil
}

// step reads and converts one frame. It reports false when the source is
// exhausted.
func (e *Engine) step(n int) (bool, error) {
	img, ok := e.src.Read()
	if !ok {
		e.logger.Info("video source exhausted", "frames", n)
		return false, nil
	}

	frame, err := imaging.FromImage(img)
	if err != nil {
		return false, fmt.Errorf("frame %d: %w", n, err)
	}
	if err := e.conv.OnFrame(frame); err != nil {
		return false, fmt.Errorf("frame %d: %w", n, err)
	}
	return true, nil
}

func (e *Engine) finish() error {
	s := e.conv.Stats()
	e.logger.Info("engine stopped",
		"frames", s.Frames,
		"dropped", s.Dropped,
		"underflows", s.Underflows,
		"missing_samples", s.Missing)

	if err := e.src.Release(); err != nil {
		return fmt.Errorf("release source: %w", err)
	}
	return nil
}
