// SPDX-License-Identifier: EPL-2.0

package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ik5/owl/audio"
	"github.com/ik5/owl/formats/wav"
)

var errStopped = errors.New("sink stopped")

// FileSink records a mono 16-bit WAV file. With a source it pulls in real
// time on its own clock; Write pushes samples directly. Both can be used
// together.
type FileSink struct {
	path string
	rate int
	src  audio.Source
	opts options

	// life serializes Open and Close; mu guards the writer.
	life   sync.Mutex
	mu     sync.Mutex
	file   *os.File
	w      *wav.Writer
	cancel context.CancelFunc
	done   chan struct{}

	f32 []float32
	f64 []float64
}

// NewFile returns a sink writing to path at sampleRate. src may be nil for
// push-only use; otherwise it is resampled and downmixed as needed.
func NewFile(path string, sampleRate int, src audio.Source, opts ...Option) (*FileSink, error) {
	if err := checkRate(sampleRate); err != nil {
		return nil, err
	}
	if src != nil {
		src = adapt(src, sampleRate)
	}
	return &FileSink{
		path: path,
		rate: sampleRate,
		src:  src,
		opts: applyOptions(opts),
	}, nil
}

func (s *FileSink) SampleRate() int { return s.rate }

// Open creates (or truncates) the file and starts pulling from the source.
func (s *FileSink) Open() error {
	s.life.Lock()
	defer s.life.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file != nil {
		return ErrAlreadyOpen
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open file sink: %w", err)
	}
	s.file, s.w = f, wav.NewWriter(f, s.rate)
	s.opts.logger.Info("file sink opened", "path", s.path, "rate", s.rate)

	if s.src != nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.cancel, s.done = cancel, make(chan struct{})
		go s.run(ctx, s.done)
	}
	return nil
}

func (s *FileSink) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	err := pace(ctx, s.rate, s.opts.tick, s.pull)
	switch {
	case err == nil, errors.Is(err, errStopped):
	case errors.Is(err, io.EOF):
		s.opts.logger.Info("file sink source drained", "path", s.path)
	default:
		s.opts.logger.Error("file sink stopped", "path", s.path, "err", err)
	}
}

func (s *FileSink) pull(n int) error {
	if cap(s.f32) < n {
		s.f32 = make([]float32, n)
		s.f64 = make([]float64, n)
	}
	got, readErr := s.src.ReadSamples(s.f32[:n])
	for i, v := range s.f32[:got] {
		s.f64[i] = float64(v)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return errStopped
	}
	if err := s.w.Write(s.f64[:got]); err != nil {
		return err
	}
	return readErr
}

// Write appends samples to the file.
func (s *FileSink) Write(samples []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return ErrNotOpen
	}
	if err := s.w.Write(samples); err != nil {
		return fmt.Errorf("file sink: %w", err)
	}
	return nil
}

// Frames returns the number of samples written since Open.
func (s *FileSink) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return 0
	}
	return s.w.Frames()
}

// Close stops pulling, finalizes the WAV header and closes the file. It
// returns once the pulling goroutine has exited.
func (s *FileSink) Close() error {
	s.life.Lock()
	defer s.life.Unlock()
	s.mu.Lock()
	if s.file == nil {
		s.mu.Unlock()
		return ErrNotOpen
	}
	f, w, cancel, done := s.file, s.w, s.cancel, s.done
	s.file, s.w, s.cancel, s.done = nil, nil, nil, nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	frames := w.Frames()
	err := errors.Join(w.Close(), f.Close())
	if err != nil {
		return fmt.Errorf("close file sink: %w", err)
	}
	s.opts.logger.Info("file sink closed", "path", s.path, "frames", frames)
	return nil
}
