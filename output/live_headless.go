// SPDX-License-Identifier: EPL-2.0

//go:build headless

package output

import (
	"context"
	"sync"

	"github.com/ik5/owl/audio"
)

// LiveSink drains its source in real time and discards the audio. Headless
// builds have no audio device.
type LiveSink struct {
	rate int
	src  audio.Source
	opts options

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLive(src audio.Source, sampleRate int, opts ...Option) (*LiveSink, error) {
	if err := checkRate(sampleRate); err != nil {
		return nil, err
	}
	return &LiveSink{
		rate: sampleRate,
		src:  adapt(src, sampleRate),
		opts: applyOptions(opts),
	}, nil
}

func (s *LiveSink) SampleRate() int { return s.rate }

func (s *LiveSink) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyOpen
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel, s.done = cancel, make(chan struct{})

	r := newPCMReader(s.src, s.opts.logger)
	var scratch []byte
	go func(done chan<- struct{}) {
		defer close(done)
		_ = pace(ctx, s.rate, s.opts.tick, func(n int) error {
			if cap(scratch) < 4*n {
				scratch = make([]byte, 4*n)
			}
			_, err := r.Read(scratch[:4*n])
			return err
		})
	}(s.done)

	s.opts.logger.Warn("headless build: audio is discarded", "rate", s.rate)
	return nil
}

func (s *LiveSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		return ErrNotOpen
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
	return nil
}
