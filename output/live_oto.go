// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/owl/audio"
)

// The device context is process-wide and cannot be recreated.
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoRate int
	otoErr  error
)

func otoContext(rate int, buffer time.Duration) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
			BufferSize:   buffer,
		})
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx, otoRate = ctx, rate
	})

	if otoErr != nil {
		return nil, fmt.Errorf("audio device: %w", otoErr)
	}
	if otoRate != rate {
		return nil, fmt.Errorf("%w: %d Hz, wanted %d Hz", ErrRateMismatch, otoRate, rate)
	}
	return otoCtx, nil
}

// LiveSink plays a source on the default audio device. The device pulls
// samples from its own thread whenever its buffer runs low.
type LiveSink struct {
	rate int
	src  audio.Source
	opts options

	mu     sync.Mutex
	player *oto.Player
}

// NewLive returns a sink playing src at sampleRate.
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

	if s.player != nil {
		return ErrAlreadyOpen
	}

	ctx, err := otoContext(s.rate, s.opts.buffer)
	if err != nil {
		return err
	}
	s.player = ctx.NewPlayer(newPCMReader(s.src, s.opts.logger))
	s.player.Play()
	s.opts.logger.Info("live sink opened", "rate", s.rate, "buffer", s.opts.buffer)
	return nil
}

func (s *LiveSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil {
		return ErrNotOpen
	}
	s.player.Pause()
	err := s.player.Err()
	s.player = nil

	s.opts.logger.Info("live sink closed")
	if err != nil {
		return fmt.Errorf("live sink: %w", err)
	}
	return nil
}
