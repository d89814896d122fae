// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests.
package audiotest

import (
	"io"
	"math"
)

// Source generates a finite stream from a waveform function. It satisfies
// audio.Source without importing it.
type Source struct {
	sampleRate int
	channels   int
	frames     int
	generated  int
	waveform   func(frame, channel int) float32

	// MaxRead caps the frames returned per read when positive.
	MaxRead int
	// Stall, when positive, makes the source return (0, nil) forever once
	// that many frames were produced.
	Stall int
	// Reads counts ReadSamples calls.
	Reads int
	// Closed reports whether Close was called.
	Closed bool
}

// New returns a source of frames frames.
func New(sampleRate, channels, frames int, waveform func(frame, channel int) float32) *Source {
	return &Source{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		waveform:   waveform,
	}
}

func Silent(sampleRate, channels, frames int) *Source {
	return Constant(sampleRate, channels, frames, 0)
}

func Constant(sampleRate, channels, frames int, value float32) *Source {
	return New(sampleRate, channels, frames, func(int, int) float32 { return value })
}

func Sine(sampleRate, channels, frames int, frequency float64) *Source {
	return New(sampleRate, channels, frames, func(frame, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Ramp counts frames: frame i of every channel is i/frames.
func Ramp(sampleRate, channels, frames int) *Source {
	return New(sampleRate, channels, frames, func(frame, _ int) float32 {
		return float32(frame) / float32(frames)
	})
}

// Slice plays back interleaved data.
func Slice(sampleRate, channels int, data []float32) *Source {
	return New(sampleRate, channels, len(data)/channels, func(frame, channel int) float32 {
		return data[frame*channels+channel]
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }

func (s *Source) Close() error {
	s.Closed = true
	return nil
}

// Reset rewinds the stream.
func (s *Source) Reset() { s.generated = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	s.Reads++
	if s.generated >= s.frames {
		return 0, io.EOF
	}
	if s.Stall > 0 && s.generated >= s.Stall {
		return 0, nil
	}

	n := min(len(dst)/s.channels, s.frames-s.generated)
	if s.MaxRead > 0 {
		n = min(n, s.MaxRead)
	}
	if s.Stall > 0 {
		n = min(n, s.Stall-s.generated)
	}
	for f := range n {
		for c := range s.channels {
			dst[f*s.channels+c] = s.waveform(s.generated+f, c)
		}
	}
	s.generated += n

	if s.generated >= s.frames {
		return n * s.channels, io.EOF
	}
	return n * s.channels, nil
}
