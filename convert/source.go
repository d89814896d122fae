// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/ik5/owl/audio"
)

// DefaultBufSize is the block size reported by AsSource.
const DefaultBufSize = 1024

// Source exposes a Converter as an endless mono audio.Source.
type Source struct {
	c   Converter
	buf []float64
}

// AsSource adapts c to audio.Source. ReadSamples always fills dst and never
// returns io.EOF.
func AsSource(c Converter) *Source {
	return &Source{c: c}
}

var _ audio.Source = (*Source)(nil)

func (s *Source) SampleRate() int { return s.c.SampleRate() }
func (s *Source) Channels() int   { return 1 }
func (s *Source) BufSize() int    { return DefaultBufSize }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	s.buf = core.EnsureLen(s.buf, len(dst))
	s.c.Pull(s.buf)
	for i, v := range s.buf {
		dst[i] = float32(v)
	}
	return len(dst), nil
}
