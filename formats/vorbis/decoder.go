// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/owl/audio"
)

type vorbisReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec vorbisReader
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

// ReadSamples decodes whole frames into dst. Read returns interleaved
// values, so the count is always a multiple of Channels.
func (s *source) ReadSamples(dst []float32) (int, error) {
	ch := s.dec.Channels()
	frames := len(dst) / ch
	if frames == 0 {
		return 0, nil
	}

	n, err := s.dec.Read(dst[:frames*ch])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("vorbis: %w", err)
	}
	return n, err
}

// Decoder reads Ogg Vorbis streams through oggvorbis.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("vorbis: %w", err)
	}
	return &source{dec: dec}, nil
}
