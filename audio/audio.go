// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
)

// Source is a pull-based stream of interleaved float32 PCM.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1, 1] and returns
	// the number of float32 values written, not frames. n == 0 with io.EOF
	// ends the stream, and so do MaxEmptyReads reads of (0, nil).
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is the read size the source prefers.
	BufSize() int
	// Close releases any resources.
	Close() error
}

// MaxEmptyReads is how many reads in a row may return (0, nil) before a
// consumer in this package treats the source as ended.
const MaxEmptyReads = 64

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps format keys ("wav", "mp3", "ogg", ...) to decoders. It is
// safe for concurrent use.
type Registry struct {
	mtx    sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds format to d, replacing any previous decoder.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}

// Decode looks up the decoder for format and runs it on rd.
func (r *Registry) Decode(format string, rd io.Reader) (Source, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := d.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return src, nil
}
