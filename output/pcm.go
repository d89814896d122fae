// SPDX-License-Identifier: EPL-2.0

package output

import (
	"encoding/binary"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/ik5/owl/audio"
)

// pcmReader renders a mono source as float32 little-endian bytes clamped to
// [-1, 1]. It never ends: once the source is exhausted or fails it produces
// silence.
type pcmReader struct {
	src    audio.Source
	buf    []float32
	logger *slog.Logger
	once   sync.Once
}

func newPCMReader(src audio.Source, logger *slog.Logger) *pcmReader {
	return &pcmReader{src: src, logger: logger}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	n := len(p) / 4
	if n == 0 {
		return 0, nil
	}
	if cap(r.buf) < n {
		r.buf = make([]float32, n)
	}
	buf := r.buf[:n]

	got, err := r.src.ReadSamples(buf)
	clear(buf[got:])
	if err != nil && !errors.Is(err, io.EOF) {
		r.once.Do(func() {
			r.logger.Error("audio source failed, playing silence", "err", err)
		})
	}

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(float32(core.Clamp(float64(v), -1, 1))))
	}
	return 4 * n, nil
}
