// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/owl/utils"
)

// Writer streams mono float samples into a 16-bit PCM WAV container.
// Samples are scaled with utils.PCM16 (round(x*16383)). The header sizes
// are patched on Close, so w must be seekable.
type Writer struct {
	enc    *gowav.Encoder
	buf    *goaudio.IntBuffer
	frames int
	closed bool
}

// NewWriter starts a mono 16-bit WAV stream at sampleRate.
func NewWriter(w io.WriteSeeker, sampleRate int) *Writer {
	return &Writer{
		enc: gowav.NewEncoder(w, sampleRate, 16, 1, pcmFormat),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: 16,
		},
	}
}

// Write appends samples.
func (w *Writer) Write(samples []float64) error {
	if w.closed {
		return ErrWriterClosed
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]
	for i, v := range samples {
		w.buf.Data[i] = int(utils.PCM16(v))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	w.frames += len(samples)
	return nil
}

// Frames returns the number of samples written so far.
func (w *Writer) Frames() int { return w.frames }

// Close finalizes the header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.closed = true

	if w.frames == 0 {
		// Emit the headers of an empty stream.
		w.buf.Data = w.buf.Data[:0]
		if err := w.enc.Write(w.buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
