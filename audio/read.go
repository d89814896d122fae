// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// ReadMono drains src into a mono buffer at rate, resampling and
// downmixing as needed. src is not closed.
func ReadMono(src Source, rate int) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	s := src
	if s.SampleRate() != rate {
		s = NewResampler(s, rate)
	}
	s = NewMonoMixer(s)

	var out []float64
	buf := make([]float32, max(s.BufSize(), 1024))
	empty := 0
	for {
		n, err := s.ReadSamples(buf)
		for _, v := range buf[:n] {
			out = append(out, float64(v))
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}

		if n > 0 {
			empty = 0
		} else if empty++; empty >= MaxEmptyReads {
			return out, nil
		}
	}
}
