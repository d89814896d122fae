// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/owl/internal/audiotest"
)

func TestReadMono(t *testing.T) {
	t.Parallel()

	t.Run("same rate stereo", func(t *testing.T) {
		t.Parallel()

		src := audiotest.New(8000, 2, 100, func(_, ch int) float32 { return float32(ch) })
		got, err := ReadMono(src, 8000)
		if err != nil {
			t.Fatalf("ReadMono() error = %v", err)
		}
		if len(got) != 100 {
			t.Fatalf("len = %d, want 100", len(got))
		}
		for i, v := range got {
			if v != 0.5 {
				t.Fatalf("sample %d = %v, want 0.5", i, v)
			}
		}
	})

	t.Run("resampled", func(t *testing.T) {
		t.Parallel()

		got, err := ReadMono(audiotest.Constant(48000, 1, 4800, 0.25), 16000)
		if err != nil {
			t.Fatalf("ReadMono() error = %v", err)
		}
		if len(got) != 1600 {
			t.Fatalf("len = %d, want 1600", len(got))
		}
		for i, v := range got {
			if math.Abs(v-0.25) > 1e-6 {
				t.Fatalf("sample %d = %v, want 0.25", i, v)
			}
		}
	})

	t.Run("stalled source", func(t *testing.T) {
		t.Parallel()

		src := audiotest.Constant(8000, 1, 1000, 0.25)
		src.Stall = 50
		got, err := ReadMono(src, 8000)
		if err != nil {
			t.Fatalf("ReadMono() error = %v", err)
		}
		if len(got) != 50 {
			t.Errorf("len = %d, want 50", len(got))
		}
		if want := 1 + MaxEmptyReads; src.Reads != want {
			t.Errorf("source reads = %d, want %d", src.Reads, want)
		}
	})

	t.Run("invalid rate", func(t *testing.T) {
		t.Parallel()

		if _, err := ReadMono(audiotest.Silent(8000, 1, 1), 0); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("ReadMono(rate 0) error = %v, want %v", err, ErrInvalidRate)
		}
	})
}
