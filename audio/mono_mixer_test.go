// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"

	"github.com/ik5/owl/internal/audiotest"
)

func TestMonoMixer_Passthrough(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.Ramp(8000, 1, 10))
	if m.Channels() != 1 || m.SampleRate() != 8000 {
		t.Errorf("format = %d Hz x %d, want 8000 Hz x 1", m.SampleRate(), m.Channels())
	}

	got := drain(t, m, 4)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	for i, v := range got {
		if want := float32(i) / 10; v != want {
			t.Errorf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestMonoMixer_AveragesChannels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
		frame    []float32
		want     float32
	}{
		{"stereo", 2, []float32{1, 0}, 0.5},
		{"opposite", 2, []float32{0.5, -0.5}, 0},
		{"quad", 4, []float32{1, 1, 0, 0}, 0.5},
		{"5.1", 6, []float32{0.6, 0.6, 0.6, 0, 0, 0}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := make([]float32, 0, 3*tt.channels)
			for range 3 {
				data = append(data, tt.frame...)
			}
			got := drain(t, NewMonoMixer(audiotest.Slice(8000, tt.channels, data)), 2)

			if len(got) != 3 {
				t.Fatalf("len = %d, want 3", len(got))
			}
			for i, v := range got {
				if d := v - tt.want; d > 1e-6 || d < -1e-6 {
					t.Errorf("frame %d = %v, want %v", i, v, tt.want)
				}
			}
		})
	}
}

func TestMonoMixer_EmptyBufferAndEOF(t *testing.T) {
	t.Parallel()

	m := NewMonoMixer(audiotest.Silent(8000, 2, 0))
	if n, err := m.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
	if n, err := m.ReadSamples(make([]float32, 8)); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = %d, %v, want 0, EOF", n, err)
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	src := audiotest.Silent(8000, 2, 4)
	if err := NewMonoMixer(src).Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed {
		t.Error("Close() did not close the source")
	}
}

func BenchmarkMonoMixer_Stereo(b *testing.B) {
	src := audiotest.Sine(48000, 2, 1<<30, 440)
	m := NewMonoMixer(src)
	buf := make([]float32, 1024)

	b.ReportAllocs()
	for range b.N {
		_, _ = m.ReadSamples(buf)
	}
}
