// SPDX-License-Identifier: EPL-2.0

package owl

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/owl/audio"
	"github.com/ik5/owl/formats/wav"
)

func writeWAV(t *testing.T, rate int, samples []float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cue.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w := wav.NewWriter(f, rate)
	if err := w.Write(samples); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path, want string
	}{
		{"cue.wav", "wav"},
		{"/tmp/Beep.MP3", "mp3"},
		{"a.b.ogg", "ogg"},
		{"noext", ""},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	for _, f := range []string{"wav", "mp3", "ogg", "aiff", "aif"} {
		if _, ok := Registry().Get(f); !ok {
			t.Errorf("Registry().Get(%q) = _, false, want true", f)
		}
	}
}

func TestLoadCue(t *testing.T) {
	t.Parallel()

	samples := make([]float64, 480)
	for i := range samples {
		samples[i] = 0.5
	}
	path := writeWAV(t, 48000, samples)

	t.Run("same rate", func(t *testing.T) {
		t.Parallel()

		cue, err := LoadCue(path, 48000)
		if err != nil {
			t.Fatalf("LoadCue() error = %v", err)
		}
		if len(cue) != 480 {
			t.Fatalf("len = %d, want 480", len(cue))
		}
		// 0.5 is written as 8192 and read back over 32768.
		if cue[0] != 0.25 {
			t.Errorf("cue[0] = %v, want 0.25", cue[0])
		}
	})

	t.Run("resampled", func(t *testing.T) {
		t.Parallel()

		cue, err := LoadCue(path, 16000)
		if err != nil {
			t.Fatalf("LoadCue() error = %v", err)
		}
		if len(cue) != 160 {
			t.Fatalf("len = %d, want 160", len(cue))
		}
		for i, v := range cue {
			if math.Abs(v-0.25) > 1e-6 {
				t.Fatalf("cue[%d] = %v, want 0.25", i, v)
			}
		}
	})
}

func TestLoadCue_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadCue(filepath.Join(t.TempDir(), "missing.wav"), 48000); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadCue(missing) error = %v, want %v", err, os.ErrNotExist)
	}

	path := filepath.Join(t.TempDir(), "cue.flac")
	if err := os.WriteFile(path, []byte("fLaC"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCue(path, 48000); !errors.Is(err, audio.ErrUnknownFormat) {
		t.Errorf("LoadCue(flac) error = %v, want %v", err, audio.ErrUnknownFormat)
	}
}
