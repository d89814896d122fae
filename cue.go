// SPDX-License-Identifier: EPL-2.0

package owl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/owl/audio"
	"github.com/ik5/owl/formats/aiff"
	"github.com/ik5/owl/formats/mp3"
	"github.com/ik5/owl/formats/vorbis"
	"github.com/ik5/owl/formats/wav"
)

// Registry returns a decoder registry with every supported format. Keys
// are the lowercase file extensions without the dot.
func Registry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

// FormatOf returns the registry key for path's extension.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// LoadCue decodes the audio file at path into a mono signal at sampleRate,
// for use as the per-frame cue of a scan converter.
func LoadCue(path string, sampleRate int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load cue: %w", err)
	}
	defer f.Close()

	src, err := Registry().Decode(FormatOf(path), f)
	if err != nil {
		return nil, fmt.Errorf("load cue %s: %w", path, err)
	}
	defer src.Close()

	cue, err := audio.ReadMono(src, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("load cue %s: %w", path, err)
	}
	return cue, nil
}
