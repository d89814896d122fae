// SPDX-License-Identifier: EPL-2.0

package video

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// Source yields video frames in order. Read reports false once the input
// is exhausted or the source was released.
type Source interface {
	IsOpen() bool
	Read() (image.Image, bool)
	// FPS is the nominal frame rate.
	FPS() float64
	Release() error
}

// DefaultFPS applies to image sequences and to GIFs without frame delays.
const DefaultFPS = 30

// Open resolves an input string:
//
//	file:<path>   an animated GIF, or a single still image
//	dir:<path>    the still images of a directory, in name order
//	camera:<n>    a capture device (not supported)
//	:<n>          shorthand for camera:<n>
//
// A bare path is opened as dir: or file: depending on what it names. fps
// sets the rate of image sequences; zero means DefaultFPS.
func Open(in string, fps float64) (Source, error) {
	if fps < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	if fps == 0 {
		fps = DefaultFPS
	}

	kind, path, found := strings.Cut(in, ":")
	if !found || (kind != "" && kind != "file" && kind != "dir" && kind != "camera") {
		kind, path = "", in
	}

	switch kind {
	case "", "camera":
		if kind == "camera" || strings.HasPrefix(in, ":") {
			return nil, fmt.Errorf("%w: capture device %q", ErrUnsupportedInput, path)
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("open video: %w", err)
		}
		if info.IsDir() {
			return OpenSequence(path, fps)
		}
		return openFile(path, fps)
	case "dir":
		return OpenSequence(path, fps)
	default:
		return openFile(path, fps)
	}
}

func openFile(path string, fps float64) (Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".gif":
		return OpenGIF(path)
	case stillExts[ext]:
		return NewSequence([]string{path}, fps)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
}
