// SPDX-License-Identifier: EPL-2.0

package video

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	// Still image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ik5/owl/imaging"
)

var stillExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// SequenceSource plays still images as frames at a fixed rate. Images are
// decoded on demand; any whose size differs from the first are scaled to
// match it.
type SequenceSource struct {
	mu    sync.Mutex
	paths []string
	next  int
	size  image.Point
	fps   float64
	open  bool
}

// OpenSequence lists the images in dir, sorted by name.
func OpenSequence(dir string, fps float64) (*SequenceSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("open sequence: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !stillExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)

	return NewSequence(paths, fps)
}

// NewSequence plays paths in the given order.
func NewSequence(paths []string, fps float64) (*SequenceSource, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}
	if fps <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFPS, fps)
	}
	return &SequenceSource{
		paths: slices.Clone(paths),
		fps:   fps,
		open:  true,
	}, nil
}

func (s *SequenceSource) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Read decodes the next image. An image that fails to decode ends the
// sequence.
func (s *SequenceSource) Read() (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || s.next >= len(s.paths) {
		return nil, false
	}
	path := s.paths[s.next]
	s.next++

	img, err := decodeFile(path)
	if err != nil {
		s.next = len(s.paths)
		return nil, false
	}

	if s.size == (image.Point{}) {
		s.size = img.Bounds().Size()
	}
	return imaging.Fit(img, s.size.X, s.size.Y), true
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

func (s *SequenceSource) FPS() float64 { return s.fps }

// Len returns the number of images.
func (s *SequenceSource) Len() int { return len(s.paths) }

func (s *SequenceSource) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = false
	return nil
}
