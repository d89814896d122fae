// SPDX-License-Identifier: EPL-2.0

package video

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"sync"

	"golang.org/x/image/draw"
)

// GIFSource plays the frames of an animated GIF, composited as a browser
// would show them.
type GIFSource struct {
	mu     sync.Mutex
	frames []image.Image
	next   int
	fps    float64
	open   bool
}

// OpenGIF decodes the whole animation at path.
func OpenGIF(path string) (*GIFSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gif: %w", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("decode gif %s: %w", path, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, path)
	}

	return &GIFSource{
		frames: composite(g),
		fps:    gifFPS(g.Delay),
		open:   true,
	}, nil
}

// gifFPS derives the rate from the mean frame delay, in 1/100 s.
func gifFPS(delays []int) float64 {
	total := 0
	for _, d := range delays {
		total += d
	}
	if total <= 0 {
		return DefaultFPS
	}
	return 100 * float64(len(delays)) / float64(total)
}

// composite renders every frame onto the logical screen, honoring the
// disposal method of the frame before it.
func composite(g *gif.GIF) []image.Image {
	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(screen)

	out := make([]image.Image, 0, len(g.Image))
	for i, p := range g.Image {
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var saved *image.RGBA
		if disposal == gif.DisposalPrevious {
			saved = cloneRGBA(canvas)
		}

		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		out = append(out, cloneRGBA(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, p.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = saved
		}
	}
	return out
}

func cloneRGBA(m *image.RGBA) *image.RGBA {
	c := image.NewRGBA(m.Bounds())
	copy(c.Pix, m.Pix)
	return c
}

func (s *GIFSource) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *GIFSource) Read() (image.Image, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || s.next >= len(s.frames) {
		return nil, false
	}
	img := s.frames[s.next]
	s.next++
	return img, true
}

func (s *GIFSource) FPS() float64 { return s.fps }

// Len returns the number of frames.
func (s *GIFSource) Len() int { return len(s.frames) }

func (s *GIFSource) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = false
	s.frames = nil
	return nil
}
