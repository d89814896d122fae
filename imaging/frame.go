// SPDX-License-Identifier: EPL-2.0

package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/ik5/owl/utils"
)

// Frame is a single-channel brightness matrix. Values are in [0, 1] and
// stored row-major: Pix[y*Width+x].
type Frame struct {
	Width  int
	Height int
	Pix    []float64
}

// NewFrame returns a black frame of the given size.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// Uniform returns a frame filled with v.
func Uniform(width, height int, v float64) *Frame {
	f := NewFrame(width, height)
	for i := range f.Pix {
		f.Pix[i] = v
	}
	return f
}

func (f *Frame) Empty() bool {
	return f == nil || f.Width <= 0 || f.Height <= 0 || len(f.Pix) < f.Width*f.Height
}

func (f *Frame) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

func (f *Frame) Set(x, y int, v float64) {
	f.Pix[y*f.Width+x] = v
}

func (f *Frame) Clone() *Frame {
	out := &Frame{Width: f.Width, Height: f.Height, Pix: make([]float64, len(f.Pix))}
	copy(out.Pix, f.Pix)
	return out
}

// SquareCrop returns the centered square of side min(Width, Height).
func (f *Frame) SquareCrop() *Frame {
	side := min(f.Width, f.Height)
	offX := (f.Width - side) / 2
	offY := (f.Height - side) / 2

	if offX == 0 && offY == 0 {
		return f.Clone()
	}

	out := NewFrame(side, side)
	for y := range side {
		src := f.Pix[(y+offY)*f.Width+offX:]
		copy(out.Pix[y*side:(y+1)*side], src[:side])
	}
	return out
}

// Resize resamples the frame to width x height by area averaging: every
// destination pixel is the coverage-weighted mean of the source pixels it
// overlaps.
func (f *Frame) Resize(width, height int) (*Frame, error) {
	if f.Empty() {
		return nil, ErrEmpty
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == f.Width && height == f.Height {
		return f.Clone(), nil
	}

	cols := areaTaps(f.Width, width)
	rows := areaTaps(f.Height, height)

	// Horizontal pass into a width x f.Height buffer, then vertical.
	tmp := make([]float64, width*f.Height)
	for y := range f.Height {
		row := f.Pix[y*f.Width : (y+1)*f.Width]
		for x, taps := range cols {
			var sum float64
			for _, t := range taps {
				sum += row[t.index] * t.weight
			}
			tmp[y*width+x] = sum
		}
	}

	out := NewFrame(width, height)
	for y, taps := range rows {
		for x := range width {
			var sum float64
			for _, t := range taps {
				sum += tmp[t.index*width+x] * t.weight
			}
			out.Pix[y*width+x] = sum
		}
	}

	return out, nil
}

// Bicubic samples the frame at a fractional pixel position with a
// Catmull-Rom kernel. Coordinates outside the frame are clamped to the
// border, and so is the result, since the kernel overshoots at edges.
func (f *Frame) Bicubic(x, y float64) float64 {
	x = clamp(x, 0, float64(f.Width-1))
	y = clamp(y, 0, float64(f.Height-1))

	x1, y1 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x1), y-float64(y1)

	var col [4]float64
	for j := range col {
		row := min(max(y1+j-1, 0), f.Height-1)
		at := func(i int) float64 {
			return f.At(min(max(x1+i-1, 0), f.Width-1), row)
		}
		col[j] = utils.CubicInterpolate(at(0), at(1), at(2), at(3), fx)
	}
	return clamp(utils.CubicInterpolate(col[0], col[1], col[2], col[3], fy), 0, 1)
}

// Image renders the frame as an 8-bit grayscale image.
func (f *Frame) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Pix {
		img.Pix[i] = uint8(math.Round(clamp(v, 0, 1) * 255))
	}
	return img
}

type tap struct {
	index  int
	weight float64
}

// areaTaps lists, for each of dst output cells, the src cells it overlaps
// and the normalized overlap.
func areaTaps(src, dst int) [][]tap {
	out := make([][]tap, dst)
	scale := float64(src) / float64(dst)

	for i := range out {
		start := float64(i) * scale
		end := float64(i+1) * scale
		first := int(math.Floor(start))
		last := min(int(math.Ceil(end)), src)

		taps := make([]tap, 0, last-first)
		for j := first; j < last; j++ {
			overlap := math.Min(end, float64(j+1)) - math.Max(start, float64(j))
			if overlap <= 0 {
				continue
			}
			taps = append(taps, tap{index: j, weight: overlap / scale})
		}
		out[i] = taps
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
