// SPDX-License-Identifier: EPL-2.0

package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts any image to a brightness frame using the ITU-R 601
// luma weights of image/color.GrayModel.
func FromImage(img image.Image) (*Frame, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmpty
	}

	b := img.Bounds()
	gray, ok := img.(*image.Gray)
	if !ok || b.Min != (image.Point{}) || gray.Stride != b.Dx() {
		gray = image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	}

	f := NewFrame(b.Dx(), b.Dy())
	for i, p := range gray.Pix[:len(f.Pix)] {
		f.Pix[i] = float64(p) / 255
	}
	return f, nil
}

// Fit scales img to exactly width x height.
func Fit(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
