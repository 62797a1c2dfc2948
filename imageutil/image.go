// Package imageutil holds the raster side of the ASCII pipeline: decoding,
// resampling and luminance buffers, all in pure Go on top of image and
// golang.org/x/image.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// RGBAImage is the multi-channel buffer produced by the loader and the
// scaler. Its bounds always start at (0, 0).
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage allocates a black, fully transparent buffer.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage copies any decoded image into an RGBAImage anchored
// at the origin.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}
	bounds := img.Bounds()
	dst := NewRGBAImage(bounds.Dx(), bounds.Dy())
	draw.Draw(dst.RGBA, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// Width returns the number of columns.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the number of rows.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// Empty reports whether the buffer has no pixels.
func (img *RGBAImage) Empty() bool {
	return img.Width() == 0 || img.Height() == 0
}

// SetRGB stores an opaque colour at (x, y).
func (img *RGBAImage) SetRGB(x, y int, c RGB) {
	img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

// GrayImage is a single-channel luminance buffer. Buffers allocated by
// this package start at the origin with Stride == Width.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage allocates a zeroed (black) luminance buffer.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// Width returns the number of columns.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the number of rows.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// Luma returns the sample at (x, y).
func (img *GrayImage) Luma(x, y int) uint8 {
	return img.GrayAt(x, y).Y
}

// SetLuma stores a sample at (x, y).
func (img *GrayImage) SetLuma(x, y int, v uint8) {
	img.SetGray(x, y, color.Gray{Y: v})
}

// Samples returns a copy of every luminance sample in row-major order.
func (img *GrayImage) Samples() []uint8 {
	b := img.Bounds()
	width := b.Dx()
	out := make([]uint8, 0, width*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[row:row+width]...)
	}
	return out
}

// Clone creates a deep copy of the image.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	copy(clone.Pix, img.Samples())
	return clone
}
