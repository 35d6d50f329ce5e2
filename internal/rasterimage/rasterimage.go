// Package rasterimage adapts a standard library image.Image into the raw,
// row-addressable pixel access the decoding core reads from.
package rasterimage

import (
	"image"
	"image/draw"
)

// Image wraps an arbitrary image.Image as RGBA so rows can be read as a flat
// byte slice with no further conversion. It satisfies telepen.RowImage
// structurally: Width, Height, and RowPixels are all it needs.
type Image struct {
	rgba *image.RGBA
}

// New copies src into an RGBA buffer. The copy happens once, up front, so
// repeated RowPixels calls during a multi-row, multi-direction decode attempt
// never re-convert the same pixels.
func New(src image.Image) *Image {
	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)
	return &Image{rgba: rgba}
}

// NewFromRGBA wraps an already-flat RGBA pixel buffer (width*height*4 bytes,
// no padding between rows) without copying it, for callers — like
// streamserver — that already have pixels in this exact layout off the wire.
func NewFromRGBA(width, height int, pix []byte) *Image {
	rgba := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return &Image{rgba: rgba}
}

// Width returns the image width in pixels.
func (i *Image) Width() int { return i.rgba.Bounds().Dx() }

// Height returns the image height in pixels.
func (i *Image) Height() int { return i.rgba.Bounds().Dy() }

// RowPixels returns row y as R,G,B,A bytes. The returned slice aliases the
// underlying buffer and must not be retained past the next call.
func (i *Image) RowPixels(y int) []byte {
	bounds := i.rgba.Bounds()
	offset := i.rgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
	width := bounds.Dx()
	return i.rgba.Pix[offset : offset+width*4]
}
