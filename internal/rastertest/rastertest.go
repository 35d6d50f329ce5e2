// Package rastertest generates synthetic Telepen Numeric rasters for tests:
// given a digit string, it renders the exact bar/space image the decoding
// core is expected to read back out.
package rastertest

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/mharwood/telepengo/internal/teletable"
)

// Options configures the rendered raster. Zero values are replaced by
// DefaultOptions' fields.
type Options struct {
	NarrowPx int // pixel width of one narrow unit
	QuietPx  int // quiet-zone width on each side, in pixels
	Height   int // row count
}

// DefaultOptions renders a generously sized, easy-to-decode raster.
var DefaultOptions = Options{NarrowPx: 4, QuietPx: 48, Height: 20}

const (
	pairGlyphLow   = 27
	singleGlyphLow = 17
	checksumRadix  = 127
)

func withDefaults(opts Options) Options {
	if opts.NarrowPx <= 0 {
		opts.NarrowPx = DefaultOptions.NarrowPx
	}
	if opts.QuietPx <= 0 {
		opts.QuietPx = DefaultOptions.QuietPx
	}
	if opts.Height <= 0 {
		opts.Height = DefaultOptions.Height
	}
	return opts
}

// Build renders digits as a Telepen Numeric barcode. digits must be a
// non-empty string of '0'..'9'.
func Build(digits string, opts Options) (*image.RGBA, error) {
	codes, err := Codes(digits)
	if err != nil {
		return nil, err
	}
	return Render(Elements(codes), withDefaults(opts)), nil
}

// Codes returns the full glyph sequence for digits: Start, its data glyphs,
// the checksum glyph, and Stop — exposed so tests can corrupt one glyph
// (e.g. replace the checksum) before rendering.
func Codes(digits string) ([]int, error) {
	glyphs, err := glyphsForDigits(digits)
	if err != nil {
		return nil, err
	}

	sum := 0
	for _, g := range glyphs {
		sum += g
	}
	checksum := (checksumRadix - (sum % checksumRadix)) % checksumRadix

	codes := make([]int, 0, len(glyphs)+3)
	codes = append(codes, teletable.Start)
	codes = append(codes, glyphs...)
	codes = append(codes, checksum, teletable.Stop)
	return codes, nil
}

// Elements expands a glyph code sequence into its concatenated bar/space
// element stream, exposed so tests can corrupt one element (flip a narrow
// to a wide or vice versa) before rendering.
func Elements(codes []int) []byte {
	var elements []byte
	for _, c := range codes {
		elements = append(elements, teletable.Table[c]...)
	}
	return elements
}

// Render draws an element stream as alternating bar/space runs, padded by a
// quiet zone, applying any zero-valued Options fields' defaults.
func Render(elements []byte, opts Options) *image.RGBA {
	return render(elements, withDefaults(opts))
}

// Mirror returns a horizontally flipped copy of img, simulating a barcode
// scanned back-to-front.
func Mirror(img *image.RGBA) *image.RGBA {
	flipped := imaging.FlipH(img)
	rgba := image.NewRGBA(flipped.Bounds())
	draw.Draw(rgba, rgba.Bounds(), flipped, flipped.Bounds().Min, draw.Src)
	return rgba
}

// glyphsForDigits packs a decimal digit string into Telepen Numeric data
// glyphs: digit pairs become a single pair glyph, and a trailing odd digit
// becomes a single-digit glyph.
func glyphsForDigits(digits string) ([]int, error) {
	if len(digits) == 0 {
		return nil, errors.New("rastertest: empty digit string")
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, errors.New("rastertest: non-digit character in digit string")
		}
	}

	glyphs := make([]int, 0, len(digits)/2+1)
	i := 0
	for i+1 < len(digits) {
		tens := int(digits[i] - '0')
		ones := int(digits[i+1] - '0')
		glyphs = append(glyphs, pairGlyphLow+tens*10+ones)
		i += 2
	}
	if i < len(digits) {
		glyphs = append(glyphs, singleGlyphLow+int(digits[i]-'0'))
	}
	return glyphs, nil
}

// render draws elements as alternating bar/space runs, starting with a bar,
// padded on each side by a white quiet zone.
func render(elements []byte, opts Options) *image.RGBA {
	width := 2 * opts.QuietPx
	for _, e := range elements {
		width += int(e) * opts.NarrowPx
	}

	img := image.NewRGBA(image.Rect(0, 0, width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	x := opts.QuietPx
	isBar := true
	for _, e := range elements {
		runWidth := int(e) * opts.NarrowPx
		if isBar {
			rect := image.Rect(x, 0, x+runWidth, opts.Height)
			draw.Draw(img, rect, &image.Uniform{color.Black}, image.Point{}, draw.Src)
		}
		x += runWidth
		isBar = !isBar
	}
	return img
}
