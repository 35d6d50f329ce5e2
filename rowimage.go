// Package telepen decodes Telepen Numeric one-dimensional barcodes from
// raw raster rows. It is a pure, synchronous, allocation-bounded library:
// no I/O, no shared mutable state, and no dependency on any particular image
// decoding library. Callers hand it a RowImage; it hands back a digit
// string or reports that nothing decoded.
package telepen

// RowImage is the opaque raster source the decoder reads from. It never
// owns decoding, rotation, or capture concerns — those live in whatever
// collaborator constructs it (see internal/rasterimage for the
// image.Image adapter, and oned for the dispatch shim that wires this
// package in).
type RowImage interface {
	// Width returns the image width in pixels.
	Width() int
	// Height returns the image height in pixels.
	Height() int
	// RowPixels returns row y as a byte sequence of length 4*Width(), in
	// R,G,B,A order. The returned slice must not be retained past the next
	// call to RowPixels.
	RowPixels(y int) []byte
}
