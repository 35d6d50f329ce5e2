// Package oned is the dispatch shim between a raw raster source and the
// Telepen decoding core. It mirrors the shape of a multi-format 1D reader —
// a RowDecoder interface, a registry, and a MultiFormatReader that tries each
// registered format in turn — but today registers exactly one format.
package oned

// Format identifies a barcode symbology a RowDecoder can decode.
type Format int

// FormatTelepen is the only format this shim currently registers.
const FormatTelepen Format = iota

func (f Format) String() string {
	switch f {
	case FormatTelepen:
		return "TELEPEN"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of a successful decode.
type Result struct {
	Text   string
	Format Format
}

// DecodeOptions configures a decode attempt.
type DecodeOptions struct {
	// TryHarder asks the reader to spend more effort at the cost of latency.
	// TelepenReader always runs its full tolerance ladder regardless of this
	// flag; the field is kept so callers configuring a MultiFormatReader
	// across several formats have one knob, and so a cheaper fast path can
	// be added later without changing the call shape.
	TryHarder bool
}
