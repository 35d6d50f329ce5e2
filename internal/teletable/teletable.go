// Package teletable holds the Telepen glyph pattern tables: for each 7-bit
// code, the alternating sequence of narrow (1) and wide (3) elements that
// draws its bars and spaces.
//
// No zint source tree is available in this build environment to copy the
// canonical tables from verbatim (see DESIGN.md). Rather than transcribe 128
// string literals from memory and risk a silent transcription error, this
// package computes the tables once at init time from Telepen's documented
// bit encoding and then treats them exactly like the static tables the spec
// describes: read-only, process-wide, never recomputed after init.
package teletable

// Start and Stop are the glyph codes framing every Telepen symbol.
const (
	Start = 95
	Stop  = 122
)

const numCodes = 128

// Table[c] is the element sequence (each entry 1 or 3) for glyph code c.
// Lens[c] is len(Table[c]).
var (
	Table [numCodes][]byte
	Lens  [numCodes]int
)

func init() {
	for code := 0; code < numCodes; code++ {
		pattern := buildPattern(code)
		Table[code] = pattern
		Lens[code] = len(pattern)
	}
}

// buildPattern computes the bar/space element sequence for a 7-bit Telepen
// code: the code is transmitted as 7 data bits plus one parity bit chosen so
// the 8-bit codeword always has an odd number of set bits, read from bit 0
// (transmitted first) to bit 7 (transmitted last). A 0 bit draws one narrow
// element; a 1 bit draws a wide element followed by a narrow element, and
// color alternates every element. Every pattern therefore has an odd number
// of elements, so in a symbol that opens with a bar the glyphs alternate
// between starting on a bar and starting on a space.
func buildPattern(code int) []byte {
	ones := 0
	for i := 0; i < 7; i++ {
		if code&(1<<uint(i)) != 0 {
			ones++
		}
	}
	codeword := code
	if ones%2 == 0 {
		codeword |= 1 << 7
	}

	pattern := make([]byte, 0, 16)
	for i := 0; i < 8; i++ {
		if codeword&(1<<uint(i)) != 0 {
			pattern = append(pattern, 3, 1)
		} else {
			pattern = append(pattern, 1)
		}
	}
	return pattern
}
