package frame

import "github.com/mharwood/telepengo/internal/teletable"

// searchOrder is the static glyph match order: stop first (so termination
// is always detected before it could be mistaken for a data glyph), then
// the common case (digit-pair glyphs 27..126), then single-digit glyphs
// 17..26, then any remaining code. Built once; never recomputed per call.
var searchOrder [128]int

func init() {
	seen := make(map[int]bool, 128)
	n := 0
	add := func(code int) {
		if seen[code] {
			return
		}
		seen[code] = true
		searchOrder[n] = code
		n++
	}

	add(teletable.Stop)
	for c := 27; c <= 126; c++ {
		add(c)
	}
	for c := 17; c <= 26; c++ {
		add(c)
	}
	for c := 0; c < 128; c++ {
		add(c)
	}
}
