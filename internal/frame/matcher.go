// Package frame locates the start glyph in a classified element stream,
// sequentially matches the remaining glyphs against the Telepen pattern
// table, and validates the resulting checksum.
package frame

import (
	"bytes"

	"github.com/mharwood/telepengo/internal/reason"
	"github.com/mharwood/telepengo/internal/teletable"
)

// startWindow bounds how far into the element stream the start pattern may
// be found: an honest decode never has more than a handful of spurious
// elements before the start.
const startWindow = 20

// missBudget is how many consecutive unmatched positions are tolerated
// before an attempt is abandoned.
const missBudget = 2

// minGlyphs is the minimum number of matched data/checksum glyphs (the
// checksum itself counts as one) for an attempt to be worth validating.
const minGlyphs = 2

// Decoded is the result of a successful frame-and-match pass, before
// checksum validation.
type Decoded struct {
	Glyphs  []int
	HasStop bool
}

// Decode finds the start pattern in elements, then sequentially matches
// glyphs until the stop pattern is found or the attempt is abandoned.
func Decode(elements []byte) (Decoded, error) {
	idx, err := findStart(elements)
	if err != nil {
		return Decoded{}, err
	}

	glyphs := make([]int, 0, 8)
	consecutiveMisses := 0
	hasStop := false
	budgetExhausted := false

	for idx < len(elements) {
		code, length, matched := matchGlyphAt(elements, idx)
		if !matched {
			consecutiveMisses++
			idx++
			if consecutiveMisses >= missBudget {
				budgetExhausted = true
				break
			}
			continue
		}
		consecutiveMisses = 0
		if code == teletable.Stop {
			hasStop = true
			break
		}
		glyphs = append(glyphs, code)
		idx += length
	}

	if !hasStop {
		if budgetExhausted {
			return Decoded{}, reason.New(reason.MissBudgetExhausted)
		}
		return Decoded{}, reason.New(reason.StopNotFound)
	}
	if len(glyphs) < minGlyphs {
		return Decoded{}, reason.New(reason.TooFewGlyphs)
	}
	return Decoded{Glyphs: glyphs, HasStop: hasStop}, nil
}

func findStart(elements []byte) (int, error) {
	startLen := teletable.Lens[teletable.Start]
	startPattern := teletable.Table[teletable.Start]

	maxI := len(elements) - startLen
	if maxI > startWindow {
		maxI = startWindow
	}
	for i := 0; i <= maxI; i++ {
		if bytes.Equal(elements[i:i+startLen], startPattern) {
			return i + startLen, nil
		}
	}
	return 0, reason.New(reason.StartNotFound)
}

// matchGlyphAt tries every code in searchOrder at idx, returning the first
// exact match.
func matchGlyphAt(elements []byte, idx int) (code, length int, matched bool) {
	for _, c := range searchOrder {
		l := teletable.Lens[c]
		end := idx + l
		if end > len(elements) {
			continue
		}
		if bytes.Equal(elements[idx:end], teletable.Table[c]) {
			return c, l, true
		}
	}
	return 0, 0, false
}
