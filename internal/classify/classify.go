// Package classify maps each run's pixel length to a narrow (1) or wide (3)
// Telepen element using nearest-center classification against an estimated
// unit width.
package classify

import "github.com/mharwood/telepengo/internal/rowscan"

const wideRatio = 3.0

// Classify converts runs[startIdx:] into a sequence of elements (each 1 or
// 3), given the estimated narrow width. It trims a trailing quiet-zone
// space run if present, and repairs the case where that quiet zone absorbed
// the symbol's final narrow space by appending a synthetic narrow element.
func Classify(runs []rowscan.Run, startIdx int, narrow float64) []byte {
	wide := wideRatio * narrow

	endIdx := len(runs) - 1
	droppedQuietZone := false
	if endIdx >= startIdx && !runs[endIdx].IsBar && float64(runs[endIdx].Length) > 2*narrow {
		endIdx--
		droppedQuietZone = true
	}

	elements := make([]byte, 0, endIdx-startIdx+2)
	for i := startIdx; i <= endIdx; i++ {
		elements = append(elements, classifyOne(runs[i].Length, narrow, wide))
	}

	if droppedQuietZone && endIdx >= startIdx && runs[endIdx].IsBar {
		elements = append(elements, 1)
	}
	return elements
}

func classifyOne(length int, narrow, wide float64) byte {
	l := float64(length)
	if absDiff(l, narrow) < absDiff(l, wide) {
		return 1
	}
	return 3
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
