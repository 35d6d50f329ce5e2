package rowscan

import "github.com/mharwood/telepengo/internal/reason"

// MinRuns is the minimum number of runs a row must produce to be worth
// attempting to decode; Telepen Numeric exceeds this even for a single
// data-glyph payload.
const MinRuns = 20

// Run is a maximal sequence of consecutive grayscale samples on the same
// side of a threshold: IsBar means the samples are strictly darker than the
// threshold.
type Run struct {
	Length int
	IsBar  bool
}

// Runs converts a thresholded grayscale row into its run sequence. Adjacent
// runs always alternate IsBar, and the sum of run lengths equals len(gray).
func Runs(gray []float64, threshold int) ([]Run, error) {
	if len(gray) == 0 {
		return nil, reason.New(reason.EmptyInput)
	}

	runs := make([]Run, 0, len(gray)/2)
	current := Run{IsBar: gray[0] < float64(threshold), Length: 0}
	for _, v := range gray {
		isBar := v < float64(threshold)
		if isBar == current.IsBar {
			current.Length++
			continue
		}
		runs = append(runs, current)
		current = Run{IsBar: isBar, Length: 1}
	}
	runs = append(runs, current)

	if len(runs) < MinRuns {
		return nil, reason.New(reason.TooFewRuns)
	}
	return runs, nil
}

// Reverse returns a new run sequence in reverse order, equivalent to
// scanning the row right-to-left.
func Reverse(runs []Run) []Run {
	reversed := make([]Run, len(runs))
	for i, r := range runs {
		reversed[len(runs)-1-i] = r
	}
	return reversed
}

// FirstBarIndex returns the index of the first bar run, skipping the
// leading quiet zone (space run). It returns -1 if the sequence has no bar
// run at all.
func FirstBarIndex(runs []Run) int {
	for i, r := range runs {
		if r.IsBar {
			return i
		}
	}
	return -1
}
