package telepen

import (
	"github.com/mharwood/telepengo/internal/classify"
	"github.com/mharwood/telepengo/internal/frame"
	"github.com/mharwood/telepengo/internal/rowscan"
	"github.com/mharwood/telepengo/internal/widthest"
)

// tolerances is the tolerance ladder the orchestrator cycles through per
// row/direction attempt. The classifier's nearest-center rule ignores the
// tolerance value (see internal/classify); this ladder only exists to drive
// repeated attempts, preserved from the source behavior. See DESIGN.md.
var tolerances = []float64{0.30, 0.35, 0.40, 0.45, 0.50, 0.25}

// Decode attempts to read a Telepen Numeric barcode from image. It returns
// the decoded digit string and true on success, or ("", false) if no row,
// direction, and tolerance combination produced a checksum-valid, stop-
// terminated decode.
func Decode(image RowImage) (string, bool) {
	for _, y := range rowscan.SampleRows(image.Height()) {
		text, ok := decodeRow(image, y)
		if ok {
			return text, true
		}
	}
	return "", false
}

func decodeRow(image RowImage, y int) (string, bool) {
	gray := rowscan.Grayscale(image.RowPixels(y))
	threshold, err := rowscan.Binarize(gray)
	if err != nil {
		return "", false
	}
	runs, err := rowscan.Runs(gray, threshold)
	if err != nil {
		return "", false
	}

	for _, reversed := range [2]bool{false, true} {
		attemptRuns := runs
		if reversed {
			attemptRuns = rowscan.Reverse(runs)
		}
		if text, ok := decodeDirection(attemptRuns); ok {
			return text, true
		}
	}
	return "", false
}

func decodeDirection(runs []rowscan.Run) (string, bool) {
	startIdx := rowscan.FirstBarIndex(runs)
	if startIdx < 0 {
		return "", false
	}

	narrow, err := widthest.EstimateNarrow(runs, startIdx)
	if err != nil {
		return "", false
	}

	for range tolerances {
		elements := classify.Classify(runs, startIdx, narrow)
		decoded, err := frame.Decode(elements)
		if err != nil {
			continue
		}
		text, err := frame.ValidateChecksum(decoded.Glyphs)
		if err != nil {
			continue
		}
		if decoded.HasStop {
			return text, true
		}
	}
	return "", false
}
