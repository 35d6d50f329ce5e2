package rowscan

// fractions are the vertical fractions of image height probed by
// SampleRows, in priority order: center first, so a clean center scan
// short-circuits the orchestrator before outer rows are ever touched.
var fractions = []float64{0.50, 0.45, 0.55, 0.40, 0.60, 0.35, 0.65, 0.30, 0.70}

// SampleRows returns the row indices to probe for an image of the given
// height, in the fixed priority order above. Duplicate indices (which can
// occur for small heights where distinct fractions floor to the same row)
// are kept only once, preserving the first occurrence's priority.
func SampleRows(height int) []int {
	rows := make([]int, 0, len(fractions))
	seen := make(map[int]bool, len(fractions))
	for _, f := range fractions {
		y := int(float64(height) * f)
		if y < 0 {
			y = 0
		}
		if y >= height {
			y = height - 1
		}
		if seen[y] {
			continue
		}
		seen[y] = true
		rows = append(rows, y)
	}
	return rows
}
