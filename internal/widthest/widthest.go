// Package widthest estimates the Telepen narrow-element pixel width from a
// row's run lengths by clustering them into a narrow and a wide center.
package widthest

import (
	"sort"

	"github.com/mharwood/telepengo/internal/reason"
	"github.com/mharwood/telepengo/internal/rowscan"
)

const (
	maxSamples   = 100
	minSamples   = 10
	kMeansIters  = 10
	minRatio     = 2.5
	maxRatio     = 3.5
	fallbackPctl = 0.30
)

// EstimateNarrow estimates the narrow-element width from runs[startIdx:],
// excluding the trailing quiet-zone run, sampling at most maxSamples runs.
// It returns an error if fewer than minSamples runs are available.
func EstimateNarrow(runs []rowscan.Run, startIdx int) (float64, error) {
	end := len(runs) - 1 // exclude trailing quiet zone
	if end <= startIdx {
		return 0, reason.New(reason.InvalidWidthEstimate)
	}

	samples := make([]float64, 0, maxSamples)
	for i := startIdx; i < end && len(samples) < maxSamples; i++ {
		samples = append(samples, float64(runs[i].Length))
	}
	if len(samples) < minSamples {
		return 0, reason.New(reason.InvalidWidthEstimate)
	}

	narrow, wide := kMeansNarrowWide(samples)
	if narrow > 0 {
		ratio := wide / narrow
		if ratio >= minRatio && ratio <= maxRatio {
			return narrow, nil
		}
	}

	return fallbackPercentileNarrow(samples), nil
}

// kMeansNarrowWide runs a fixed-iteration 2-means clustering over samples,
// seeded at the minimum and maximum sample.
func kMeansNarrowWide(samples []float64) (narrow, wide float64) {
	narrow = samples[0]
	wide = samples[0]
	for _, s := range samples {
		if s < narrow {
			narrow = s
		}
		if s > wide {
			wide = s
		}
	}

	for iter := 0; iter < kMeansIters; iter++ {
		var narrowSum, wideSum float64
		var narrowCount, wideCount int
		for _, s := range samples {
			if absDiff(s, narrow) <= absDiff(s, wide) {
				narrowSum += s
				narrowCount++
			} else {
				wideSum += s
				wideCount++
			}
		}
		if narrowCount > 0 {
			narrow = narrowSum / float64(narrowCount)
		}
		if wideCount > 0 {
			wide = wideSum / float64(wideCount)
		}
	}
	return narrow, wide
}

// fallbackPercentileNarrow returns the median of the lower 30th percentile
// of sorted sample lengths.
func fallbackPercentileNarrow(samples []float64) float64 {
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	cutoff := int(float64(len(sorted)) * fallbackPctl)
	if cutoff < 1 {
		cutoff = 1
	}
	lower := sorted[:cutoff]
	return median(lower)
}

func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
