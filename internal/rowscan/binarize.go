package rowscan

import (
	"math"

	"github.com/mharwood/telepengo/internal/reason"
)

// Grayscale converts one row of RGBA pixel bytes (4 bytes per sample, R,G,B,A
// order) into a row of real-valued luminances using the standard Rec. 601
// coefficients. No clamping is applied.
func Grayscale(rowPixels []byte) []float64 {
	width := len(rowPixels) / 4
	gray := make([]float64, width)
	for x := 0; x < width; x++ {
		r := float64(rowPixels[4*x])
		g := float64(rowPixels[4*x+1])
		b := float64(rowPixels[4*x+2])
		gray[x] = 0.299*r + 0.587*g + 0.114*b
	}
	return gray
}

// Binarize computes the Otsu threshold for a grayscale row. If the raw
// result is degenerate (0 or 255), it substitutes 128.
func Binarize(gray []float64) (int, error) {
	if len(gray) == 0 {
		return 0, reason.New(reason.EmptyInput)
	}

	var histogram [256]int
	for _, v := range gray {
		bucket := int(math.Floor(v))
		if bucket < 0 {
			bucket = 0
		}
		if bucket > 255 {
			bucket = 255
		}
		histogram[bucket]++
	}

	threshold := otsuThreshold(histogram, len(gray))
	if threshold == 0 || threshold == 255 {
		threshold = 128
	}
	return threshold, nil
}

// otsuThreshold selects the threshold t in [0,255] maximizing the between-
// class variance wB*wF*(mB-mF)^2, breaking ties toward the lowest threshold.
func otsuThreshold(histogram [256]int, total int) int {
	var sumAll float64
	for i, count := range histogram {
		sumAll += float64(i * count)
	}

	var wB float64
	var sumB float64
	bestVariance := -1.0
	bestThreshold := 0

	for t := 0; t < 256; t++ {
		wB += float64(histogram[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t * histogram[t])

		mB := sumB / wB
		mF := (sumAll - sumB) / wF
		diff := mB - mF
		variance := wB * wF * diff * diff

		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = t
		}
	}
	return bestThreshold
}
