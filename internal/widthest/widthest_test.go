package widthest

import (
	"math"
	"testing"

	"github.com/mharwood/telepengo/internal/rowscan"
)

func runsOf(lengths ...int) []rowscan.Run {
	runs := make([]rowscan.Run, len(lengths))
	for i, l := range lengths {
		runs[i] = rowscan.Run{Length: l, IsBar: i%2 == 0}
	}
	return runs
}

func TestEstimateNarrowClusterSeparatesNarrowWide(t *testing.T) {
	lengths := make([]int, 0, 40)
	for i := 0; i < 20; i++ {
		lengths = append(lengths, 4, 12) // 4px narrow, 12px wide -> ratio 3
	}
	lengths = append(lengths, 4) // trailing quiet zone, excluded from sampling
	runs := runsOf(lengths...)

	narrow, err := EstimateNarrow(runs, 0)
	if err != nil {
		t.Fatalf("EstimateNarrow returned error: %v", err)
	}
	if math.Abs(narrow-4) > 0.5 {
		t.Errorf("narrow estimate = %v, want ~4", narrow)
	}
}

func TestEstimateNarrowTooFewSamples(t *testing.T) {
	runs := runsOf(4, 12, 4)
	if _, err := EstimateNarrow(runs, 0); err == nil {
		t.Error("expected error for too few samples")
	}
}

func TestEstimateNarrowFallsBackOnBadRatio(t *testing.T) {
	lengths := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		lengths = append(lengths, 5+i%2) // near-uniform widths, ratio far from 2.5-3.5
	}
	runs := runsOf(lengths...)

	narrow, err := EstimateNarrow(runs, 0)
	if err != nil {
		t.Fatalf("EstimateNarrow returned error: %v", err)
	}
	if narrow <= 0 {
		t.Errorf("narrow estimate = %v, want positive", narrow)
	}
}
