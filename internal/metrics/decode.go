package metrics

import (
	"time"

	"github.com/mharwood/telepengo"
	"github.com/mharwood/telepengo/internal/rowscan"
)

// Decode wraps telepen.Decode with instrumentation. RowsScanned records the
// row sampler's full candidate count for image's height, an upper bound —
// Decode may return before trying every sampled row.
func Decode(image telepen.RowImage) (string, bool) {
	start := time.Now()
	text, ok := telepen.Decode(image)
	DecodeDuration.Observe(time.Since(start).Seconds())
	RowsScanned.Observe(float64(len(rowscan.SampleRows(image.Height()))))

	outcome := OutcomeNoBarcode
	if ok {
		outcome = OutcomeSuccess
	}
	DecodeAttemptsTotal.WithLabelValues(outcome).Inc()

	return text, ok
}
