// Package metrics exposes Prometheus instrumentation for the ambient layers
// (cmd/telepenscan, internal/streamserver). The decoding core never imports
// this package; it stays unaware it is being measured.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess   = "success"
	OutcomeNoBarcode = "no_barcode"
)

var (
	DecodeAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "telepen_decode_attempts_total",
			Help: "Total number of Decode calls, by outcome.",
		},
		[]string{"outcome"},
	)

	DecodeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "telepen_decode_duration_seconds",
			Help:    "Wall-clock time spent in a single Decode call.",
			Buckets: prometheus.DefBuckets,
		},
	)

	RowsScanned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "telepen_rows_scanned",
			Help:    "Number of candidate rows the row sampler yields per Decode call (an upper bound on rows tried).",
			Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
	)
)
