// Package metrics provides Prometheus instrumentation for collection passes.
//
// All metrics are prefixed with "m3u8_" and registered on the default
// registry through promauto:
//   - PassesTotal: Counter of passes by outcome (done, unopenable, bom, missing_newline, read_error)
//   - LinesTotal: Counter of emitted lines by kind
//   - WarningsTotal: Counter of lines dropped as invalid UTF-8
//   - PassDuration: Histogram of pass duration
//
// The m3u8lint command dumps them to a textfile for node_exporter's
// textfile collector with WriteTextfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/turtletowerz/go-hls/m3u8"
)

// Pass outcomes used as the "outcome" label
const (
	OutcomeDone           = "done"
	OutcomeUnopenable     = "unopenable"
	OutcomeBOM            = "bom"
	OutcomeMissingNewline = "missing_newline"
	OutcomeReadError      = "read_error"
)

var (
	PassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u8_passes_total",
			Help: "Total number of playlist collection passes",
		},
		[]string{"outcome"},
	)

	LinesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u8_lines_total",
			Help: "Total number of classified playlist lines",
		},
		[]string{"kind"},
	)

	WarningsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "m3u8_warnings_total",
			Help: "Total number of lines dropped for invalid UTF-8",
		},
	)

	PassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "m3u8_pass_duration_seconds",
			Help:    "Collection pass duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

// InitializeMetrics pre-populates every label combination so
// that each metric is exported from the first write
func InitializeMetrics() {
	for _, outcome := range []string{OutcomeDone, OutcomeUnopenable, OutcomeBOM, OutcomeMissingNewline, OutcomeReadError} {
		PassesTotal.WithLabelValues(outcome)
	}
	for _, kind := range []m3u8.Kind{m3u8.Blank, m3u8.Comment, m3u8.Tag, m3u8.URI} {
		LinesTotal.WithLabelValues(kind.String())
	}
}

// WriteTextfile writes every registered metric to filename in the text exposition format
func WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer)
}
