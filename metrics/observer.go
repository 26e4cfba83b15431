package metrics

import (
	"errors"
	"time"

	"github.com/turtletowerz/go-hls/m3u8"
)

// collectorObserver implements m3u8.Observer using the Prometheus
// metrics declared in this package.
type collectorObserver struct{}

// NewCollectorObserver creates an observer that records pass
// metrics into the counters and histogram declared in metrics.go.
func NewCollectorObserver() m3u8.Observer {
	return &collectorObserver{}
}

func (o *collectorObserver) ObservePass(set *m3u8.LineSet, err error, elapsed time.Duration) {
	PassDuration.Observe(elapsed.Seconds())
	PassesTotal.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		return
	}

	for _, line := range set.Lines() {
		LinesTotal.WithLabelValues(line.Kind.String()).Inc()
	}
	WarningsTotal.Add(float64(len(set.Warnings)))
}

// Outcome maps the error returned by a pass to its outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeDone
	case errors.Is(err, m3u8.ErrUnopenable):
		return OutcomeUnopenable
	case errors.Is(err, m3u8.ErrBOMPresent):
		return OutcomeBOM
	case errors.Is(err, m3u8.ErrMissingNewline):
		return OutcomeMissingNewline
	default:
		return OutcomeReadError
	}
}
