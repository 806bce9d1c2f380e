package safe

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK     = "ok"
	outcomeErr    = "err"
	outcomeAbsent = "absent"
)

// Metrics counts adapter calls by outcome.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "optres",
				Subsystem: "safe",
				Name:      "calls_total",
				Help:      "Total number of safe adapter calls by outcome",
			},
			[]string{"adapter", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "optres",
				Subsystem: "safe",
				Name:      "call_duration_seconds",
				Help:      "Duration of safe adapter calls in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"adapter"},
		),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(adapter, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(adapter, outcome).Inc()
	m.duration.WithLabelValues(adapter).Observe(time.Since(started).Seconds())
}

func outcomeOf(err error) string {
	if err != nil {
		return outcomeErr
	}
	return outcomeOK
}
