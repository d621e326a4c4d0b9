package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

// Recorder reports polling metrics using Prometheus primitives.
type Recorder struct {
	polls       *prometheus.CounterVec
	pollLatency *prometheus.HistogramVec
	snapshotAge *prometheus.GaugeVec
}

// NewRecorder registers the console collectors on the given registry.
func NewRecorder(registry *prometheus.Registry) (*Recorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &Recorder{
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "console_polls_total",
			Help: "Total backend polls by view and outcome",
		}, []string{"view", "outcome"}),
		pollLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "console_poll_duration_seconds",
			Help:    "Backend poll latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"view"}),
		snapshotAge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "console_snapshot_age_seconds",
			Help: "Age of the most recent successful snapshot per view",
		}, []string{"view"}),
	}

	for _, collector := range []prometheus.Collector{r.polls, r.pollLatency, r.snapshotAge} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

// ObservePoll records one poll attempt for a view.
func (r *Recorder) ObservePoll(view string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.polls.WithLabelValues(view, outcome).Inc()
	r.pollLatency.WithLabelValues(view).Observe(duration.Seconds())
}

// SetSnapshotAge publishes how stale a view's latest snapshot is.
func (r *Recorder) SetSnapshotAge(view string, age time.Duration) {
	r.snapshotAge.WithLabelValues(view).Set(age.Seconds())
}

// Handler exposes the registry as a gin handler for /metrics.
func Handler(registry *prometheus.Registry) gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
