package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/user/canvas-replay/internal/domain"
)

// ReplayMetrics holds all Prometheus metrics for a replay run.
type ReplayMetrics struct {
	EventsTotal    *prometheus.CounterVec
	ReplaysTotal   *prometheus.CounterVec
	ReplayDuration prometheus.Histogram
}

// NewReplayMetrics initializes the metrics and registers them with reg.
func NewReplayMetrics(reg prometheus.Registerer) *ReplayMetrics {
	factory := promauto.With(reg)
	return &ReplayMetrics{
		EventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "canvas_replay",
			Subsystem: "replay",
			Name:      "events_total",
			Help:      "Total number of dispatched placement events by kind.",
		}, []string{"kind"}), // kind: pixel, rectangle
		ReplaysTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "canvas_replay",
			Subsystem: "replay",
			Name:      "replays_total",
			Help:      "Total number of replay passes by outcome.",
		}, []string{"status"}), // status: ok, error
		ReplayDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "canvas_replay",
			Subsystem: "replay",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of complete replay passes.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

// Analysis decorates an inner analysis with event counters. Like the
// progress wrapper it is pure delegation and composes with it in any order.
type Analysis[R any] struct {
	inner domain.Analysis[R]
	m     *ReplayMetrics
}

// Instrument wraps inner so that every dispatched event increments the
// per-kind counter.
func Instrument[R any](inner domain.Analysis[R], m *ReplayMetrics) *Analysis[R] {
	return &Analysis[R]{inner: inner, m: m}
}

func (a *Analysis[R]) OnPixel(e domain.PlacementEvent, p domain.Pixel) {
	a.inner.OnPixel(e, p)
	a.m.EventsTotal.WithLabelValues("pixel").Inc()
}

func (a *Analysis[R]) OnRectangle(e domain.PlacementEvent, r domain.Rectangle) {
	a.inner.OnRectangle(e, r)
	a.m.EventsTotal.WithLabelValues("rectangle").Inc()
}

func (a *Analysis[R]) Finalize() R {
	return a.inner.Finalize()
}
