// Package metrics provides Prometheus metrics for the ranking service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the service metrics. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	votesRecorded  prometheus.Counter
	voteFailures   *prometheus.CounterVec
	voteLatency    prometheus.Histogram
	pairsServed    prometheus.Counter
	pairFailures   *prometheus.CounterVec
	itemsSeeded    prometheus.Counter
	itemsTotal     prometheus.Gauge
	snapshotLoads  prometheus.Counter
	leaderboardHit prometheus.Counter
}

// NewManager creates a metrics manager on its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "roundest",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.votesRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "votes_recorded_total",
		Help:      "Total number of votes applied to ratings",
	})
	m.voteFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vote_failures_total",
		Help:      "Total number of rejected or failed votes by reason",
	}, []string{"reason"})
	m.voteLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vote_duration_seconds",
		Help:      "Time spent in the vote transaction",
		Buckets:   m.histogramBuckets,
	})
	m.pairsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pairs_served_total",
		Help:      "Total number of pairs sampled",
	})
	m.pairFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pair_failures_total",
		Help:      "Total number of failed pair requests by reason",
	}, []string{"reason"})
	m.itemsSeeded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items_seeded_total",
		Help:      "Total number of items inserted by seeding",
	})
	m.itemsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items",
		Help:      "Number of items in the last snapshot read",
	})
	m.snapshotLoads = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_loads_total",
		Help:      "Total number of full item table reads",
	})
	m.leaderboardHit = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_reads_total",
		Help:      "Total number of leaderboard reads",
	})
}

// RecordVote records a committed vote and its duration.
func (m *Manager) RecordVote(d time.Duration) {
	if m == nil {
		return
	}
	m.votesRecorded.Inc()
	m.voteLatency.Observe(d.Seconds())
}

// RecordVoteFailure records a vote that was rejected or failed.
func (m *Manager) RecordVoteFailure(reason string) {
	if m == nil {
		return
	}
	m.voteFailures.WithLabelValues(reason).Inc()
}

// RecordPair records a served pair.
func (m *Manager) RecordPair() {
	if m == nil {
		return
	}
	m.pairsServed.Inc()
}

// RecordPairFailure records a pair request that failed.
func (m *Manager) RecordPairFailure(reason string) {
	if m == nil {
		return
	}
	m.pairFailures.WithLabelValues(reason).Inc()
}

// RecordSeeded adds n inserted items.
func (m *Manager) RecordSeeded(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.itemsSeeded.Add(float64(n))
}

// RecordSnapshot records a full item read of n items.
func (m *Manager) RecordSnapshot(n int) {
	if m == nil {
		return
	}
	m.snapshotLoads.Inc()
	m.itemsTotal.Set(float64(n))
}

// RecordLeaderboardRead records a leaderboard request.
func (m *Manager) RecordLeaderboardRead() {
	if m == nil {
		return
	}
	m.leaderboardHit.Inc()
}

// Registry returns the registry the metrics live on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
