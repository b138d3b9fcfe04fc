package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"roundest/core/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Counters(t *testing.T) {
	m := metrics.NewManager()

	m.RecordVote(5 * time.Millisecond)
	m.RecordVote(7 * time.Millisecond)
	m.RecordVoteFailure("not_found")
	m.RecordPair()
	m.RecordSeeded(3)
	m.RecordSeeded(0)
	m.RecordSnapshot(151)

	count, err := testutil.GatherAndCount(m.Registry(), "roundest_ranking_votes_recorded_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[f.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[f.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, values["roundest_ranking_votes_recorded_total"])
	assert.Equal(t, 1.0, values["roundest_ranking_vote_failures_total"])
	assert.Equal(t, 1.0, values["roundest_ranking_pairs_served_total"])
	assert.Equal(t, 3.0, values["roundest_ranking_items_seeded_total"])
	assert.Equal(t, 151.0, values["roundest_ranking_items"])
}

func TestManager_NilSafe(t *testing.T) {
	var m *metrics.Manager
	assert.NotPanics(t, func() {
		m.RecordVote(time.Second)
		m.RecordVoteFailure("x")
		m.RecordPair()
		m.RecordPairFailure("x")
		m.RecordSeeded(1)
		m.RecordSnapshot(1)
		m.RecordLeaderboardRead()
	})
}

func TestManager_Handler(t *testing.T) {
	m := metrics.NewManager(metrics.WithNamespace("test"))
	m.RecordPair()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "test_ranking_pairs_served_total 1")
}
