package prom

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamstats/internal/application/stats"
	"roamstats/internal/domain"
)

type stubEngine struct {
	pages float64
}

func (s stubEngine) Query(_ context.Context, query string, _ ...any) (any, error) {
	if q, _ := domain.MetricQuery(domain.MetricPages); q == query {
		return []any{[]any{s.pages}}, nil
	}
	if query == domain.TagQuery(domain.TagDONE) {
		return 5.0, nil
	}
	return nil, errors.New("unsupported")
}

func TestExporter_Refresh(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	loader := stats.NewLoader(
		Instrument(stubEngine{pages: 321}, m),
		stats.WithScheduler(stats.NewDeferredScheduler(0)),
	)
	exp := NewExporter(loader, m)
	exp.now = func() time.Time { return time.Unix(1700000000, 0) }

	require.NoError(t, exp.Refresh(context.Background()))

	assert.Equal(t, 321.0, testutil.ToFloat64(m.MetricValue.WithLabelValues("pages")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.MetricValue.WithLabelValues("codeBlocks")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.TagRefs.WithLabelValues("DONE")))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(m.LastRefresh))

	total := len(domain.Metrics) + len(domain.Tags)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.QueriesTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(total-2), testutil.ToFloat64(m.QueriesTotal.WithLabelValues("error")))
	assert.Equal(t, total, testutil.CollectAndCount(m.MetricValue)+testutil.CollectAndCount(m.TagRefs))
}

func TestExporter_RunStopsOnCancel(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	loader := stats.NewLoader(stubEngine{pages: 1}, stats.WithScheduler(stats.ImmediateScheduler{}))
	exp := NewExporter(loader, m)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- exp.Run(ctx, time.Hour) }()

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(m.MetricValue.WithLabelValues("pages")) == 1
	}, 2*time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", outcome(nil))
	assert.Equal(t, "timeout", outcome(context.DeadlineExceeded))
	assert.Equal(t, "error", outcome(errors.New("x")))
}
