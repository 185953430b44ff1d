// Package prom exports graph statistics as Prometheus metrics.
package prom

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"roamstats/internal/ports"
)

// Metrics holds the collectors of one exporter
type Metrics struct {
	MetricValue   *prometheus.GaugeVec
	TagRefs       *prometheus.GaugeVec
	QueriesTotal  *prometheus.CounterVec
	QueryDuration prometheus.Histogram
	LastRefresh   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MetricValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "roamstats_metric_value",
				Help: "Latest value of a graph statistic",
			},
			[]string{"metric"},
		),
		TagRefs: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "roamstats_tag_refs",
				Help: "Number of blocks referencing a tag page",
			},
			[]string{"tag"},
		),
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roamstats_queries_total",
				Help: "Total queries sent to the graph by outcome",
			},
			[]string{"outcome"},
		),
		QueryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "roamstats_query_duration_seconds",
				Help:    "Query round trip duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		LastRefresh: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "roamstats_last_refresh_timestamp_seconds",
				Help: "Unix time of the last completed refresh",
			},
		),
	}

	reg.MustRegister(
		m.MetricValue, m.TagRefs,
		m.QueriesTotal, m.QueryDuration,
		m.LastRefresh,
	)
	return m
}

// InstrumentedEngine counts and times the queries of another engine
type InstrumentedEngine struct {
	next    ports.QueryEngine
	metrics *Metrics
}

var _ ports.QueryEngine = (*InstrumentedEngine)(nil)

// Instrument wraps next
func Instrument(next ports.QueryEngine, m *Metrics) *InstrumentedEngine {
	return &InstrumentedEngine{next: next, metrics: m}
}

func (e *InstrumentedEngine) Query(ctx context.Context, query string, args ...any) (any, error) {
	start := time.Now()
	raw, err := e.next.Query(ctx, query, args...)
	e.metrics.QueryDuration.Observe(time.Since(start).Seconds())
	e.metrics.QueriesTotal.WithLabelValues(outcome(err)).Inc()
	return raw, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
