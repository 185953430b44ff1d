package prom

import (
	"context"
	"time"

	"roamstats/internal/application/commands"
	"roamstats/internal/application/stats"
	"roamstats/internal/domain"
	"roamstats/internal/log"
)

// Exporter periodically reloads every statistic and publishes it
type Exporter struct {
	loader  *stats.Loader
	metrics *Metrics
	now     func() time.Time
}

// NewExporter creates an exporter. The loader should be built on an engine
// wrapped with Instrument so query counters are populated.
func NewExporter(loader *stats.Loader, m *Metrics) *Exporter {
	return &Exporter{
		loader:  loader,
		metrics: m,
		now:     time.Now,
	}
}

// Refresh loads the whole catalog and updates the gauges
func (e *Exporter) Refresh(ctx context.Context) error {
	res, err := commands.NewCollectStatsCommand(e.loader).Execute(ctx)
	e.publish(res)
	if err != nil {
		return err
	}
	e.metrics.LastRefresh.Set(float64(e.now().Unix()))
	return nil
}

func (e *Exporter) publish(res domain.Results) {
	for id, v := range res.Metrics {
		e.metrics.MetricValue.WithLabelValues(string(id)).Set(float64(v))
	}
	for tag, v := range res.Tags {
		e.metrics.TagRefs.WithLabelValues(string(tag)).Set(float64(v))
	}
}

// Run refreshes immediately and then every interval until ctx ends
func (e *Exporter) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := e.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn(map[string]any{"error": err.Error()}, "refresh failed")
		} else {
			log.Info(nil, "stats refreshed")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
