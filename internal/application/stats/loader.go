// Package stats loads graph statistics through a query engine.
//
// Every metric and tag is fetched independently. Results land in a shared
// result set as each query settles, in whatever order the engine answers.
package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"roamstats/internal/domain"
	"roamstats/internal/log"
	"roamstats/internal/ports"
)

// Loader fetches catalog metrics and tag counts, deduplicating requests for
// a key that is already in flight.
type Loader struct {
	engine  ports.QueryEngine
	sched   ports.Scheduler
	sem     *semaphore.Weighted
	timeout time.Duration

	mu      sync.Mutex
	gen     uint64
	results domain.Results
	loading map[domain.Key]bool

	inflight sync.WaitGroup
	updates  chan domain.Key
}

// Option configures a Loader
type Option func(*Loader)

// WithScheduler sets how dispatches are deferred
func WithScheduler(s ports.Scheduler) Option {
	return func(l *Loader) {
		l.sched = s
	}
}

// WithMaxConcurrent caps the number of queries in flight. n <= 0 means no cap.
func WithMaxConcurrent(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.sem = semaphore.NewWeighted(int64(n))
		} else {
			l.sem = nil
		}
	}
}

// WithTimeout bounds each query. d <= 0 means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// NewLoader creates a loader backed by engine
func NewLoader(engine ports.QueryEngine, opts ...Option) *Loader {
	l := &Loader{
		engine:  engine,
		sched:   NewDeferredScheduler(DefaultFrameDelay),
		results: domain.NewResults(),
		loading: make(map[domain.Key]bool),
		updates: make(chan domain.Key, 4*len(domain.AllKeys())),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadMetric fetches one catalog metric. Unknown ids and ids already
// loading are ignored.
func (l *Loader) LoadMetric(id domain.MetricID) {
	query, ok := domain.MetricQuery(id)
	if !ok {
		return
	}
	l.start(domain.MetricKey(id), query, l.sched.AfterTick)
}

// LoadTag fetches the reference count of one catalog tag. Dispatch waits
// for the next frame so bulk tag loads do not delay the first render.
func (l *Loader) LoadTag(tag domain.TagName) {
	if !tag.Valid() {
		return
	}
	l.start(domain.TagKey(tag), domain.TagQuery(tag), l.sched.AfterPaint)
}

// Load dispatches the fetch for any catalog key
func (l *Loader) Load(k domain.Key) {
	if k.Kind == domain.KeyTag {
		l.LoadTag(k.Tag)
		return
	}
	l.LoadMetric(k.Metric)
}

// LoadAll fetches every metric and tag of the catalogs
func (l *Loader) LoadAll() {
	for _, id := range domain.Metrics {
		l.LoadMetric(id)
	}
	for _, tag := range domain.Tags {
		l.LoadTag(tag)
	}
}

// Reset forgets every value and loading flag. Queries already in flight
// keep running but their results are discarded.
func (l *Loader) Reset() {
	l.mu.Lock()
	l.gen++
	l.results = domain.NewResults()
	l.loading = make(map[domain.Key]bool)
	l.mu.Unlock()
}

// Value returns a loaded metric. ok is false until the metric has settled.
func (l *Loader) Value(id domain.MetricID) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results.Metric(id)
}

// TagValue returns a loaded tag count. ok is false until the tag has settled.
func (l *Loader) TagValue(tag domain.TagName) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results.Tag(tag)
}

// IsLoading reports whether a query for k is in flight
func (l *Loader) IsLoading(k domain.Key) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading[k]
}

// Loading returns the number of keys currently in flight
func (l *Loader) Loading() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.loading)
}

// Snapshot returns a copy of the current results
func (l *Loader) Snapshot() domain.Results {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.results.Clone()
}

// Updates delivers the key of every loading or settled transition.
// Notifications are dropped when the buffer is full; observers should
// re-read the snapshot rather than count events.
func (l *Loader) Updates() <-chan domain.Key {
	return l.updates
}

// Wait blocks until every dispatched query has settled. Loads must not be
// started concurrently with Wait.
func (l *Loader) Wait() {
	l.inflight.Wait()
}

// start marks k loading and schedules the fetch. The check and the set
// happen under one lock before any goroutine exists, so two rapid calls for
// the same key dispatch a single query.
func (l *Loader) start(k domain.Key, query string, schedule func(func())) {
	l.mu.Lock()
	if l.loading[k] {
		l.mu.Unlock()
		return
	}
	l.loading[k] = true
	gen := l.gen
	l.inflight.Add(1)
	l.mu.Unlock()

	l.notify(k)
	schedule(func() {
		defer l.inflight.Done()
		l.fetch(gen, k, query)
	})
}

func (l *Loader) fetch(gen uint64, k domain.Key, query string) {
	began := time.Now()
	raw, err := l.query(query)

	var value int64
	if err != nil {
		log.Warn(map[string]any{"key": k.String(), "error": err.Error()}, "stats query failed")
	} else {
		value = domain.Normalize(raw)
	}

	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		log.Debug(map[string]any{"key": k.String()}, "discarding result from before reset")
		return
	}
	if k.Kind == domain.KeyTag {
		l.results.Tags[k.Tag] = value
	} else {
		l.results.Metrics[k.Metric] = value
	}
	delete(l.loading, k)
	l.mu.Unlock()

	log.Debug(map[string]any{
		"key":      k.String(),
		"value":    value,
		"duration": time.Since(began).String(),
	}, "stats query settled")
	l.notify(k)
}

func (l *Loader) query(query string) (raw any, err error) {
	ctx := context.Background()
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if l.sem != nil {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("wait for query slot: %w", err)
		}
		defer l.sem.Release(1)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query engine panicked: %v", r)
		}
	}()
	return l.engine.Query(ctx, query)
}

func (l *Loader) notify(k domain.Key) {
	select {
	case l.updates <- k:
	default:
	}
}
