package views

import (
	"context"
	"errors"
	"sync"

	"roamstats/internal/application/stats"
)

// countEngine answers every query with the same count
type countEngine struct {
	value float64
}

func (e countEngine) Query(context.Context, string, ...any) (any, error) {
	return []any{[]any{e.value}}, nil
}

func newTestLoader(value float64) *stats.Loader {
	return stats.NewLoader(countEngine{value: value}, stats.WithScheduler(stats.ImmediateScheduler{}))
}

type fakeNavigator struct {
	mu     sync.Mutex
	opened []string
	err    error
}

func (n *fakeNavigator) OpenPage(_ context.Context, title string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.opened = append(n.opened, title)
	return nil
}

type fakeClipboard struct {
	text string
	fail bool
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.fail {
		return errors.New("no display")
	}
	c.text = text
	return nil
}
