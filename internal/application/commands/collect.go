package commands

import (
	"context"

	"roamstats/internal/application/stats"
	"roamstats/internal/domain"
)

// CollectStatsCommand loads a set of keys from scratch and waits for all of
// them to settle
type CollectStatsCommand struct {
	loader *stats.Loader
	Keys   []domain.Key
}

// NewCollectStatsCommand creates a command loading keys, or the whole
// catalog when keys is empty
func NewCollectStatsCommand(loader *stats.Loader, keys ...domain.Key) *CollectStatsCommand {
	return &CollectStatsCommand{
		loader: loader,
		Keys:   keys,
	}
}

// Execute resets the loader, dispatches every key and returns the settled
// results. When ctx ends first the partial snapshot is returned with the
// context error; queries already dispatched keep running.
func (c *CollectStatsCommand) Execute(ctx context.Context) (domain.Results, error) {
	c.loader.Reset()
	if len(c.Keys) == 0 {
		c.loader.LoadAll()
	} else {
		for _, k := range c.Keys {
			c.loader.Load(k)
		}
	}

	done := make(chan struct{})
	go func() {
		c.loader.Wait()
		close(done)
	}()

	select {
	case <-done:
		return c.loader.Snapshot(), nil
	case <-ctx.Done():
		return c.loader.Snapshot(), ctx.Err()
	}
}
