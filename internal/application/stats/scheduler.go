package stats

import (
	"time"

	"roamstats/internal/ports"
)

// DefaultFrameDelay is one frame at 60 Hz
const DefaultFrameDelay = 16 * time.Millisecond

// DeferredScheduler runs tick work on a fresh goroutine and paint work after
// FrameDelay has elapsed.
type DeferredScheduler struct {
	FrameDelay time.Duration
}

var _ ports.Scheduler = DeferredScheduler{}

// NewDeferredScheduler creates a scheduler with the given frame delay.
// A negative delay is treated as zero.
func NewDeferredScheduler(frameDelay time.Duration) DeferredScheduler {
	if frameDelay < 0 {
		frameDelay = 0
	}
	return DeferredScheduler{FrameDelay: frameDelay}
}

func (s DeferredScheduler) AfterTick(fn func()) {
	go fn()
}

func (s DeferredScheduler) AfterPaint(fn func()) {
	time.AfterFunc(s.FrameDelay, fn)
}

// ImmediateScheduler runs work synchronously on the caller's goroutine.
type ImmediateScheduler struct{}

var _ ports.Scheduler = ImmediateScheduler{}

func (ImmediateScheduler) AfterTick(fn func())  { fn() }
func (ImmediateScheduler) AfterPaint(fn func()) { fn() }
