package ports

// Scheduler defers work out of the caller's turn.
//
// AfterTick runs fn as soon as possible after the caller returns.
// AfterPaint runs fn no earlier than the next frame boundary, so bulk work
// does not compete with the first render.
type Scheduler interface {
	AfterTick(fn func())
	AfterPaint(fn func())
}
