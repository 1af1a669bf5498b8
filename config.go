package until

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/untillib/until/trace"
)

type (
	// Operation is the retried unit of work. It may block and must honor ctx.
	Operation[T any] func(ctx context.Context) (T, error)

	// Condition decides whether an operation result is a success.
	// A non-nil error aborts the invocation immediately.
	Condition[T any] func(ctx context.Context, v T) (ok bool, err error)

	// Matcher reports whether an operation error is tolerated (retried).
	Matcher func(err error) bool
)

// Configuration is an immutable description of one retry. Zero or more
// mutators derive new configurations from it; the receiver is never changed.
type Configuration[T any] struct {
	op        Operation[T]
	interval  time.Duration
	maxTries  int
	timeLimit time.Duration
	clock     clockwork.Clock
	trace     trace.Retry
	onSuccess []Callback[T]
	onFailure []Callback[T]
	onTimeout []Callback[T]
}

// Try wraps op into a Configuration carrying the process-wide defaults
// (see SetDefaults).
func Try[T any](op Operation[T]) Configuration[T] {
	d := CurrentDefaults()

	return Configuration[T]{
		op:        op,
		interval:  d.TryInterval,
		maxTries:  d.MaxTryCount,
		timeLimit: d.TimeLimit,
		clock:     clockwork.NewRealClock(),
	}
}

// WithMaxTryCount limits the invocation to at most n attempts.
// n <= 0 means unbounded. The first attempt is always made.
func (c Configuration[T]) WithMaxTryCount(n int) Configuration[T] {
	c.maxTries = n

	return c
}

// WithTimeLimit stops retrying once d has elapsed since the invocation
// started. d <= 0 means unbounded. The first attempt is always made.
func (c Configuration[T]) WithTimeLimit(d time.Duration) Configuration[T] {
	c.timeLimit = d

	return c
}

// WithTryInterval sets the fixed pause between attempts.
func (c Configuration[T]) WithTryInterval(d time.Duration) Configuration[T] {
	c.interval = d

	return c
}

// WithClock replaces the wall clock used for the time limit and the
// inter-attempt pause. Useful for tests.
func (c Configuration[T]) WithClock(clock clockwork.Clock) Configuration[T] {
	c.clock = clock

	return c
}

// WithTrace appends t to the configuration trace.
func (c Configuration[T]) WithTrace(t trace.Retry) Configuration[T] {
	c.trace = c.trace.Compose(t)

	return c
}

// OnSuccess appends cb to the success callback chain. cb receives the
// successful result and the number of attempts made, including the
// succeeding one.
func (c Configuration[T]) OnSuccess(cb Callback[T]) Configuration[T] {
	c.onSuccess = appendCallback(c.onSuccess, cb)

	return c
}

// OnFailure appends cb to the failure callback chain, fired after every
// unsuccessful attempt that will be retried, before the inter-attempt pause.
func (c Configuration[T]) OnFailure(cb Callback[T]) Configuration[T] {
	c.onFailure = appendCallback(c.onFailure, cb)

	return c
}

// OnTimeout appends cb to the timeout callback chain, fired once when the
// stopping rules end the invocation without success.
func (c Configuration[T]) OnTimeout(cb Callback[T]) Configuration[T] {
	c.onTimeout = appendCallback(c.onTimeout, cb)

	return c
}

// appendCallback copies chain into a fresh slice before appending, so two
// configurations derived from a common ancestor never share a backing array.
func appendCallback[T any](chain []Callback[T], cb Callback[T]) []Callback[T] {
	next := make([]Callback[T], len(chain), len(chain)+1)
	copy(next, chain)

	return append(next, cb)
}
