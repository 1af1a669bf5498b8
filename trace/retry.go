package trace

import (
	"context"
	"time"
)

type (
	// Retry contains options for tracing one retry invocation.
	// Every hook returns a done-callback invoked when the traced span ends.
	// Nil hooks and nil done-callbacks are allowed.
	Retry struct {
		// OnRetry spans the whole invocation, from the first attempt to the
		// terminal state.
		OnRetry func(RetryLoopStartInfo) func(RetryLoopDoneInfo)
		// OnAttempt spans a single execution of the wrapped operation.
		OnAttempt func(RetryLoopAttemptStartInfo) func(RetryLoopAttemptDoneInfo)
		// OnWait spans the pause between two attempts.
		OnWait func(RetryLoopWaitStartInfo) func(RetryLoopWaitDoneInfo)
	}
	RetryLoopStartInfo struct {
		Context context.Context
	}
	RetryLoopDoneInfo struct {
		Latency  time.Duration
		Attempts int
		Error    error
	}
	RetryLoopAttemptStartInfo struct {
		Context context.Context
		Attempt int
	}
	RetryLoopAttemptDoneInfo struct {
		Error error
	}
	RetryLoopWaitStartInfo struct {
		Attempt  int
		Interval time.Duration
	}
	RetryLoopWaitDoneInfo struct {
		Error error
	}
)

// Compose returns a new Retry which has methods composed of t and x methods.
// Start hooks run in (t, x) order, done callbacks in the same order.
func (t Retry) Compose(x Retry) (ret Retry) {
	switch {
	case t.OnRetry == nil:
		ret.OnRetry = x.OnRetry
	case x.OnRetry == nil:
		ret.OnRetry = t.OnRetry
	default:
		h1 := t.OnRetry
		h2 := x.OnRetry
		ret.OnRetry = func(info RetryLoopStartInfo) func(RetryLoopDoneInfo) {
			r1 := h1(info)
			r2 := h2(info)

			return func(info RetryLoopDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}
	switch {
	case t.OnAttempt == nil:
		ret.OnAttempt = x.OnAttempt
	case x.OnAttempt == nil:
		ret.OnAttempt = t.OnAttempt
	default:
		h1 := t.OnAttempt
		h2 := x.OnAttempt
		ret.OnAttempt = func(info RetryLoopAttemptStartInfo) func(RetryLoopAttemptDoneInfo) {
			r1 := h1(info)
			r2 := h2(info)

			return func(info RetryLoopAttemptDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}
	switch {
	case t.OnWait == nil:
		ret.OnWait = x.OnWait
	case x.OnWait == nil:
		ret.OnWait = t.OnWait
	default:
		h1 := t.OnWait
		h2 := x.OnWait
		ret.OnWait = func(info RetryLoopWaitStartInfo) func(RetryLoopWaitDoneInfo) {
			r1 := h1(info)
			r2 := h2(info)

			return func(info RetryLoopWaitDoneInfo) {
				if r1 != nil {
					r1(info)
				}
				if r2 != nil {
					r2(info)
				}
			}
		}
	}

	return ret
}

// RetryOnRetry is a shortcut helper driving the OnRetry hook.
func RetryOnRetry(t Retry, ctx context.Context) func(latency time.Duration, attempts int, err error) {
	var onDone func(RetryLoopDoneInfo)
	if onStart := t.OnRetry; onStart != nil {
		onDone = onStart(RetryLoopStartInfo{Context: ctx})
	}
	if onDone == nil {
		onDone = func(RetryLoopDoneInfo) {}
	}

	return func(latency time.Duration, attempts int, err error) {
		onDone(RetryLoopDoneInfo{
			Latency:  latency,
			Attempts: attempts,
			Error:    err,
		})
	}
}

// RetryOnAttempt is a shortcut helper driving the OnAttempt hook.
func RetryOnAttempt(t Retry, ctx context.Context, attempt int) func(err error) {
	var onDone func(RetryLoopAttemptDoneInfo)
	if onStart := t.OnAttempt; onStart != nil {
		onDone = onStart(RetryLoopAttemptStartInfo{
			Context: ctx,
			Attempt: attempt,
		})
	}
	if onDone == nil {
		onDone = func(RetryLoopAttemptDoneInfo) {}
	}

	return func(err error) {
		onDone(RetryLoopAttemptDoneInfo{Error: err})
	}
}

// RetryOnWait is a shortcut helper driving the OnWait hook.
func RetryOnWait(t Retry, attempt int, interval time.Duration) func(err error) {
	var onDone func(RetryLoopWaitDoneInfo)
	if onStart := t.OnWait; onStart != nil {
		onDone = onStart(RetryLoopWaitStartInfo{
			Attempt:  attempt,
			Interval: interval,
		})
	}
	if onDone == nil {
		onDone = func(RetryLoopWaitDoneInfo) {}
	}

	return func(err error) {
		onDone(RetryLoopWaitDoneInfo{Error: err})
	}
}
