package until

import (
	"context"
	"time"

	"github.com/untillib/until/internal/wait"
	"github.com/untillib/until/internal/xerrors"
	"github.com/untillib/until/trace"
)

// executionState is the per-invocation mutable frame. It is created by
// execute, owned by exactly one invocation and never escapes the loop except
// through callback parameters.
type executionState[T any] struct {
	attempts   int
	startedAt  time.Time
	lastResult T
	lastErr    error
}

// Until drives the retry loop until cond holds for an attempt's result and
// returns that result. Operation errors are not tolerated here: any error
// from op (or from cond) aborts the invocation immediately.
func (c Configuration[T]) Until(ctx context.Context, cond Condition[T]) (T, error) {
	return c.execute(ctx, cond, nil)
}

// UntilNoError drives the retry loop until op returns without error. Every
// operation error except context expiration is tolerated and retried.
func (c Configuration[T]) UntilNoError(ctx context.Context) (T, error) {
	return c.execute(ctx, nil, func(error) bool { return true })
}

// UntilNoErrorMatching is UntilNoError restricted to errors accepted by
// match (see ErrorIs, ErrorAs). Any other operation error is fatal and
// propagates on the spot.
func (c Configuration[T]) UntilNoErrorMatching(ctx context.Context, match Matcher) (T, error) {
	return c.execute(ctx, nil, match)
}

// execute is the single loop behind all terminal operations:
// attempt, evaluate, check stopping rules, dispatch callbacks, pause.
// The first attempt always runs regardless of configured limits.
func (c Configuration[T]) execute(ctx context.Context, cond Condition[T], tolerate Matcher) (_ T, finalErr error) {
	var (
		zero  T
		state = executionState[T]{startedAt: c.clock.Now()}
	)
	onDone := trace.RetryOnRetry(c.trace, ctx)
	defer func() {
		onDone(c.clock.Since(state.startedAt), state.attempts, finalErr)
	}()

	for {
		if err := ctx.Err(); err != nil {
			return zero, xerrors.WithStackTrace(err)
		}

		onAttemptDone := trace.RetryOnAttempt(c.trace, ctx, state.attempts+1)
		result, err := c.op(ctx)
		onAttemptDone(err)
		state.attempts++

		if err != nil {
			if fatal(err, tolerate) {
				return zero, xerrors.WithStackTrace(err)
			}
			state.lastErr = err
			state.lastResult = zero
		} else {
			ok := true
			if cond != nil {
				if ok, err = cond(ctx, result); err != nil {
					return zero, xerrors.WithStackTrace(err)
				}
			}
			if ok {
				if cbErr := dispatch(ctx, c.onSuccess, result, state.attempts); cbErr != nil {
					return zero, cbErr
				}

				return result, nil
			}
			state.lastErr = nil
			state.lastResult = result
		}

		if reason, stop := c.stopReason(&state); stop {
			if cbErr := dispatch(ctx, c.onTimeout, state.lastResult, state.attempts); cbErr != nil {
				return zero, cbErr
			}

			return zero, xerrors.WithStackTrace(&ExhaustedError{
				Attempts: state.attempts,
				Elapsed:  c.clock.Since(state.startedAt),
				Reason:   reason,
				cause:    state.lastErr,
			})
		}

		if cbErr := dispatch(ctx, c.onFailure, state.lastResult, state.attempts); cbErr != nil {
			return zero, cbErr
		}

		onWaitDone := trace.RetryOnWait(c.trace, state.attempts, c.interval)
		waitErr := wait.Wait(ctx, c.clock, c.interval)
		onWaitDone(waitErr)
		if waitErr != nil {
			return zero, waitErr
		}
	}
}

// fatal decides whether an operation error aborts the invocation. Context
// expiration is fatal regardless of the tolerance policy; with no policy
// every error is fatal.
func fatal(err error, tolerate Matcher) bool {
	switch {
	case xerrors.Is(err, context.Canceled, context.DeadlineExceeded):
		return true
	case tolerate == nil:
		return true
	default:
		return !tolerate(err)
	}
}

// stopReason checks the stopping rules in order: time limit first, then try
// count.
func (c Configuration[T]) stopReason(s *executionState[T]) (StopReason, bool) {
	if c.timeLimit > 0 && c.clock.Since(s.startedAt) >= c.timeLimit {
		return StopTimeLimit, true
	}
	if c.maxTries > 0 && s.attempts >= c.maxTries {
		return StopTryCount, true
	}

	return "", false
}
