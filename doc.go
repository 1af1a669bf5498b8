// Package until implements a fluent retry engine: it re-executes an
// operation under configurable stopping rules until a caller-supplied
// success condition holds, an error-tolerance policy is violated, or the
// rules are exhausted.
//
// A retry is described by an immutable Configuration built from Try and a
// chain of With.../On... calls, and driven to a terminal state by one of the
// terminal operations Until, UntilNoError or UntilNoErrorMatching:
//
//	v, err := until.Try(fetch).
//		WithMaxTryCount(5).
//		WithTryInterval(100 * time.Millisecond).
//		OnFailure(until.Notify[int](logAttempt)).
//		Until(ctx, func(_ context.Context, v int) (bool, error) {
//			return v > 0, nil
//		})
//
// Every mutator returns a new Configuration and never modifies its receiver,
// so a Configuration is safe to share across goroutines as a template: each
// invocation owns its attempt counter and clock readings.
package until
