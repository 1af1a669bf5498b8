package until

import (
	"context"

	"github.com/untillib/until/internal/xerrors"
)

// Callback observes a success, failure or timeout event. result is the last
// attempt's result (the zero value after a tolerated error) and attempts is
// the number of attempts completed so far. A non-nil error aborts the whole
// invocation: remaining callbacks of the event are skipped and the error is
// returned to the caller.
type Callback[T any] func(ctx context.Context, result T, attempts int) error

// Notify adapts a callback that needs neither the result nor the attempt
// count to the Callback shape.
func Notify[T any](fn func(ctx context.Context) error) Callback[T] {
	return func(ctx context.Context, _ T, _ int) error {
		return fn(ctx)
	}
}

// WithResult adapts a result-only callback to the Callback shape.
func WithResult[T any](fn func(ctx context.Context, result T) error) Callback[T] {
	return func(ctx context.Context, result T, _ int) error {
		return fn(ctx, result)
	}
}

// dispatch invokes chain strictly in registration order, running each
// callback to completion before starting the next. The first callback error
// stops the dispatch.
func dispatch[T any](ctx context.Context, chain []Callback[T], result T, attempts int) error {
	for _, cb := range chain {
		if err := cb(ctx, result, attempts); err != nil {
			return xerrors.WithStackTrace(err)
		}
	}

	return nil
}
