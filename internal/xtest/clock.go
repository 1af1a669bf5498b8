package xtest

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// DriveClock advances clock by step every time somebody blocks on it, which
// makes fake-clock driven loops run without real sleeps. The returned stop
// func must be called (usually deferred) before the test reads the clock for
// final assertions.
func DriveClock(t testing.TB, clock *clockwork.FakeClock, step time.Duration) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if err := clock.BlockUntilContext(ctx, 1); err != nil {
				return
			}
			clock.Advance(step)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
