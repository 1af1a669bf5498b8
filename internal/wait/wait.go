package wait

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/untillib/until/internal/xerrors"
)

// Wait pauses the calling goroutine for d on the given clock or until ctx
// expires. It returns non-nil error if and only if the ctx expiration branch
// wins.
func Wait(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return xerrors.WithStackTrace(err)
		}

		return nil
	}
	timer := clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.Chan():
		return nil
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	}
}
