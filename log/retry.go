// Package log adapts the trace hooks to structured logging.
package log

import (
	"time"

	"go.uber.org/zap"

	"github.com/untillib/until/trace"
)

// Retry returns a trace.Retry logging loop, attempt and wait events to l.
// Attach it with Configuration.WithTrace.
func Retry(l *zap.Logger) (t trace.Retry) {
	l = l.Named("until")

	t.OnRetry = func(trace.RetryLoopStartInfo) func(trace.RetryLoopDoneInfo) {
		l.Debug("retry started")
		start := time.Now()

		return func(info trace.RetryLoopDoneInfo) {
			if info.Error == nil {
				l.Debug("retry done",
					zap.Duration("latency", time.Since(start)),
					zap.Int("attempts", info.Attempts),
				)
			} else {
				l.Warn("retry failed",
					zap.Error(info.Error),
					zap.Duration("latency", time.Since(start)),
					zap.Int("attempts", info.Attempts),
				)
			}
		}
	}

	t.OnAttempt = func(info trace.RetryLoopAttemptStartInfo) func(trace.RetryLoopAttemptDoneInfo) {
		attempt := info.Attempt
		l.Debug("attempt started",
			zap.Int("attempt", attempt),
		)

		return func(info trace.RetryLoopAttemptDoneInfo) {
			if info.Error == nil {
				l.Debug("attempt done",
					zap.Int("attempt", attempt),
				)
			} else {
				l.Debug("attempt failed",
					zap.Error(info.Error),
					zap.Int("attempt", attempt),
				)
			}
		}
	}

	t.OnWait = func(info trace.RetryLoopWaitStartInfo) func(trace.RetryLoopWaitDoneInfo) {
		attempt := info.Attempt
		interval := info.Interval
		l.Debug("wait started",
			zap.Int("attempt", attempt),
			zap.Duration("interval", interval),
		)

		return func(info trace.RetryLoopWaitDoneInfo) {
			if info.Error == nil {
				l.Debug("wait done",
					zap.Int("attempt", attempt),
				)
			} else {
				l.Warn("wait interrupted",
					zap.Error(info.Error),
					zap.Int("attempt", attempt),
					zap.Duration("interval", interval),
				)
			}
		}
	}

	return t
}
