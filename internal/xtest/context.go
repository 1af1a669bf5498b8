package xtest

import (
	"context"
	"testing"
	"time"
)

const commonWaitTimeout = 10 * time.Second

// Context returns a context cancelled on test finish.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return ctx
}

// ContextWithTimeout returns a test context bounded by the common wait
// timeout, protecting stuck tests from hanging the whole run.
func ContextWithTimeout(t testing.TB) context.Context {
	ctx, cancel := context.WithTimeout(Context(t), commonWaitTimeout)
	t.Cleanup(cancel)

	return ctx
}
