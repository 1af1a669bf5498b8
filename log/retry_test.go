package log_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/untillib/until"
	"github.com/untillib/until/log"
)

func TestRetryLogsLoopEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	errFlaky := errors.New("flaky")

	var calls int
	v, err := until.Try(func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errFlaky
		}

		return calls, nil
	}).
		WithTryInterval(0).
		WithTrace(log.Retry(zap.New(core))).
		UntilNoError(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, v)

	messages := make([]string, 0, logs.Len())
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	require.Equal(t, []string{
		"retry started",
		"attempt started",
		"attempt failed",
		"wait started",
		"wait done",
		"attempt started",
		"attempt failed",
		"wait started",
		"wait done",
		"attempt started",
		"attempt done",
		"retry done",
	}, messages)
}

func TestRetryLogsTerminalFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	errFlaky := errors.New("flaky")

	_, err := until.Try(func(context.Context) (int, error) {
		return 0, errFlaky
	}).
		WithMaxTryCount(2).
		WithTryInterval(0).
		WithTrace(log.Retry(zap.New(core))).
		UntilNoError(context.Background())
	require.ErrorIs(t, err, until.ErrExhausted)

	entries := logs.FilterMessage("retry failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.EqualValues(t, 2, fields["attempts"])
	require.Contains(t, fields["error"], "try count exceeded")
}
