package until

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/untillib/until/internal/xtest"
)

func TestMutatorsDoNotChangeReceiver(t *testing.T) {
	var calls int
	base := Try(func(context.Context) (int, error) {
		calls++

		return 0, errUnavailable
	}).
		WithMaxTryCount(2).
		WithTryInterval(0)

	derived := base.WithMaxTryCount(5)
	require.Equal(t, 5, derived.maxTries)
	require.Equal(t, 2, base.maxTries)

	// the receiver keeps invoking with its original limit
	_, err := base.UntilNoError(xtest.Context(t))
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, 2, calls)

	calls = 0
	_, err = derived.UntilNoError(xtest.Context(t))
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, 5, calls)
}

func TestCallbackChainsDoNotAlias(t *testing.T) {
	op := func(context.Context) (int, error) {
		return 0, errUnavailable
	}

	record := func(order *[]string, id string) Callback[int] {
		return func(context.Context, int, int) error {
			*order = append(*order, id)

			return nil
		}
	}

	var trail []string
	base := Try(op).
		WithMaxTryCount(2).
		WithTryInterval(0).
		OnFailure(record(&trail, "base"))

	// two siblings derived from the same ancestor must not share chain storage
	leftCfg := base.OnFailure(record(&trail, "left"))
	rightCfg := base.OnFailure(record(&trail, "right"))

	_, err := leftCfg.UntilNoError(xtest.Context(t))
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, []string{"base", "left"}, trail)

	trail = nil
	_, err = rightCfg.UntilNoError(xtest.Context(t))
	require.ErrorIs(t, err, ErrExhausted)
	require.Equal(t, []string{"base", "right"}, trail)
}
