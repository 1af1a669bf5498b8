package xerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithStackTrace(t *testing.T) {
	errBoom := errors.New("boom")
	err := WithStackTrace(errBoom)

	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "boom at `")
	require.Contains(t, err.Error(), "stacktrace_test.go:")
}

func TestWithStackTraceNil(t *testing.T) {
	require.NoError(t, WithStackTrace(nil))
}

func TestWithStackTraceSkipDepth(t *testing.T) {
	wrap := func(err error) error {
		return WithStackTrace(err, WithSkipDepth(1))
	}
	err := wrap(errors.New("boom"))
	require.Contains(t, err.Error(), "xerrors.TestWithStackTraceSkipDepth")
}

func TestIsAndAsProxies(t *testing.T) {
	var (
		errOne = errors.New("one")
		errTwo = errors.New("two")
	)
	wrapped := fmt.Errorf("outer: %w", errTwo)

	require.True(t, Is(wrapped, errOne, errTwo))
	require.False(t, Is(wrapped, errOne))
	require.False(t, Is(nil, errOne))

	type myError struct{ error }
	require.False(t, As(nil, &myError{}))
}
