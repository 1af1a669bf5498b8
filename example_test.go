package until_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/untillib/until"
)

func ExampleConfiguration_Until() {
	calls := 0
	op := func(context.Context) (int, error) {
		calls++

		return calls, nil
	}

	v, err := until.Try(op).
		WithMaxTryCount(5).
		WithTryInterval(0).
		OnSuccess(func(_ context.Context, result int, attempts int) error {
			fmt.Printf("succeeded with %d after %d attempts\n", result, attempts)

			return nil
		}).
		Until(context.Background(), func(_ context.Context, v int) (bool, error) {
			return v == 3, nil
		})
	fmt.Println(v, err)
	// Output:
	// succeeded with 3 after 3 attempts
	// 3 <nil>
}

func ExampleConfiguration_UntilNoErrorMatching() {
	errBusy := errors.New("busy")

	calls := 0
	op := func(context.Context) (string, error) {
		calls++
		if calls < 2 {
			return "", fmt.Errorf("resource: %w", errBusy)
		}

		return "ready", nil
	}

	v, err := until.Try(op).
		WithTryInterval(0).
		UntilNoErrorMatching(context.Background(), until.ErrorIs(errBusy))
	fmt.Println(v, err)
	// Output:
	// ready <nil>
}

func ExampleConfiguration_UntilNoError_exhausted() {
	op := func(context.Context) (int, error) {
		return 0, errors.New("unreachable")
	}

	_, err := until.Try(op).
		WithMaxTryCount(2).
		WithTryInterval(0).
		UntilNoError(context.Background())
	fmt.Println(until.IsExhausted(err), until.Attempts(err))
	// Output:
	// true 2
}
