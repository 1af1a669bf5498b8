package until

import (
	"errors"
	"fmt"
	"time"

	"github.com/untillib/until/internal/xerrors"
)

// StopReason names the stopping rule that ended an invocation.
type StopReason string

const (
	StopTimeLimit StopReason = "time limit exceeded"
	StopTryCount  StopReason = "try count exceeded"
)

// ErrExhausted is the target for errors.Is checks against errors returned
// when the stopping rules end an invocation without success.
var ErrExhausted = errors.New("retries exhausted")

// ExhaustedError is returned by the terminal operations when a stopping rule
// fired before the end condition held. Its cause, if any, is the last
// tolerated operation error; an invocation stopped on an unsatisfied end
// condition carries no cause.
type ExhaustedError struct {
	Attempts int
	Elapsed  time.Duration
	Reason   StopReason

	cause error
}

func (e *ExhaustedError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("until: %s after %d attempts in %s", e.Reason, e.Attempts, e.Elapsed)
	}

	return fmt.Sprintf("until: %s after %d attempts in %s (last error: %s)", e.Reason, e.Attempts, e.Elapsed, e.cause)
}

func (e *ExhaustedError) Unwrap() error {
	return e.cause
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// IsExhausted reports whether err means the stopping rules ran out.
func IsExhausted(err error) bool {
	return xerrors.Is(err, ErrExhausted)
}

// Attempts extracts the attempt count from an exhausted error, 0 otherwise.
func Attempts(err error) int {
	var e *ExhaustedError
	if xerrors.As(err, &e) {
		return e.Attempts
	}

	return 0
}

// ErrorIs returns a Matcher tolerating errors for which
// errors.Is(err, target) holds.
func ErrorIs(target error) Matcher {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// ErrorAs returns a Matcher tolerating errors assignable to E via errors.As,
// covering E itself and every error wrapping one.
func ErrorAs[E error]() Matcher {
	return func(err error) bool {
		var e E

		return errors.As(err, &e)
	}
}
