package xerrors

import (
	"errors"
)

// As is a proxy to errors.As which accepts multiple targets.
// This need to single import errors
func As(err error, targets ...interface{}) (ok bool) {
	if err == nil {
		return false
	}
	for _, t := range targets {
		if errors.As(err, t) {
			ok = true
		}
	}

	return ok
}

// Is is a improved proxy to errors.Is which accepts multiple targets.
// This need to single import errors
func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
