package pcfile

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned (wrapped) when a named module cannot be
// located on the configured search paths.
var ErrNotFound = errors.New("package not found")

// ErrVerification is returned (wrapped) when a loaded package fails its
// post-parse verification: a missing required field, an unsatisfied
// dependency version, or a conflict.
var ErrVerification = errors.New("package verification failed")

// ErrParse is returned (wrapped) when a ".pc" file's contents cannot be
// parsed: malformed quoting, undefined variables, malformed module lists.
var ErrParse = errors.New("package parse error")

// Error wraps a failure with the operation and module it occurred
// against, the way the reference CLI reports failures to its caller.
type Error struct {
	Op     string
	Module string
	Err    error
}

func (e *Error) Error() string {
	if e.Module != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Module, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

func verificationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrVerification, fmt.Sprintf(format, args...))
}

func notFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
