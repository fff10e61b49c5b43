// ierrors package provides a thin layer over the "errors" package from the standard library of Go.
// Errors created through it carry a stacktrace when the "stacktrace" build tag is added.
//
//nolint:goerr113
package ierrors

import (
	"errors"
)

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
// New never attaches a stacktrace, which makes it suitable for sentinel errors.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target, and if one is found, sets
// target to that error value and returns true. Otherwise, it returns false.
func As(err error, target any) bool {
	return errors.As(err, target)
}
