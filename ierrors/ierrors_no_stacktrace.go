//go:build !stacktrace

//nolint:goerr113
package ierrors

import (
	"fmt"
)

// WithMessagef appends a message format specifier and arguments to the error
// and wraps it into a new error.
// WithMessagef adds a stacktrace to the error if there was no stacktrace
// in the error tree yet and if the build flag "stacktrace" is set.
func WithMessagef(err error, format string, args ...any) error {
	// check if the passed args also contain an error
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			return fmt.Errorf("%w: %w", err, fmt.Errorf(format, args...))
		}
	}

	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}
