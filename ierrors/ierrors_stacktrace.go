//go:build stacktrace

//nolint:goerr113
package ierrors

import (
	"errors"
	"fmt"
	"runtime"
)

func stacktrace() string {
	var stack string

	var programCounter [32]uintptr
	entries := runtime.Callers(4, programCounter[:])
	frames := runtime.CallersFrames(programCounter[:entries])
	for {
		frame, more := frames.Next()
		if (frame == runtime.Frame{}) {
			break
		}

		stack = fmt.Sprintf("%s%s\n\t%s:%d\n", stack, frame.Function, frame.File, frame.Line)
		if !more {
			// remove last newline
			stack = stack[:len(stack)-1]
			break
		}
	}

	return stack
}

// errorWithStacktrace is an error that carries the stacktrace of the place it was created at.
type errorWithStacktrace struct {
	err        error
	stacktrace string
}

func (e *errorWithStacktrace) Error() string {
	return fmt.Sprintf("%s\n%s", e.err.Error(), e.stacktrace)
}

func (e *errorWithStacktrace) Unwrap() error {
	return e.err
}

// ensureStacktraceUniqueness returns err unchanged if its tree already holds a stacktrace
// and attaches a new one otherwise.
func ensureStacktraceUniqueness(err error) error {
	if err == nil {
		return nil
	}

	var errWithStacktrace *errorWithStacktrace
	if errors.As(err, &errWithStacktrace) {
		return err
	}

	return &errorWithStacktrace{
		err:        err,
		stacktrace: stacktrace(),
	}
}

// WithMessagef appends a message format specifier and arguments to the error
// and wraps it into a new error.
// WithMessagef adds a stacktrace to the error if there was no stacktrace
// in the error tree yet and if the build flag "stacktrace" is set.
func WithMessagef(err error, format string, args ...any) error {
	// check if the passed args also contain an error
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			// wrap the other errors as well
			return ensureStacktraceUniqueness(fmt.Errorf("%w: %w", err, fmt.Errorf(format, args...)))
		}
	}

	return ensureStacktraceUniqueness(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
