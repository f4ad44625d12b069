// errors.go defines the failure taxonomy for dispatch outcomes.

package logchain

import (
	"errors"
	"fmt"
)

var (
	// Fatal indicates a fatal-error message was rendered. Rendering a
	// KindFatalError message always produces this failure.
	Fatal error = &FatalFailure{}

	// Unknown indicates an unknown message was rendered. Rendering a
	// KindUnknownMessage message always produces this failure.
	Unknown error = &UnknownFailure{}

	// Unhandled indicates a message fell off the end of the chain
	// without any handler's filter matching its kind. A filter mismatch
	// on an individual handler is not an error; only exhaustion is.
	Unhandled error = &UnhandledFailure{}
)

// FatalFailure is returned when a fatal-error message is rendered.
type FatalFailure struct{}

func (e *FatalFailure) Error() string {
	return "FatalError!"
}

// UnknownFailure is returned when an unknown message is rendered.
type UnknownFailure struct{}

func (e *UnknownFailure) Error() string {
	return "UnknownMessage!"
}

// UnhandledFailure is returned when no handler in the chain matched the
// message's kind. Kind records the kind that went unhandled.
type UnhandledFailure struct {
	Kind Kind
}

func (e *UnhandledFailure) Error() string {
	if e.Kind == "" {
		return "Error: Log message should be handled!"
	}
	return fmt.Sprintf("Error: Log message should be handled! (kind %q)", e.Kind)
}

// IsFatal reports whether err is (or wraps) a FatalFailure.
func IsFatal(err error) bool {
	var f *FatalFailure
	return errors.As(err, &f)
}

// IsUnknown reports whether err is (or wraps) an UnknownFailure.
func IsUnknown(err error) bool {
	var f *UnknownFailure
	return errors.As(err, &f)
}

// IsUnhandled reports whether err is (or wraps) an UnhandledFailure.
func IsUnhandled(err error) bool {
	var f *UnhandledFailure
	return errors.As(err, &f)
}
