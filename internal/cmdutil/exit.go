package cmdutil

import (
	"context"
	"errors"

	"ltrgraph/internal/writers"
)

// Process exit codes shared by every command.
const (
	ExitOK        = 0
	ExitUsage     = 1
	ExitInput     = 2
	ExitOutput    = 3
	ExitCancelled = 130
)

// UsageError marks a bad invocation: wrong arguments, a bad flag value or
// a missing directory.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a UsageError; nil stays nil.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// OutputError marks a failure writing results.
type OutputError struct{ Err error }

func (e *OutputError) Error() string { return e.Err.Error() }
func (e *OutputError) Unwrap() error { return e.Err }

// Output wraps err as an OutputError; nil stays nil.
func Output(err error) error {
	if err == nil {
		return nil
	}
	return &OutputError{Err: err}
}

// ExitCode maps an error returned by a command to its exit status.
// Anything not marked otherwise is an input error. A reader closing
// our stdout early is not a failure.
func ExitCode(err error) int {
	var ue *UsageError
	var oe *OutputError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCancelled
	case errors.As(err, &ue):
		return ExitUsage
	case errors.As(err, &oe):
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		return ExitOutput
	default:
		return ExitInput
	}
}
