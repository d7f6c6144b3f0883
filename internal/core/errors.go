package core

import (
	"errors"
	"fmt"

	"github.com/WingSMC/CPP20-Modules/pkg/foo"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitRuntime  = 1
	ExitUsage    = 2
	ExitOverflow = 3
)

// CLIError carries a user-visible message and exit code.
type CLIError struct {
	Code int
	Msg  string
	Err  error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapError creates a CLIError with an underlying error.
func WrapError(code int, msg string, err error) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

// UsageError reports invalid input.
func UsageError(format string, args ...any) *CLIError {
	return &CLIError{Code: ExitUsage, Msg: fmt.Sprintf(format, args...)}
}

// ErrorFor maps library errors to CLI errors.
func ErrorFor(err error) error {
	if err == nil {
		return nil
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	switch {
	case errors.Is(err, foo.ErrOverflow):
		return WrapError(ExitOverflow, "overflow", err)
	case errors.Is(err, foo.ErrUnknownPolicy):
		return WrapError(ExitUsage, "invalid policy", err)
	default:
		return WrapError(ExitRuntime, "failed", err)
	}
}

// ExitCode returns the CLI exit code from error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitRuntime
}
