package errors

import (
	"errors"
	"fmt"
)

// Exit codes for checkenv
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitHostUnavailable = 2
	ExitOutputFailed    = 3
)

// CheckError is the base error type for checkenv
type CheckError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CheckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CheckError) ExitCode() int {
	return e.Code
}

// New creates a new CheckError
func New(code int, message string) *CheckError {
	return &CheckError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CheckError
func Wrap(code int, message string, cause error) *CheckError {
	return &CheckError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// HostUnavailable returns an error for a host lookup facility that could not
// be initialized. It is the only startup failure checkenv reports.
func HostUnavailable(facility string, cause error) *CheckError {
	return Wrap(ExitHostUnavailable, fmt.Sprintf("host %s unavailable", facility), cause)
}

// OutputFailed returns an error for a report that could not be written
func OutputFailed(cause error) *CheckError {
	return Wrap(ExitOutputFailed, "failed to write report", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *CheckError {
	return Wrap(ExitGeneralError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}
