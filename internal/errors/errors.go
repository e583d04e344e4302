// Package errors provides structured error types and handling for cfurl.
//nolint:revive // var-naming: Package name is intentional for error type organization
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeUnknown is for unknown errors
	ErrorTypeUnknown ErrorType = "unknown"

	// ErrorTypeUnknownCommand is for command names not in the dashboard table
	ErrorTypeUnknownCommand ErrorType = "unknown_command"

	// ErrorTypeMissingArgument is for required arguments that were omitted
	ErrorTypeMissingArgument ErrorType = "missing_argument"

	// ErrorTypeUnexpectedArgument is for arguments supplied to commands that take none
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"

	// ErrorTypeInvalidFlag is for flag values outside the legal set
	ErrorTypeInvalidFlag ErrorType = "invalid_flag"

	// ErrorTypeAmbiguousArguments is for argument combinations that cannot be resolved
	ErrorTypeAmbiguousArguments ErrorType = "ambiguous_arguments"

	// ErrorTypeLauncher is for browser-open failures
	ErrorTypeLauncher ErrorType = "launcher"

	// ErrorTypeConfiguration is for configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeInternal is for internal errors
	ErrorTypeInternal ErrorType = "internal"
)

// Exit codes per error type. Zero is reserved for success, one for
// anything without a more specific code.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitUnknownCommand     = 2
	ExitMissingArgument    = 3
	ExitInvalidFlag        = 4
	ExitUnexpectedArgument = 5
	ExitAmbiguousArguments = 6
)

// CfurlError represents a structured error with additional context
type CfurlError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *CfurlError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *CfurlError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *CfurlError) Is(target error) bool {
	if target == nil {
		return false
	}

	var targetErr *CfurlError
	if errors.As(target, &targetErr) {
		return e.Type == targetErr.Type
	}

	return errors.Is(e.Cause, target)
}

// WithContext adds context to the error
func (e *CfurlError) WithContext(key string, value interface{}) *CfurlError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new CfurlError
func New(errType ErrorType, message string) *CfurlError {
	return &CfurlError{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new CfurlError with formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *CfurlError {
	return &CfurlError{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *CfurlError {
	if err == nil {
		return nil
	}

	return &CfurlError{
		Type:    errType,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with formatted message
func Wrapf(err error, errType ErrorType, format string, args ...interface{}) *CfurlError {
	if err == nil {
		return nil
	}

	return Wrap(err, errType, fmt.Sprintf(format, args...))
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var cfErr *CfurlError
	if errors.As(err, &cfErr) {
		return cfErr.Type == errType
	}
	return false
}

// GetType returns the error type
func GetType(err error) ErrorType {
	var cfErr *CfurlError
	if errors.As(err, &cfErr) {
		return cfErr.Type
	}
	return ErrorTypeUnknown
}

// ExitCode maps an error to the process exit code the CLI should use.
// A nil error maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	switch GetType(err) {
	case ErrorTypeUnknownCommand:
		return ExitUnknownCommand
	case ErrorTypeMissingArgument:
		return ExitMissingArgument
	case ErrorTypeInvalidFlag:
		return ExitInvalidFlag
	case ErrorTypeUnexpectedArgument:
		return ExitUnexpectedArgument
	case ErrorTypeAmbiguousArguments:
		return ExitAmbiguousArguments
	default:
		return ExitFailure
	}
}

// Domain-specific error constructors for cfurl

// UnknownCommand creates an error for command names not in the table
func UnknownCommand(name string) *CfurlError {
	err := Newf(ErrorTypeUnknownCommand, "unknown command %q; run 'cfurl --help' for the command list", name)
	return err.WithContext("command", name)
}

// MissingArgument creates an error for an omitted required argument
func MissingArgument(command, argument string) *CfurlError {
	err := Newf(ErrorTypeMissingArgument, "command %q requires a %s argument", command, argument)
	return err.WithContext("command", command).WithContext("argument", argument)
}

// UnexpectedArgument creates an error for arguments given to a command that takes none
func UnexpectedArgument(command, argument string) *CfurlError {
	err := Newf(ErrorTypeUnexpectedArgument, "unexpected argument %q for command %q", argument, command)
	return err.WithContext("command", command).WithContext("argument", argument)
}

// InvalidFlagValue creates an error for a flag value outside its legal
// set. An empty legal set means the command does not accept the flag.
func InvalidFlagValue(command, flag, value string, legal []string) *CfurlError {
	var err *CfurlError
	if len(legal) == 0 {
		err = Newf(ErrorTypeInvalidFlag, "command %q does not accept a --%s flag", command, flag)
	} else {
		err = Newf(ErrorTypeInvalidFlag, "invalid --%s value %q for %q (valid: %s)", flag, value, command, strings.Join(legal, ", "))
	}
	return err.WithContext("command", command).WithContext("flag", flag).WithContext("value", value)
}

// AmbiguousArguments creates an error for argument combinations that cannot be resolved
func AmbiguousArguments(command, reason string) *CfurlError {
	err := Newf(ErrorTypeAmbiguousArguments, "ambiguous arguments for %q: %s", command, reason)
	return err.WithContext("command", command)
}

// Launcher wraps a browser-open failure
func Launcher(err error) *CfurlError {
	return Wrap(err, ErrorTypeLauncher, "failed to open browser")
}

// ConfigLoad wraps a configuration loading error
func ConfigLoad(path string, err error) *CfurlError {
	wrapped := Wrapf(err, ErrorTypeConfiguration, "failed to load configuration from %s", path)
	return wrapped.WithContext("config_path", path)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...interface{}) *CfurlError {
	return Newf(ErrorTypeInternal, format, args...)
}
