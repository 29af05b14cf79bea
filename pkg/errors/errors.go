package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	ErrUnknown ErrorCode = "UNKNOWN"

	// Configuration errors
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrSettings       ErrorCode = "SETTINGS"

	// Environment errors
	ErrEnvMissing ErrorCode = "ENV_MISSING"

	// Filesystem errors
	ErrRootResolve   ErrorCode = "ROOT_RESOLVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
)

// Kind groups error codes into the three failure families the installer
// distinguishes.
type Kind int

const (
	KindUnknown Kind = iota
	KindConfiguration
	KindEnvironment
	KindFilesystem
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindEnvironment:
		return "EnvironmentError"
	case KindFilesystem:
		return "FilesystemError"
	default:
		return "UnknownError"
	}
}

var kinds = map[ErrorCode]Kind{
	ErrConfigNotFound: KindConfiguration,
	ErrConfigLoad:     KindConfiguration,
	ErrConfigParse:    KindConfiguration,
	ErrSettings:       KindConfiguration,
	ErrEnvMissing:     KindEnvironment,
	ErrRootResolve:    KindFilesystem,
	ErrSymlinkCreate:  KindFilesystem,
}

// Category returns the Kind an error code belongs to.
func Category(code ErrorCode) Kind {
	if k, ok := kinds[code]; ok {
		return k
	}
	return KindUnknown
}

// DotlinkError represents a structured error with code and details
type DotlinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotlinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotlinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DotlinkError carrying the same code.
func (e *DotlinkError) Is(target error) bool {
	var targetErr *DotlinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind returns the failure family of the error.
func (e *DotlinkError) Kind() Kind {
	return Category(e.Code)
}

// New creates a new DotlinkError with the given code and message
func New(code ErrorCode, message string) *DotlinkError {
	return &DotlinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotlinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotlinkError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DotlinkError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *DotlinkError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotlinkError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DotlinkError) WithDetail(key string, value interface{}) *DotlinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotlinkErr *DotlinkError
	if errors.As(err, &dotlinkErr) {
		return dotlinkErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotlinkError
func GetErrorCode(err error) ErrorCode {
	var dotlinkErr *DotlinkError
	if errors.As(err, &dotlinkErr) {
		return dotlinkErr.Code
	}
	return ErrUnknown
}

// GetKind returns the failure family of err, or KindUnknown.
func GetKind(err error) Kind {
	return Category(GetErrorCode(err))
}

// GetErrorDetails returns the details from an error, or nil if not a DotlinkError
func GetErrorDetails(err error) map[string]interface{} {
	var dotlinkErr *DotlinkError
	if errors.As(err, &dotlinkErr) {
		return dotlinkErr.Details
	}
	return nil
}
