// Package errors provides structured error types for mavenpub.
//
// Errors carry a machine-readable [Code] so callers can tell fatal
// configuration problems apart from everything else:
//   - MISSING_FIELD, INVALID_*: configuration errors, fatal and surfaced immediately
//   - ALREADY_EXISTS, FINALIZED: misuse of the declaration/finalize lifecycle
//   - SIGNING: key material that was supplied but could not be used
//   - INTERNAL: unexpected failures (I/O while writing the bundle, etc.)
//
// An absent optional capability (no signing key, no repository credentials)
// is never represented as an error.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingField, "project url is required")
//	if errors.Is(err, errors.ErrCodeMissingField) {
//	    // abort assembly
//	}
//
//	err := errors.Wrap(errors.ErrCodeSigning, origErr, "read signing key")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors
	ErrCodeMissingField  Code = "MISSING_FIELD"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidURL    Code = "INVALID_URL"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Lifecycle errors
	ErrCodeAlreadyExists Code = "ALREADY_EXISTS"
	ErrCodeFinalized     Code = "FINALIZED"
	ErrCodeNotFound      Code = "NOT_FOUND"

	// Capability errors
	ErrCodeSigning Code = "SIGNING"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message chain without code prefixes for *Error
// values, and err.Error() for everything else.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + UserMessage(e.Cause)
	}
	return e.Message
}

// Fatal reports whether err is a configuration error that must stop assembly.
func Fatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingField, ErrCodeInvalidInput, ErrCodeInvalidURL, ErrCodeInvalidConfig:
		return true
	}
	return false
}
