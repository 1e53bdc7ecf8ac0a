// Package errors provides structured error types for drawrows.
//
// This package defines error codes and types that enable:
//   - Fail-fast reporting of bad input records with their line numbers
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Record-level failures carry MALFORMED_RECORD or INVALID_RANGE and are
// wrapped in a [RecordError] that names the offending line. File system
// failures carry RESOURCE_UNAVAILABLE and wrap the underlying cause.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRange, "begin %d > end %d", b, e)
//	if errors.Is(err, errors.ErrCodeInvalidRange) {
//	    // Handle bad range
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeResourceUnavailable, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input record errors
	ErrCodeMalformedRecord Code = "MALFORMED_RECORD"
	ErrCodeInvalidRange    Code = "INVALID_RANGE"

	// File system errors
	ErrCodeResourceUnavailable Code = "RESOURCE_UNAVAILABLE"

	// Option and configuration errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, followed
// by the cause when there is one. For [RecordError], the line number is
// kept. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var re *RecordError
	if errors.As(err, &re) {
		return fmt.Sprintf("line %d: %s", re.Line, re.Err.userMessage())
	}
	var e *Error
	if errors.As(err, &e) {
		return e.userMessage()
	}
	return err.Error()
}

func (e *Error) userMessage() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}

// RecordError identifies the input line that produced a coded error.
type RecordError struct {
	Line int    // 1-based line number in the input
	Text string // Raw line content, trimmed
	Err  *Error
}

// Record wraps err with the line it was raised for.
func Record(line int, text string, err *Error) *RecordError {
	return &RecordError{Line: line, Text: text, Err: err}
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the coded error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// LineOf returns the line number carried by err, or 0 if err does not
// wrap a [RecordError].
func LineOf(err error) int {
	var re *RecordError
	if errors.As(err, &re) {
		return re.Line
	}
	return 0
}
