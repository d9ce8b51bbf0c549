// Package errors provides structured error types for roundtrip.
//
// A round trip can fail in two ways, and callers need to tell them apart:
//   - file-access failures: the file is missing or cannot be opened, read
//     or written
//   - malformed-content failures: the file exists but its content does not
//     parse as the expected record
//
// Both are reported to the user and never abort the run. Option validation
// failures use their own codes and are the only errors surfaced to the CLI.
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeMalformed, cause, "parse %s", path)
//	if errors.IsMalformed(err) {
//	    // print and continue
//	}
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// File access errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeFileAccess   Code = "FILE_ACCESS"

	// Content errors
	ErrCodeMalformed Code = "MALFORMED_CONTENT"

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

// FileError classifies a filesystem error on path. A missing file becomes
// ErrCodeFileNotFound; anything else becomes ErrCodeFileAccess. A
// *fs.PathError cause is unwrapped since the message already names op and
// path.
func FileError(op, path string, cause error) *Error {
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	if errors.Is(cause, fs.ErrNotExist) {
		return Wrap(ErrCodeFileNotFound, cause, "%s %s", op, path)
	}
	return Wrap(ErrCodeFileAccess, cause, "%s %s", op, path)
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

// IsFileAccess reports whether err is a file-access failure, including a
// missing file.
func IsFileAccess(err error) bool {
	switch GetCode(err) {
	case ErrCodeFileNotFound, ErrCodeFileAccess:
		return true
	}
	return false
}

// IsMalformed reports whether err is a malformed-content failure.
func IsMalformed(err error) bool {
	return Is(err, ErrCodeMalformed)
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
// For *Error types, returns the message followed by the cause, without the
// code prefix. For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + e.Cause.Error()
		}
		return e.Message
	}
	return err.Error()
}
