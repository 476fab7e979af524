// Package errors provides structured error types for pathfinder.
//
// Errors carry a machine-readable [Code] so the HTTP layer can pick a status
// code and clients can branch on the failure without parsing messages.
//
// # Error Codes
//
//   - INVALID_*, MALFORMED_*: the request or a file could not be accepted
//   - UNKNOWN_NODE, UNREACHABLE, NEGATIVE_CYCLE: a well-formed query with no answer
//   - GRAPH_TOO_LARGE: the graph exceeds configured limits
//   - INTERNAL_ERROR: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedGraph, "missing weight for edge %s", key)
//	if errors.Is(err, errors.ErrCodeMalformedGraph) {
//	    // reject request
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidInput, jsonErr, "decode request")
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

// Error codes.
const (
	// Input errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeMalformedGraph Code = "MALFORMED_GRAPH"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeGraphTooLarge  Code = "GRAPH_TOO_LARGE"

	// Query outcomes without a path
	ErrCodeUnknownNode   Code = "UNKNOWN_NODE"
	ErrCodeUnreachable   Code = "UNREACHABLE"
	ErrCodeNegativeCycle Code = "NEGATIVE_CYCLE"

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

// UserMessage returns the message without the code prefix for *Error
// values, and the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps an error to the HTTP status the API responds with.
// Errors without a code are treated as internal.
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeMalformedGraph, ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case ErrCodeGraphTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeUnknownNode:
		return http.StatusNotFound
	case ErrCodeUnreachable, ErrCodeNegativeCycle:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
