// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a missing or empty required input
	TypeInput Type = "INPUT_ERROR"

	// TypeUnknownUnit indicates a unit abbreviation that resolved to nothing
	TypeUnknownUnit Type = "UNKNOWN_UNIT"

	// TypeMalformedNumber indicates a numeric literal that failed to parse
	// under the requested culture's number format
	TypeMalformedNumber Type = "MALFORMED_NUMBER"

	// TypeInvalidFragment indicates stray text that forms neither a number
	// nor a unit token
	TypeInvalidFragment Type = "INVALID_FRAGMENT"

	// TypeNoMatch indicates non-empty input from which no quantity/unit
	// pair could be extracted
	TypeNoMatch Type = "NO_MATCH"

	// TypeUnsupportedUnit indicates a unit value outside the closed enum
	// reaching a conversion table; a contract violation, not expected at runtime
	TypeUnsupportedUnit Type = "UNSUPPORTED_UNIT"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// UnknownUnit creates an unrecognized-unit error carrying the offending token
func UnknownUnit(token string) *Error {
	return Newf(TypeUnknownUnit, "unrecognized unit %q", token).WithContext("unit", token)
}

// MalformedNumber creates a malformed numeric literal error
func MalformedNumber(literal string, cause error) *Error {
	return Wrap(TypeMalformedNumber, fmt.Sprintf("malformed number %q", literal), cause).
		WithContext("number", literal)
}

// InvalidFragment creates an error for stray text in a parsed input
func InvalidFragment(fragment string) *Error {
	return Newf(TypeInvalidFragment, "invalid fragment %q", fragment).WithContext("fragment", fragment)
}

// NoMatch creates an error for input yielding zero quantity/unit pairs
func NoMatch(input string) *Error {
	return Newf(TypeNoMatch, "no quantity found in %q", input).WithContext("input", input)
}

// UnsupportedUnit creates an error for a unit outside its dimension's enum
func UnsupportedUnit(dimension string, raw int) *Error {
	return Newf(TypeUnsupportedUnit, "unsupported %s unit %d", dimension, raw).
		WithContext("dimension", dimension).
		WithContext("unit", raw)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
