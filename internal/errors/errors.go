// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeRate indicates a rate table lookup or parsing error
	TypeRate Type = "RATE_ERROR"

	// TypeZone indicates an unresolvable postcode or zone
	TypeZone Type = "ZONE_ERROR"

	// TypeState indicates an invalid conversation state transition
	TypeState Type = "STATE_ERROR"

	// TypeNegotiation indicates a rejected negotiation action
	TypeNegotiation Type = "NEGOTIATION_ERROR"

	// TypeStore indicates a session store failure
	TypeStore Type = "STORE_ERROR"

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

// Zone creates an unresolvable postcode error
func Zone(postcode string) *Error {
	return Newf(TypeZone, "postcode cannot be resolved: %s", postcode)
}

// Rate creates a rate table error
func Rate(message string, cause error) *Error {
	return Wrap(TypeRate, message, cause)
}

// State creates a conversation state error
func State(message string) *Error {
	return New(TypeState, message)
}

// Negotiation creates a negotiation error
func Negotiation(message string) *Error {
	return New(TypeNegotiation, message)
}

// Store creates a session store error
func Store(message string, cause error) *Error {
	return Wrap(TypeStore, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
