package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport layer can map it to a status
// code without inspecting error strings.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindInvalidInput
)

// Error is the uniform failure value returned by services. Details carries
// the raw underlying error text, which ends up in the response body.
type Error struct {
	Kind    Kind
	Message string
	Details string
	wrapped error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// Unauthorized marks a bad or expired credential.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Forbidden marks a valid credential with insufficient ownership or role.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// InvalidInput marks a missing resource, malformed body or disallowed field set.
func InvalidInput(message, details string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Details: details}
}

// Internal wraps a store or provider failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Details: err.Error(), wrapped: err}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As returns err as *Error, converting unclassified errors to Internal.
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
