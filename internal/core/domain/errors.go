package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so the boundary can pick a status and message
// without inspecting concrete error values.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindAuth       ErrorKind = "auth"
	KindStore      ErrorKind = "store"
	KindInternal   ErrorKind = "internal"
)

// Error is the failure variant of every service operation. Message is safe to
// show to the operator; Err keeps the underlying cause for logs.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrDuplicateEmail        = &Error{Kind: KindConflict, Message: "Registration failed. Email might already exist."}
	ErrInvalidCredentials    = &Error{Kind: KindAuth, Message: "Invalid email or password."}
	ErrInvalidSession        = &Error{Kind: KindAuth, Message: "Invalid session."}
	ErrUserNotFound          = &Error{Kind: KindNotFound, Message: "User not found."}
	ErrMissingMembershipType = &Error{Kind: KindValidation, Message: "Invalid membership type ID."}
	ErrInvalidMembershipType = &Error{Kind: KindValidation, Message: "Invalid membership type."}
	ErrMemberNotFound        = &Error{Kind: KindNotFound, Message: "Member not found."}
	ErrHashingFailure        = &Error{Kind: KindInternal, Message: "Error hashing password."}
	ErrSessionCreation       = &Error{Kind: KindInternal, Message: "Session creation failed."}
)

// Validation builds a validation failure with a custom message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// StoreFailure wraps an error returned by the persistence layer.
func StoreFailure(op string, err error) *Error {
	return &Error{Kind: KindStore, Message: "Database query failed.", Err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
// for errors the domain does not know about.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the operator-facing message for err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "Internal error."
}
