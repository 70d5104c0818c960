package errors

import (
	"errors"
	"fmt"
)

// AuthorizationCode distinguishes the two access-failure responses the API
// can produce: a caller without recognizable credentials vs. a recognized
// caller whose role is insufficient.
type AuthorizationCode string

const (
	CodeCredentialsRequired AuthorizationCode = "CREDENTIALS_REQUIRED"
	CodeNotAuthorized       AuthorizationCode = "NOT_AUTHORIZED"
)

// ValidationError signals a violated entity invariant: a required field is
// blank, a deadline is in the past, a duplicate member/task/tag was added.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation creates a ValidationError.
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that a referenced id or email did not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFound creates a NotFoundError.
func NewNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// AuthorizationError signals that the caller's role or identity does not
// satisfy the operation's access policy.
type AuthorizationError struct {
	Code    AuthorizationCode
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NewCredentialsRequired creates the AuthorizationError used for absent or
// unrecognized roles.
func NewCredentialsRequired() *AuthorizationError {
	return &AuthorizationError{Code: CodeCredentialsRequired, Message: "credentials required"}
}

// NewNotAuthorized creates the AuthorizationError used for a recognized role
// that is not allowed to perform the operation.
func NewNotAuthorized(format string, args ...interface{}) *AuthorizationError {
	return &AuthorizationError{Code: CodeNotAuthorized, Message: fmt.Sprintf(format, args...)}
}

// ConflictError signals a violated uniqueness constraint.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflict creates a ConflictError.
func NewConflict(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// InfrastructureError wraps an unexpected persistence failure. The cause is
// kept for logging and unwrapping but is never serialized to a response.
type InfrastructureError struct {
	Message string
	Cause   error
}

func (e *InfrastructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InfrastructureError) Unwrap() error {
	return e.Cause
}

// NewInfrastructure wraps an unexpected collaborator failure.
func NewInfrastructure(message string, cause error) *InfrastructureError {
	return &InfrastructureError{Message: message, Cause: cause}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
