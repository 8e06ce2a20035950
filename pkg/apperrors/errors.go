// Package apperrors holds the error taxonomy shared by the repository,
// application and HTTP layers.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that an entity with the given id does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound builds a NotFoundError for resource (e.g. "Property").
func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationIssue describes one offending field of a payload.
type ValidationIssue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError is a malformed or incomplete payload.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		msgs = append(msgs, is.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Invalid is a shorthand for a single-issue ValidationError.
func Invalid(field, tag, message string) error {
	return &ValidationError{Issues: []ValidationIssue{{Field: field, Tag: tag, Message: message}}}
}

type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
)

// ConstraintError is a unique or foreign-key violation raised by the store.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s constraint %q violated", e.Kind, e.Constraint)
	}
	return fmt.Sprintf("%s constraint violated", e.Kind)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// StorageError is a connectivity or query failure. The driver error is kept
// as the cause.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// AuthError covers bad credentials, bad tokens and identities without a profile.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

// ForbiddenError is returned when the session may not act on a resource.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string { return e.Reason }

func Forbidden(reason string) error { return &ForbiddenError{Reason: reason} }

// IsNotFound reports whether err (or any error it wraps) is a NotFoundError.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
