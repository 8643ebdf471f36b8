// Package errors defines the error kinds surfaced by the inventory core.
//
// Every kind has a constructor and an IsXxx predicate. Predicates use errors.As so
// they keep working after the error has been wrapped with fmt.Errorf("...: %w").
package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError is returned when an update or delete matched zero rows.
type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewResourceNotFoundError(resource, id string) error {
	return &ResourceNotFoundError{Resource: resource, ID: id}
}

func NewWarehouseNotFoundError(id string) error {
	return NewResourceNotFoundError("warehouse", id)
}

func NewProductNotFoundError(id string) error {
	return NewResourceNotFoundError("product", id)
}

func NewUserNotFoundError(name string) error {
	return NewResourceNotFoundError("user", name)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// ConstraintViolationError covers unique conflicts and broken product→warehouse references.
type ConstraintViolationError struct {
	Resource string
	Reason   string
	Err      error
}

func (e *ConstraintViolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s constraint violation: %s: %v", e.Resource, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s constraint violation: %s", e.Resource, e.Reason)
}

func (e *ConstraintViolationError) Unwrap() error { return e.Err }

func NewConstraintViolationError(resource, reason string, err error) error {
	return &ConstraintViolationError{Resource: resource, Reason: reason, Err: err}
}

func IsConstraintViolationError(err error) bool {
	var e *ConstraintViolationError
	return errors.As(err, &e)
}

// FormatError wraps a failure to parse a numeric text field at the store boundary.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func NewFormatError(field, value string, err error) error {
	return &FormatError{Field: field, Value: value, Err: err}
}

func IsFormatError(err error) bool {
	var e *FormatError
	return errors.As(err, &e)
}

// ConnectionError is returned when the database file cannot be opened or reached.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database unreachable: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func NewConnectionError(err error) error {
	return &ConnectionError{Err: err}
}

func IsConnectionError(err error) bool {
	var e *ConnectionError
	return errors.As(err, &e)
}

// SchemaError is fatal at startup.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema creation failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func NewSchemaError(err error) error {
	return &SchemaError{Err: err}
}

func IsSchemaError(err error) bool {
	var e *SchemaError
	return errors.As(err, &e)
}

// ValidationError reports caller-supplied values that fail basic shape checks.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func NewValidationError(err error) error {
	return &ValidationError{Err: err}
}

func NewValidationErrorf(format string, args ...any) error {
	return &ValidationError{Err: fmt.Errorf(format, args...)}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// ForbiddenError is returned when the current role may not perform a write.
type ForbiddenError struct {
	User   string
	Role   string
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("user %q with role %q is not allowed to %s", e.User, e.Role, e.Action)
}

func NewForbiddenError(user, role, action string) error {
	return &ForbiddenError{User: user, Role: role, Action: action}
}

func IsForbiddenError(err error) bool {
	var e *ForbiddenError
	return errors.As(err, &e)
}

type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string {
	return "invalid user name or password"
}

func NewInvalidCredentialsError() error {
	return &InvalidCredentialsError{}
}

func IsInvalidCredentialsError(err error) bool {
	var e *InvalidCredentialsError
	return errors.As(err, &e)
}
