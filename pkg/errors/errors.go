package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is returned when user input cannot be applied to a record.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records another invalid field and returns the receiver.
func (e *ValidationError) Add(field, reason string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range []string{"name", "email", "role"} {
		if r, ok := e.Fields[f]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", f, r))
		}
	}
	for f, r := range e.Fields {
		switch f {
		case "name", "email", "role":
		default:
			parts = append(parts, fmt.Sprintf("%s: %s", f, r))
		}
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func NewRecordNotFoundError(id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: "record", ID: id}
}

func NewSlotNotFoundError(key string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: "slot", ID: key}
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// StorageError wraps a failure to read or write the backing byte store.
type StorageError struct {
	Op  string
	Err error
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func IsStorageError(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}

// ConfirmationRequiredError is returned by destructive operations that were
// not explicitly confirmed by the user.
type ConfirmationRequiredError struct {
	Operation string
}

func NewConfirmationRequiredError(op string) *ConfirmationRequiredError {
	return &ConfirmationRequiredError{Operation: op}
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("%s requires confirmation", e.Operation)
}

func IsConfirmationRequiredError(err error) bool {
	var e *ConfirmationRequiredError
	return errors.As(err, &e)
}
