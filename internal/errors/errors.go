package errors

import "fmt"

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error on a specific field or date
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a field-scoped validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError represents a state conflict the caller can act on,
// distinguished from validation so the boundary can map it to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
	ErrSettingsNotFound = &NotFoundError{Entity: "settings"}
	ErrPeriodNotFound   = &NotFoundError{Entity: "period"}
	ErrProjectNotFound  = &NotFoundError{Entity: "project"}
)

// Already Exists Errors
var (
	ErrEmployeeExists = &AlreadyExistsError{Entity: "employee", Context: "with this auth user id"}
)

// Conflict Errors
var (
	ErrPeriodClosed = &ConflictError{Message: "period is closed"}
)

// Authorization Errors
var (
	ErrNotRecordOwner = &AuthorizationError{Message: "cannot act on another employee's record"}
	ErrAdminRequired  = &AuthorizationError{Message: "admin privileges required"}
)
