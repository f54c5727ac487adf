package errors

import (
	"errors"
	"fmt"
)

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
	Context string // Additional context like "in team"
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

// ValidationError represents a validation error
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

// InvalidArgumentError represents a request that is well-formed but cannot be
// applied to the current state, e.g. targeting workspaces that have no
// association rows for the flag
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidArgumentError
func (e *InvalidArgumentError) Is(target error) bool {
	t, ok := target.(*InvalidArgumentError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// Entity Not Found Errors
var (
	ErrFeatureFlagNotFound = &NotFoundError{Entity: "feature flag"}
	ErrWorkspaceNotFound   = &NotFoundError{Entity: "workspace"}
	ErrAssociationNotFound = &NotFoundError{Entity: "workspace-flag association"}
	ErrAuditLogNotFound    = &NotFoundError{Entity: "audit log entry"}
)

// Already Exists Errors
var (
	ErrFeatureFlagExists = &AlreadyExistsError{Entity: "feature flag", Context: "with this name in the team"}
	ErrWorkspaceExists   = &AlreadyExistsError{Entity: "workspace", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrNoAssociationsFound     = &InvalidArgumentError{Message: "no associations found"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidAuditOperation   = errors.New("invalid audit operation")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidArgument checks if an error is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	var invalidErr *InvalidArgumentError
	return errors.As(err, &invalidErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidArgumentError creates a new InvalidArgumentError
func NewInvalidArgumentError(message string) error {
	return &InvalidArgumentError{Message: message}
}
