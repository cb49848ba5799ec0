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
	Context string // Additional context like "for this flight"
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

// ForeignKeyViolationError represents an error when an entity references a
// non-existent parent entity
type ForeignKeyViolationError struct {
	Entity    string // entity carrying the reference, e.g. "flight"
	Reference string // referenced entity, e.g. "aircraft"
}

func (e *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s references a non-existent %s", e.Entity, e.Reference)
}

// Is enables errors.Is() comparison for ForeignKeyViolationError
func (e *ForeignKeyViolationError) Is(target error) bool {
	t, ok := target.(*ForeignKeyViolationError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && e.Reference == t.Reference
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrAircraftNotFound   = &NotFoundError{Entity: "aircraft"}
	ErrFlightNotFound     = &NotFoundError{Entity: "flight"}
	ErrPilotNotFound      = &NotFoundError{Entity: "pilot"}
	ErrAssignmentNotFound = &NotFoundError{Entity: "pilot assignment"}
)

// Already Exists Errors
var (
	ErrPilotAlreadyAssigned = &AlreadyExistsError{Entity: "pilot assignment", Context: "for this flight"}
)

// Foreign Key Violation Errors
var (
	ErrInvalidAircraftReference = &ForeignKeyViolationError{Entity: "flight", Reference: "aircraft"}
)

// Authentication Errors
var (
	ErrInvalidClientCredentials = &AuthenticationError{Message: "invalid client credentials"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsForeignKeyViolation checks if an error is a ForeignKeyViolationError
func IsForeignKeyViolation(err error) bool {
	var fkErr *ForeignKeyViolationError
	return errors.Is(err, &ForeignKeyViolationError{}) || errors.As(err, &fkErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
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

// NewForeignKeyViolationError creates a new ForeignKeyViolationError
func NewForeignKeyViolationError(entity, reference string) error {
	return &ForeignKeyViolationError{Entity: entity, Reference: reference}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
