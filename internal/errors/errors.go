package errors

import (
	"errors"
	"fmt"

	"team-management-backend/internal/database/models"
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

// OperationDeniedError represents a caller who is a team member but lacks the
// capability an operation requires
type OperationDeniedError struct {
	Capability models.Capability
}

func (e *OperationDeniedError) Error() string {
	return fmt.Sprintf("operation denied: missing capability %q", e.Capability)
}

// Is enables errors.Is() comparison for OperationDeniedError. A target with an
// empty capability matches any denial.
func (e *OperationDeniedError) Is(target error) bool {
	t, ok := target.(*OperationDeniedError)
	if !ok {
		return false
	}
	return t.Capability == "" || e.Capability == t.Capability
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity string
}

func (e *AlreadyExistsError) Error() string {
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
	ErrTeamNotFound             = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound       = &NotFoundError{Entity: "team member"}
	ErrTeamConversationNotFound = &NotFoundError{Entity: "team conversation"}
	ErrConversationNotFound     = &NotFoundError{Entity: "conversation"}
)

// Already Exists Errors
var (
	ErrTeamMemberExists = &AlreadyExistsError{Entity: "team member"}
)

// Permission Errors
var (
	// ErrNoTeamMember is returned when the caller has no membership record in
	// the team at all, as opposed to being a member without the capability.
	ErrNoTeamMember = &AuthorizationError{Message: "requesting user is not a team member"}

	// ErrInvalidPermissions is returned when a requested grant exceeds the
	// granter's own permission set, regardless of which capability is the
	// culprit.
	ErrInvalidPermissions = &AuthorizationError{Message: "invalid team permissions"}
)

// Business Logic Errors
var (
	ErrTooManyMembers = errors.New("maximum number of team members reached")
	ErrNotConnected   = errors.New("users are not mutually connected")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "missing or malformed bearer token"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid bearer token"}
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

// IsOperationDenied checks if an error is an OperationDeniedError
func IsOperationDenied(err error) bool {
	var deniedErr *OperationDeniedError
	return errors.As(err, &deniedErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewOperationDeniedError creates a denial for the given missing capability
func NewOperationDeniedError(capability models.Capability) error {
	return &OperationDeniedError{Capability: capability}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
