package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated   = errors.New("authentication credentials were not provided")
	ErrPermissionDenied  = errors.New("You do not have permission to perform this action.")
	ErrInvalidCredential = errors.New("no active account found with the given credentials")
	ErrTokenInvalid      = errors.New("Token is invalid or expired")

	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuNotFound       = errors.New("menu not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrVoteNotFound       = errors.New("vote not found")

	ErrNoVotesToday = errors.New("No votes have been cast for today")
	ErrNoVoteFound  = errors.New("No vote found for today")
	ErrNoMenusToday = errors.New("No menus available for today.")

	ErrInternal = errors.New("internal server error")
)

// ValidationError is a client-correctable failure tied to one request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotAcceptableError reports an unsupported protocol version.
type NotAcceptableError struct {
	Message string
}

func (e *NotAcceptableError) Error() string {
	return e.Message
}

// RuleError is a business rule rejection reported as {"error": Message}.
// Err, when set, classifies the rejection (for example ErrUserNotFound).
type RuleError struct {
	Message string
	Err     error
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// ConflictError is a uniqueness violation raised by the store.
type ConflictError struct {
	Resource string
	MenuID   int64
	Err      error
}

func (e *ConflictError) Error() string {
	if e.MenuID != 0 {
		return fmt.Sprintf("%s already exists for menu %d", e.Resource, e.MenuID)
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrRestaurantNotFound) ||
		errors.Is(err, ErrMenuNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrVoteNotFound)
}
