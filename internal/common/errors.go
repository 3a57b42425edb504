// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Record errors.
	ErrColumnNotFound   = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("duplicate column")
	ErrRaggedColumns    = errors.New("columns have unequal lengths")
	ErrUnsupportedInput = errors.New("unsupported input format")

	// Standardization errors.
	ErrUnknownDataType = errors.New("unknown data type")

	// Validation rule errors.
	ErrInvalidRangeRule   = errors.New("invalid range rule")
	ErrInvalidNullCeiling = errors.New("invalid null-percentage ceiling")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
