// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound          = errors.New("not found")
	ErrDocumentCorrupted = errors.New("data file corrupted")

	// Ledger errors.
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidWallet     = errors.New("invalid wallet")
	ErrSameWallet        = errors.New("source and destination wallet are the same")
	ErrCategoryInUse     = errors.New("category has referencing transactions")
	ErrSystemCategory    = errors.New("system categories cannot be deleted")
	ErrWalletNotEmpty    = errors.New("wallet still has transactions")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrCategoryTypeClash = errors.New("category type does not match transaction type")

	// Receipt parser errors.
	ErrReceiptParse = errors.New("receipt parsing failed")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
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
