package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProductNotFound = "PRD001"
	ErrCodeInvalidCategory = "PRD002"
	ErrCodeNotOwner        = "PRD003"
)

// Errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid product category")
	ErrNotOwner        = errors.New("product belongs to another seller")
)

// ProductError custom error type
type ProductError struct {
	Code    string
	Message string
	Err     error
}

func (e *ProductError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProductError) Unwrap() error {
	return e.Err
}

func NewProductNotFoundError() *ProductError {
	return &ProductError{
		Code:    ErrCodeProductNotFound,
		Message: "Product not found",
		Err:     ErrProductNotFound,
	}
}

func NewInvalidCategoryError(category string) *ProductError {
	return &ProductError{
		Code:    ErrCodeInvalidCategory,
		Message: fmt.Sprintf("Unknown category: %s", category),
		Err:     ErrInvalidCategory,
	}
}

func NewNotOwnerError() *ProductError {
	return &ProductError{
		Code:    ErrCodeNotOwner,
		Message: "You can only manage your own products",
		Err:     ErrNotOwner,
	}
}
