package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeSellerNotFound = "SEL001"
	ErrCodeAlreadySeller  = "SEL002"
)

// Errors
var (
	ErrSellerNotFound = errors.New("seller profile not found")
	ErrAlreadySeller  = errors.New("seller profile already exists for this user")
)

// SellerError custom error type
type SellerError struct {
	Code    string
	Message string
	Err     error
}

func (e *SellerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SellerError) Unwrap() error {
	return e.Err
}

func NewSellerNotFoundError() *SellerError {
	return &SellerError{
		Code:    ErrCodeSellerNotFound,
		Message: "Seller profile not found",
		Err:     ErrSellerNotFound,
	}
}

func NewAlreadySellerError() *SellerError {
	return &SellerError{
		Code:    ErrCodeAlreadySeller,
		Message: "You already have a seller profile",
		Err:     ErrAlreadySeller,
	}
}
