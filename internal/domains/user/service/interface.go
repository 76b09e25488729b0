package service

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/user/model"
)

// ServiceInterface handles accounts and authentication.
type ServiceInterface interface {
	// Register creates a buyer account. Email must be unique.
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error)

	// Login authenticates and returns a token pair.
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)

	// RefreshToken exchanges a valid refresh token for a new pair.
	RefreshToken(ctx context.Context, refreshToken string) (*model.LoginResponse, error)

	// GetProfile returns the caller's account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserDTO, error)

	// UpdateProfile applies a partial update to the caller's account.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) (*model.UserDTO, error)

	// UpdateRole changes a user's role. Used when a seller profile is
	// created and by admins.
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
}
