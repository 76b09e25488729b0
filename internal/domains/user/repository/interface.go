package repository

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/user/model"
)

// UserRepository is the persistence contract for accounts.
type UserRepository interface {
	// Create inserts a user. Returns model.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByID returns a user or model.ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// GetByEmail looks a user up by lowercase email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// Update persists profile fields.
	Update(ctx context.Context, user *model.User) error

	// UpdateRole changes a user's role.
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}
