package service

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/seller/model"
)

// ServiceInterface manages seller profiles and dashboard stats.
type ServiceInterface interface {
	// CreateProfile creates a seller profile for a user and promotes
	// them to the seller role. One profile per user.
	CreateProfile(ctx context.Context, userID uuid.UUID, userName string, req model.CreateSellerRequest) (*model.Seller, error)

	// GetProfile gets a seller profile by seller ID.
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Seller, error)

	// GetMyProfile gets the calling user's seller profile.
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*model.Seller, error)

	// UpdateProfile applies a partial update to the calling user's
	// seller profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req model.UpdateSellerRequest) (*model.Seller, error)

	// GetStats summarizes the calling user's listings.
	GetStats(ctx context.Context, userID uuid.UUID) (*model.SellerStats, error)
}
