package repository

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/seller/model"
)

// SellerRepository is the durable seller profile store. One profile
// per user, reported as model.ErrAlreadySeller on conflict.
type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Seller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Seller, error)
	Update(ctx context.Context, seller *model.Seller) error
}
