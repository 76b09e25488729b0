package repository

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/review/model"
)

// ReviewRepository is the durable review store. Implementations must
// enforce uniqueness on (product_id, user_id) and report conflicts as
// model.ErrAlreadyReviewed.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(ctx context.Context, review *model.Review) error

	// GetByID returns a review or model.ErrReviewNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// GetByProductAndUser is the duplicate check for the one-review-
	// per-user-per-product rule.
	GetByProductAndUser(ctx context.Context, productID, userID uuid.UUID) (*model.Review, error)

	// ListByProduct returns all reviews for a product ordered by the
	// given sort field and order. Empty slice when none exist.
	ListByProduct(ctx context.Context, productID uuid.UUID, sortBy, order string) ([]*model.Review, error)

	// Update overwrites the mutable fields of an existing review and
	// refreshes updated_at.
	Update(ctx context.Context, review *model.Review) error

	// Delete removes a review or returns model.ErrReviewNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementHelpful bumps the helpful counter by one.
	IncrementHelpful(ctx context.Context, id uuid.UUID) error
}
