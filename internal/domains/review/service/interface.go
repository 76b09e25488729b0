package service

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/review/model"
)

// ServiceInterface orchestrates review mutations and keeps the owning
// product's rating aggregate consistent. A caller observing success
// from any mutation is guaranteed the aggregate already reflects it.
type ServiceInterface interface {
	// CreateReview creates a review for a product. One review per
	// user per product.
	CreateReview(ctx context.Context, productID, userID uuid.UUID, userName string, req model.CreateReviewRequest) (*model.Review, error)

	// GetReview gets a review by ID.
	GetReview(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// UpdateReview applies a partial update to a review under the
	// given product.
	UpdateReview(ctx context.Context, productID, reviewID uuid.UUID, req model.UpdateReviewRequest) (*model.Review, error)

	// DeleteReview removes a review under the given product.
	DeleteReview(ctx context.Context, productID, reviewID uuid.UUID) error

	// ListReviews lists a product's reviews in the requested order.
	ListReviews(ctx context.Context, productID uuid.UUID, req model.ListReviewsRequest) ([]*model.Review, error)

	// MarkHelpful records a helpful vote, at most one per user per
	// review.
	MarkHelpful(ctx context.Context, reviewID, userID uuid.UUID) error

	// RecomputeProductRating re-derives the rating aggregate for one
	// product. Exposed for the reconciliation worker.
	RecomputeProductRating(ctx context.Context, productID uuid.UUID) error
}
