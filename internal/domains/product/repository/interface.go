package repository

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/product/model"
)

// ProductRepository is the durable product store.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetByID returns a product or model.ErrProductNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// List returns products matching the filters in the requested order.
	List(ctx context.Context, filters model.Filters) ([]*model.Product, error)

	// ListIDs returns the IDs of every product. Used by the aggregate
	// reconciliation sweep.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)

	// Update overwrites the descriptive fields of an existing product
	// and refreshes updated_at. The rating aggregate is untouched.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product or returns model.ErrProductNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetRatingStats overwrites exactly the derived aggregate pair
	// (average_rating, total_reviews). Returns model.ErrProductNotFound
	// when the product does not exist.
	SetRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error
}
