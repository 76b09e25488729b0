package service

import (
	"context"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/product/model"
)

// ServiceInterface manages product listings.
type ServiceInterface interface {
	// CreateProduct creates a listing owned by the calling user's
	// seller profile.
	CreateProduct(ctx context.Context, userID uuid.UUID, req model.CreateProductRequest) (*model.Product, error)

	// GetProduct gets a product by ID, served from cache when fresh.
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// ListProducts browses the marketplace with filters and sorting.
	ListProducts(ctx context.Context, req model.ListProductsRequest) ([]*model.Product, error)

	// UpdateProduct applies a partial update to an owned listing.
	// Admins may update any listing. The rating aggregate cannot be
	// written through this path.
	UpdateProduct(ctx context.Context, userID uuid.UUID, role string, productID uuid.UUID, req model.UpdateProductRequest) (*model.Product, error)

	// DeleteProduct removes an owned listing (or any, for admins).
	DeleteProduct(ctx context.Context, userID uuid.UUID, role string, productID uuid.UUID) error
}
