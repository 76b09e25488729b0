package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productModel "craftmarket-backend/internal/domains/product/model"
	productRepo "craftmarket-backend/internal/domains/product/repository"
	reviewModel "craftmarket-backend/internal/domains/review/model"
	reviewRepo "craftmarket-backend/internal/domains/review/repository"
	reviewService "craftmarket-backend/internal/domains/review/service"
)

func TestReconcileSweepRepairsDrift(t *testing.T) {
	ctx := context.Background()
	products := productRepo.NewMemoryProductRepository()
	reviews := reviewRepo.NewMemoryReviewRepository()
	aggregator := reviewService.NewRatingAggregator(reviews, products)

	productID := uuid.New()
	require.NoError(t, products.Create(ctx, &productModel.Product{
		ID:        productID,
		Name:      "Mug",
		Category:  "Pottery & Ceramics",
		IsActive:  true,
		SellerID:  uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))

	for _, rating := range []int{5, 4} {
		require.NoError(t, reviews.Create(ctx, &reviewModel.Review{
			ID:        uuid.New(),
			ProductID: productID,
			UserID:    uuid.New(),
			UserName:  "reviewer",
			Rating:    rating,
			Title:     "title",
			Comment:   "comment",
			Images:    []string{},
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}))
	}

	// Simulate drift: aggregate out of sync with the review table
	require.NoError(t, products.SetRatingStats(ctx, productID, 1.0, 9))

	task, err := NewReconcileRatingsTask()
	require.NoError(t, err)

	handler := NewReconcileHandler(products, aggregator)
	require.NoError(t, handler.ProcessTask(ctx, task))

	product, err := products.GetByID(ctx, productID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, product.AverageRating, 1e-9)
	assert.Equal(t, 2, product.TotalReviews)
}

type failingLister struct{}

func (failingLister) ListIDs(context.Context) ([]uuid.UUID, error) {
	return nil, errors.New("catalog unavailable")
}

func TestReconcileFailsWhenCatalogUnlistable(t *testing.T) {
	handler := NewReconcileHandler(failingLister{}, reviewService.NewRatingAggregator(
		reviewRepo.NewMemoryReviewRepository(),
		productRepo.NewMemoryProductRepository(),
	))

	task, err := NewReconcileRatingsTask()
	require.NoError(t, err)

	assert.Error(t, handler.ProcessTask(context.Background(), task))
}
