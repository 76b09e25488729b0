package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	productModel "craftmarket-backend/internal/domains/product/model"
	"craftmarket-backend/internal/domains/review/model"
	"craftmarket-backend/internal/domains/review/repository"
)

// ProductRatingStore is the slice of the product store the aggregator
// needs: a single atomic overwrite of the derived aggregate pair.
type ProductRatingStore interface {
	SetRatingStats(ctx context.Context, id uuid.UUID, averageRating float64, totalReviews int) error
}

// RatingAggregator recomputes a product's rating aggregate from the
// full review set. Recompute is idempotent: with no intervening review
// mutation, repeated calls store the same values.
type RatingAggregator struct {
	reviewRepo repository.ReviewRepository
	products   ProductRatingStore
}

func NewRatingAggregator(reviewRepo repository.ReviewRepository, products ProductRatingStore) *RatingAggregator {
	return &RatingAggregator{
		reviewRepo: reviewRepo,
		products:   products,
	}
}

// Recompute re-derives average_rating and total_reviews for a product
// and persists them. A missing product is not an error: a review can
// outlive a concurrently deleted product, so the write is skipped and
// logged.
func (a *RatingAggregator) Recompute(ctx context.Context, productID uuid.UUID) error {
	reviews, err := a.reviewRepo.ListByProduct(ctx, productID, model.SortByCreatedAt, model.OrderDesc)
	if err != nil {
		return fmt.Errorf("failed to fetch reviews for aggregation: %w", err)
	}

	totalReviews := len(reviews)
	averageRating := 0.0
	if totalReviews > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		// Round to one decimal place, half away from zero.
		averageRating = math.Round(float64(sum)/float64(totalReviews)*10) / 10
	}

	err = a.products.SetRatingStats(ctx, productID, averageRating, totalReviews)
	if err != nil {
		if errors.Is(err, productModel.ErrProductNotFound) {
			log.Warn().
				Str("product_id", productID.String()).
				Msg("Skipping rating aggregate write for missing product")
			return nil
		}
		return fmt.Errorf("failed to persist rating aggregate: %w", err)
	}

	return nil
}
