package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"craftmarket-backend/internal/domains/review/model"
	"craftmarket-backend/internal/domains/review/repository"
	"craftmarket-backend/internal/shared/utils"
	"craftmarket-backend/pkg/cache"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
	aggregator *RatingAggregator
	cache      cache.Cache
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	aggregator *RatingAggregator,
	cacheClient cache.Cache,
) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
		aggregator: aggregator,
		cache:      cacheClient,
	}
}

// =====================================================
// CREATE REVIEW
// =====================================================

func (s *reviewService) CreateReview(
	ctx context.Context,
	productID, userID uuid.UUID,
	userName string,
	req model.CreateReviewRequest,
) (*model.Review, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if userID == uuid.Nil || userName == "" {
		return nil, validation.NewError("validation_reviewer", "reviewer identity is required")
	}

	// Step 2: Duplicate check — one review per (product, user)
	_, err := s.reviewRepo.GetByProductAndUser(ctx, productID, userID)
	if err == nil {
		return nil, model.NewAlreadyReviewedError()
	}
	if !errors.Is(err, model.ErrReviewNotFound) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	// Step 3: Create review entity
	now := time.Now()
	review := &model.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
		Images:    orEmpty(req.Images),
		Helpful:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Step 4: Persist. The store enforces the uniqueness constraint
	// as well, closing the race between check and insert.
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, model.ErrAlreadyReviewed) {
			return nil, model.NewAlreadyReviewedError()
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	// Step 5: Recompute the product aggregate before reporting success
	if err := s.recompute(ctx, productID); err != nil {
		return nil, err
	}

	return review, nil
}

// =====================================================
// GET REVIEW
// =====================================================

func (s *reviewService) GetReview(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// =====================================================
// UPDATE REVIEW
// =====================================================

func (s *reviewService) UpdateReview(
	ctx context.Context,
	productID, reviewID uuid.UUID,
	req model.UpdateReviewRequest,
) (*model.Review, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Get existing review, scoped to the product
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review.ProductID != productID {
		return nil, model.NewReviewNotFoundError()
	}

	// Step 3: Apply patch (only provided fields)
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.Images != nil {
		review.Images = req.Images
	}
	review.UpdatedAt = time.Now()

	// Step 4: Persist
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	// Step 5: Recompute the product aggregate before reporting success
	if err := s.recompute(ctx, productID); err != nil {
		return nil, err
	}

	return review, nil
}

// =====================================================
// DELETE REVIEW
// =====================================================

func (s *reviewService) DeleteReview(ctx context.Context, productID, reviewID uuid.UUID) error {
	// Step 1: Get review, scoped to the product
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to get review: %w", err)
	}
	if review.ProductID != productID {
		return model.NewReviewNotFoundError()
	}

	// Step 2: Delete
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to delete review: %w", err)
	}

	// Step 3: Recompute the product aggregate before reporting success
	return s.recompute(ctx, productID)
}

// =====================================================
// LIST REVIEWS
// =====================================================

func (s *reviewService) ListReviews(
	ctx context.Context,
	productID uuid.UUID,
	req model.ListReviewsRequest,
) ([]*model.Review, error) {
	req.Normalize()

	reviews, err := s.reviewRepo.ListByProduct(ctx, productID, req.SortBy, req.Order)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// =====================================================
// HELPFUL VOTES
// =====================================================

func (s *reviewService) MarkHelpful(ctx context.Context, reviewID, userID uuid.UUID) error {
	// Verify the review exists first
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	// One vote per user, tracked in a cache set
	added, err := s.cache.SetAdd(ctx, utils.ReviewHelpfulVotersKey(reviewID), userID.String())
	if err != nil {
		return fmt.Errorf("failed to record helpful vote: %w", err)
	}
	if !added {
		// Already voted; nothing to do
		return nil
	}

	if err := s.reviewRepo.IncrementHelpful(ctx, reviewID); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to increment helpful count: %w", err)
	}

	return nil
}

// =====================================================
// AGGREGATE RECOMPUTATION
// =====================================================

func (s *reviewService) RecomputeProductRating(ctx context.Context, productID uuid.UUID) error {
	return s.recompute(ctx, productID)
}

// recompute runs the aggregator and drops the cached product detail
// so the next read sees the fresh aggregate.
func (s *reviewService) recompute(ctx context.Context, productID uuid.UUID) error {
	if err := s.aggregator.Recompute(ctx, productID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, utils.ProductCacheKey(productID)); err != nil {
		// Stale cache entries expire on their own; don't fail the
		// mutation over it.
		log.Warn().
			Err(err).
			Str("product_id", productID.String()).
			Msg("Failed to invalidate product cache after recompute")
	}

	return nil
}

func orEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
