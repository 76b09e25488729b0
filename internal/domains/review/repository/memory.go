package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/review/model"
)

// MemoryReviewRepository is an in-memory ReviewRepository used in
// tests and local development. It honors the same uniqueness contract
// as the Postgres implementation.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]*model.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{
		reviews: make(map[uuid.UUID]*model.Review),
	}
}

func (r *MemoryReviewRepository) Create(_ context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reviews {
		if existing.ProductID == review.ProductID && existing.UserID == review.UserID {
			return model.ErrAlreadyReviewed
		}
	}

	stored := *review
	r.reviews[review.ID] = &stored
	return nil
}

func (r *MemoryReviewRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	review, ok := r.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}

	copied := *review
	return &copied, nil
}

func (r *MemoryReviewRepository) GetByProductAndUser(
	_ context.Context,
	productID, userID uuid.UUID,
) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, review := range r.reviews {
		if review.ProductID == productID && review.UserID == userID {
			copied := *review
			return &copied, nil
		}
	}

	return nil, model.ErrReviewNotFound
}

func (r *MemoryReviewRepository) ListByProduct(
	_ context.Context,
	productID uuid.UUID,
	sortBy, order string,
) ([]*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Review, 0)
	for _, review := range r.reviews {
		if review.ProductID == productID {
			copied := *review
			result = append(result, &copied)
		}
	}

	asc := order == model.OrderAsc
	sort.Slice(result, func(i, j int) bool {
		var less bool
		switch sortBy {
		case model.SortByRating:
			less = result[i].Rating < result[j].Rating
		case model.SortByHelpful:
			less = result[i].Helpful < result[j].Helpful
		default:
			less = result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return result, nil
}

func (r *MemoryReviewRepository) Update(_ context.Context, review *model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.reviews[review.ID]
	if !ok {
		return model.ErrReviewNotFound
	}

	existing.Rating = review.Rating
	existing.Title = review.Title
	existing.Comment = review.Comment
	existing.Images = review.Images
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryReviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}

	delete(r.reviews, id)
	return nil
}

func (r *MemoryReviewRepository) IncrementHelpful(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, ok := r.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}

	review.Helpful++
	return nil
}
