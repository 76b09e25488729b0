package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftmarket-backend/internal/domains/review/model"
)

func newReview(productID, userID uuid.UUID, rating int, createdAt time.Time) *model.Review {
	return &model.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		UserName:  "reviewer",
		Rating:    rating,
		Title:     "title",
		Comment:   "comment",
		Images:    []string{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestMemoryRepositoryUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReviewRepository()
	productID := uuid.New()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, newReview(productID, userID, 5, time.Now())))

	err := repo.Create(ctx, newReview(productID, userID, 3, time.Now()))
	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)

	// Same user, different product is fine
	assert.NoError(t, repo.Create(ctx, newReview(uuid.New(), userID, 3, time.Now())))

	// Same product, different user is fine
	assert.NoError(t, repo.Create(ctx, newReview(productID, uuid.New(), 3, time.Now())))
}

func TestMemoryRepositorySorting(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReviewRepository()
	productID := uuid.New()

	base := time.Now()
	oldest := newReview(productID, uuid.New(), 3, base.Add(-2*time.Hour))
	middle := newReview(productID, uuid.New(), 5, base.Add(-time.Hour))
	newest := newReview(productID, uuid.New(), 1, base)

	for _, review := range []*model.Review{middle, newest, oldest} {
		require.NoError(t, repo.Create(ctx, review))
	}

	byDate, err := repo.ListByProduct(ctx, productID, model.SortByCreatedAt, model.OrderDesc)
	require.NoError(t, err)
	require.Len(t, byDate, 3)
	assert.Equal(t, newest.ID, byDate[0].ID)
	assert.Equal(t, oldest.ID, byDate[2].ID)

	byRating, err := repo.ListByProduct(ctx, productID, model.SortByRating, model.OrderAsc)
	require.NoError(t, err)
	assert.Equal(t, 1, byRating[0].Rating)
	assert.Equal(t, 5, byRating[2].Rating)
}

func TestMemoryRepositoryGetByProductAndUser(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReviewRepository()
	productID := uuid.New()
	userID := uuid.New()

	review := newReview(productID, userID, 4, time.Now())
	require.NoError(t, repo.Create(ctx, review))

	found, err := repo.GetByProductAndUser(ctx, productID, userID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, found.ID)

	_, err = repo.GetByProductAndUser(ctx, productID, uuid.New())
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

func TestMemoryRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReviewRepository()
	productID := uuid.New()

	review := newReview(productID, uuid.New(), 4, time.Now())
	require.NoError(t, repo.Create(ctx, review))

	require.NoError(t, repo.Delete(ctx, review.ID))
	assert.ErrorIs(t, repo.Delete(ctx, review.ID), model.ErrReviewNotFound)

	// Deleting frees the (product, user) slot for a fresh review
	assert.NoError(t, repo.Create(ctx, newReview(productID, review.UserID, 2, time.Now())))
}
