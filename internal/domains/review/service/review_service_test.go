package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productRepo "craftmarket-backend/internal/domains/product/repository"
	"craftmarket-backend/internal/domains/review/model"
	"craftmarket-backend/internal/domains/review/repository"
	"craftmarket-backend/pkg/cache"
)

type reviewFixture struct {
	svc       ServiceInterface
	reviews   *repository.MemoryReviewRepository
	products  *productRepo.MemoryProductRepository
	productID uuid.UUID
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	reviews := repository.NewMemoryReviewRepository()
	products := productRepo.NewMemoryProductRepository()
	aggregator := NewRatingAggregator(reviews, products)
	svc := NewReviewService(reviews, aggregator, cache.NewMemoryCache())

	return &reviewFixture{
		svc:       svc,
		reviews:   reviews,
		products:  products,
		productID: seedProduct(t, products),
	}
}

func createRequest(rating int) model.CreateReviewRequest {
	return model.CreateReviewRequest{
		Rating:  rating,
		Title:   "Beautiful craftsmanship",
		Comment: "Exactly as described, arrived well packaged.",
	}
}

func (f *reviewFixture) aggregate(t *testing.T) (float64, int) {
	t.Helper()

	product, err := f.products.GetByID(context.Background(), f.productID)
	require.NoError(t, err)
	return product.AverageRating, product.TotalReviews
}

func TestCreateReviewUpdatesAggregate(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	for _, rating := range []int{5, 4, 3} {
		_, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(rating))
		require.NoError(t, err)
	}

	avg, total := f.aggregate(t)
	assert.InDelta(t, 4.0, avg, 1e-9)
	assert.Equal(t, 3, total)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	_, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(0))
	assert.Error(t, err)

	_, err = f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(6))
	assert.Error(t, err)

	_, err = f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(1))
	assert.NoError(t, err)

	_, err = f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(5))
	assert.NoError(t, err)

	// Only the two valid reviews should count
	avg, total := f.aggregate(t)
	assert.InDelta(t, 3.0, avg, 1e-9)
	assert.Equal(t, 2, total)
}

func TestCreateReviewDuplicateRejected(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	userID := uuid.New()

	_, err := f.svc.CreateReview(ctx, f.productID, userID, "buyer", createRequest(5))
	require.NoError(t, err)

	_, err = f.svc.CreateReview(ctx, f.productID, userID, "buyer", createRequest(3))
	require.Error(t, err)

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeAlreadyReviewed, reviewErr.Code)

	// The first review and the aggregate are untouched
	listed, err := f.svc.ListReviews(ctx, f.productID, model.ListReviewsRequest{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 5, listed[0].Rating)

	avg, total := f.aggregate(t)
	assert.InDelta(t, 5.0, avg, 1e-9)
	assert.Equal(t, 1, total)
}

func TestSameUserCanReviewDifferentProducts(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	otherProductID := seedProduct(t, f.products)
	userID := uuid.New()

	_, err := f.svc.CreateReview(ctx, f.productID, userID, "buyer", createRequest(5))
	require.NoError(t, err)

	_, err = f.svc.CreateReview(ctx, otherProductID, userID, "buyer", createRequest(2))
	assert.NoError(t, err)
}

func TestUpdateReviewRatingMovesAggregate(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(5))
	require.NoError(t, err)
	_, err = f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(4))
	require.NoError(t, err)

	newRating := 1
	updated, err := f.svc.UpdateReview(ctx, f.productID, review.ID, model.UpdateReviewRequest{
		Rating: &newRating,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Rating)
	// Unchanged fields survive a partial update
	assert.Equal(t, review.Title, updated.Title)
	assert.Equal(t, review.Comment, updated.Comment)

	avg, total := f.aggregate(t)
	assert.InDelta(t, 2.5, avg, 1e-9)
	assert.Equal(t, 2, total)
}

func TestUpdateReviewWrongProductNotFound(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	otherProductID := seedProduct(t, f.products)

	review, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(4))
	require.NoError(t, err)

	newRating := 2
	_, err = f.svc.UpdateReview(ctx, otherProductID, review.ID, model.UpdateReviewRequest{Rating: &newRating})
	require.Error(t, err)

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, reviewErr.Code)
}

func TestDeleteReviewUpdatesAggregate(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	var toDelete uuid.UUID
	for _, rating := range []int{5, 4, 3} {
		review, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(rating))
		require.NoError(t, err)
		if rating == 3 {
			toDelete = review.ID
		}
	}

	require.NoError(t, f.svc.DeleteReview(ctx, f.productID, toDelete))

	avg, total := f.aggregate(t)
	assert.InDelta(t, 4.5, avg, 1e-9)
	assert.Equal(t, 2, total)
}

func TestDeleteLastReviewResetsAggregate(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(4))
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteReview(ctx, f.productID, review.ID))

	avg, total := f.aggregate(t)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, total)
}

func TestDeleteUnknownReview(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	err := f.svc.DeleteReview(ctx, f.productID, uuid.New())
	require.Error(t, err)

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, reviewErr.Code)
}

func TestListReviewsSorting(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	for _, rating := range []int{3, 5, 1} {
		_, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(rating))
		require.NoError(t, err)
	}

	reviews, err := f.svc.ListReviews(ctx, f.productID, model.ListReviewsRequest{
		SortBy: model.SortByRating,
		Order:  model.OrderAsc,
	})
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, 1, reviews[0].Rating)
	assert.Equal(t, 3, reviews[1].Rating)
	assert.Equal(t, 5, reviews[2].Rating)

	// Unknown sort inputs fall back to defaults instead of failing
	reviews, err = f.svc.ListReviews(ctx, f.productID, model.ListReviewsRequest{
		SortBy: "helpful'; DROP TABLE reviews;--",
		Order:  "sideways",
	})
	require.NoError(t, err)
	assert.Len(t, reviews, 3)
}

func TestMutationOnMissingProductStillSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(4))
	require.NoError(t, err)

	// Product vanishes between review creation and the next mutation
	require.NoError(t, f.products.Delete(ctx, f.productID))

	newRating := 2
	_, err = f.svc.UpdateReview(ctx, f.productID, review.ID, model.UpdateReviewRequest{Rating: &newRating})
	assert.NoError(t, err)

	assert.NoError(t, f.svc.DeleteReview(ctx, f.productID, review.ID))
}

func TestMarkHelpfulDeduplicates(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	review, err := f.svc.CreateReview(ctx, f.productID, uuid.New(), "buyer", createRequest(5))
	require.NoError(t, err)

	voter := uuid.New()
	require.NoError(t, f.svc.MarkHelpful(ctx, review.ID, voter))
	require.NoError(t, f.svc.MarkHelpful(ctx, review.ID, voter))
	require.NoError(t, f.svc.MarkHelpful(ctx, review.ID, uuid.New()))

	got, err := f.svc.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Helpful)
}

func TestCreateReviewRequiresIdentity(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)

	_, err := f.svc.CreateReview(ctx, f.productID, uuid.Nil, "", createRequest(4))
	assert.Error(t, err)
}
