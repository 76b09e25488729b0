package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productModel "craftmarket-backend/internal/domains/product/model"
	productRepo "craftmarket-backend/internal/domains/product/repository"
	"craftmarket-backend/internal/domains/seller/model"
	"craftmarket-backend/internal/domains/seller/repository"
	userModel "craftmarket-backend/internal/domains/user/model"
	userRepo "craftmarket-backend/internal/domains/user/repository"
)

type sellerFixture struct {
	svc      ServiceInterface
	sellers  *repository.MemorySellerRepository
	products *productRepo.MemoryProductRepository
	users    *userRepo.MemoryUserRepository
}

func newSellerFixture(t *testing.T) *sellerFixture {
	t.Helper()

	sellers := repository.NewMemorySellerRepository()
	products := productRepo.NewMemoryProductRepository()
	users := userRepo.NewMemoryUserRepository()

	return &sellerFixture{
		svc:      NewSellerService(sellers, products, users),
		sellers:  sellers,
		products: products,
		users:    users,
	}
}

func (f *sellerFixture) seedUser(t *testing.T) uuid.UUID {
	t.Helper()

	user := &userModel.User{
		ID:           uuid.New(),
		Name:         "Mai Tran",
		Email:        "mai@example.com",
		PasswordHash: "x",
		Role:         userModel.RoleBuyer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user.ID
}

func createSellerRequest() model.CreateSellerRequest {
	return model.CreateSellerRequest{
		ShopName:     "Mai's Pottery",
		ContactEmail: "shop@example.com",
		Bio:          "Small-batch stoneware.",
	}
}

func TestCreateProfilePromotesUser(t *testing.T) {
	ctx := context.Background()
	f := newSellerFixture(t)
	userID := f.seedUser(t)

	seller, err := f.svc.CreateProfile(ctx, userID, "Mai Tran", createSellerRequest())
	require.NoError(t, err)
	assert.Equal(t, "Mai's Pottery", seller.ShopName)
	assert.Equal(t, "Mai Tran", seller.UserName)

	user, err := f.users.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userModel.RoleSeller, user.Role)
}

func TestCreateProfileOnePerUser(t *testing.T) {
	ctx := context.Background()
	f := newSellerFixture(t)
	userID := f.seedUser(t)

	_, err := f.svc.CreateProfile(ctx, userID, "Mai Tran", createSellerRequest())
	require.NoError(t, err)

	_, err = f.svc.CreateProfile(ctx, userID, "Mai Tran", createSellerRequest())
	require.Error(t, err)

	var sellerErr *model.SellerError
	require.ErrorAs(t, err, &sellerErr)
	assert.Equal(t, model.ErrCodeAlreadySeller, sellerErr.Code)
}

func TestGetStatsSummarizesListings(t *testing.T) {
	ctx := context.Background()
	f := newSellerFixture(t)
	userID := f.seedUser(t)

	seller, err := f.svc.CreateProfile(ctx, userID, "Mai Tran", createSellerRequest())
	require.NoError(t, err)

	prices := []float64{30, 45.5, 12}
	for i, price := range prices {
		product := &productModel.Product{
			ID:        uuid.New(),
			Name:      "Listing",
			Price:     decimal.NewFromFloat(price),
			Category:  "Pottery & Ceramics",
			IsActive:  i != 2, // the last one is deactivated
			SellerID:  seller.ID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(t, f.products.Create(ctx, product))
	}

	stats, err := f.svc.GetStats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveListings)
	assert.Equal(t, "87.5", stats.TotalValue)
}

func TestGetStatsWithoutProfile(t *testing.T) {
	ctx := context.Background()
	f := newSellerFixture(t)

	_, err := f.svc.GetStats(ctx, uuid.New())
	require.Error(t, err)

	var sellerErr *model.SellerError
	require.ErrorAs(t, err, &sellerErr)
	assert.Equal(t, model.ErrCodeSellerNotFound, sellerErr.Code)
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	ctx := context.Background()
	f := newSellerFixture(t)
	userID := f.seedUser(t)

	_, err := f.svc.CreateProfile(ctx, userID, "Mai Tran", createSellerRequest())
	require.NoError(t, err)

	newBio := "Now firing in a wood kiln."
	updated, err := f.svc.UpdateProfile(ctx, userID, model.UpdateSellerRequest{Bio: &newBio})
	require.NoError(t, err)
	assert.Equal(t, newBio, updated.Bio)
	assert.Equal(t, "Mai's Pottery", updated.ShopName)
}
