package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftmarket-backend/internal/domains/product/model"
	"craftmarket-backend/internal/domains/product/repository"
	sellerModel "craftmarket-backend/internal/domains/seller/model"
	sellerRepo "craftmarket-backend/internal/domains/seller/repository"
	userModel "craftmarket-backend/internal/domains/user/model"
	"craftmarket-backend/pkg/cache"
)

type productFixture struct {
	svc      ServiceInterface
	products *repository.MemoryProductRepository
	sellers  *sellerRepo.MemorySellerRepository
	cache    *cache.MemoryCache
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	products := repository.NewMemoryProductRepository()
	sellers := sellerRepo.NewMemorySellerRepository()
	memCache := cache.NewMemoryCache()

	return &productFixture{
		svc:      NewProductService(products, sellers, memCache),
		products: products,
		sellers:  sellers,
		cache:    memCache,
	}
}

func (f *productFixture) seedSeller(t *testing.T, userName, shopName string) (*sellerModel.Seller, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	seller := &sellerModel.Seller{
		ID:        uuid.New(),
		UserID:    userID,
		UserName:  userName,
		ShopName:  shopName,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, f.sellers.Create(context.Background(), seller))
	return seller, userID
}

func createProductRequest() model.CreateProductRequest {
	return model.CreateProductRequest{
		Name:        "Ceramic mug",
		Description: "Hand-thrown stoneware mug with a matte glaze.",
		Price:       32.50,
		Category:    "Pottery & Ceramics",
		Materials:   []string{"stoneware clay"},
		Stock:       12,
	}
}

func TestCreateProductDenormalizesSeller(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	seller, userID := f.seedSeller(t, "Mai", "Mai's Pottery")

	product, err := f.svc.CreateProduct(ctx, userID, createProductRequest())
	require.NoError(t, err)

	assert.Equal(t, seller.ID, product.SellerID)
	assert.Equal(t, "Mai", product.SellerName)
	assert.Equal(t, "Mai's Pottery", product.ShopName)
	assert.True(t, product.IsActive)
	assert.Equal(t, 0.0, product.AverageRating)
	assert.Equal(t, 0, product.TotalReviews)
	assert.True(t, product.Price.Equal(decimal.NewFromFloat(32.50)))
}

func TestCreateProductRequiresSellerProfile(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)

	_, err := f.svc.CreateProduct(ctx, uuid.New(), createProductRequest())
	assert.Error(t, err)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, userID := f.seedSeller(t, "Mai", "Mai's Pottery")

	req := createProductRequest()
	req.Category = "electronics"

	_, err := f.svc.CreateProduct(ctx, userID, req)
	assert.Error(t, err)
}

func TestGetProductServesFromCache(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, userID := f.seedSeller(t, "Mai", "Mai's Pottery")

	product, err := f.svc.CreateProduct(ctx, userID, createProductRequest())
	require.NoError(t, err)

	// First read populates the cache
	_, err = f.svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)

	// A write that bypasses the service is invisible until the cache
	// entry is invalidated or expires
	require.NoError(t, f.products.SetRatingStats(ctx, product.ID, 4.5, 2))

	cached, err := f.svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cached.AverageRating)
}

func TestUpdateProductOwnership(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, ownerID := f.seedSeller(t, "Mai", "Mai's Pottery")
	_, strangerID := f.seedSeller(t, "Linh", "Linh's Loom")

	product, err := f.svc.CreateProduct(ctx, ownerID, createProductRequest())
	require.NoError(t, err)

	newName := "Ceramic mug, large"

	_, err = f.svc.UpdateProduct(ctx, strangerID, userModel.RoleSeller, product.ID, model.UpdateProductRequest{Name: &newName})
	require.Error(t, err)
	var productErr *model.ProductError
	require.ErrorAs(t, err, &productErr)
	assert.Equal(t, model.ErrCodeNotOwner, productErr.Code)

	// The owner can update
	updated, err := f.svc.UpdateProduct(ctx, ownerID, userModel.RoleSeller, product.ID, model.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)

	// Admins can update anything
	newStock := 3
	_, err = f.svc.UpdateProduct(ctx, uuid.New(), userModel.RoleAdmin, product.ID, model.UpdateProductRequest{Stock: &newStock})
	assert.NoError(t, err)
}

func TestUpdateProductPreservesAggregate(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, ownerID := f.seedSeller(t, "Mai", "Mai's Pottery")

	product, err := f.svc.CreateProduct(ctx, ownerID, createProductRequest())
	require.NoError(t, err)
	require.NoError(t, f.products.SetRatingStats(ctx, product.ID, 4.2, 5))

	newName := "Ceramic mug, renamed"
	_, err = f.svc.UpdateProduct(ctx, ownerID, userModel.RoleSeller, product.ID, model.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)

	stored, err := f.products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.2, stored.AverageRating, 1e-9)
	assert.Equal(t, 5, stored.TotalReviews)
}

func TestUpdateProductInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, ownerID := f.seedSeller(t, "Mai", "Mai's Pottery")

	product, err := f.svc.CreateProduct(ctx, ownerID, createProductRequest())
	require.NoError(t, err)

	_, err = f.svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)

	newName := "Ceramic mug, restocked"
	_, err = f.svc.UpdateProduct(ctx, ownerID, userModel.RoleSeller, product.ID, model.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)

	fresh, err := f.svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, fresh.Name)
}

func TestDeleteProductOwnership(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, ownerID := f.seedSeller(t, "Mai", "Mai's Pottery")
	_, strangerID := f.seedSeller(t, "Linh", "Linh's Loom")

	product, err := f.svc.CreateProduct(ctx, ownerID, createProductRequest())
	require.NoError(t, err)

	err = f.svc.DeleteProduct(ctx, strangerID, userModel.RoleSeller, product.ID)
	require.Error(t, err)

	require.NoError(t, f.svc.DeleteProduct(ctx, ownerID, userModel.RoleSeller, product.ID))

	_, err = f.svc.GetProduct(ctx, product.ID)
	assert.Error(t, err)
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	f := newProductFixture(t)
	_, userID := f.seedSeller(t, "Mai", "Mai's Pottery")

	mug := createProductRequest()
	_, err := f.svc.CreateProduct(ctx, userID, mug)
	require.NoError(t, err)

	scarf := model.CreateProductRequest{
		Name:        "Woven scarf",
		Description: "Handwoven wool scarf.",
		Price:       80,
		Category:    "Textiles & Fabrics",
		Stock:       4,
	}
	_, err = f.svc.CreateProduct(ctx, userID, scarf)
	require.NoError(t, err)

	byCategory, err := f.svc.ListProducts(ctx, model.ListProductsRequest{Category: "Pottery & Ceramics"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Ceramic mug", byCategory[0].Name)

	all, err := f.svc.ListProducts(ctx, model.ListProductsRequest{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	maxPrice := "50"
	cheap, err := f.svc.ListProducts(ctx, model.ListProductsRequest{MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Ceramic mug", cheap[0].Name)

	bad := "not-a-number"
	_, err = f.svc.ListProducts(ctx, model.ListProductsRequest{MinPrice: &bad})
	assert.Error(t, err)
}
