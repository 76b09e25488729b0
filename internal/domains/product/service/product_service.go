package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"craftmarket-backend/internal/domains/product/model"
	"craftmarket-backend/internal/domains/product/repository"
	sellerModel "craftmarket-backend/internal/domains/seller/model"
	"craftmarket-backend/internal/shared/utils"
	"craftmarket-backend/pkg/cache"
)

// productCacheTTL bounds staleness of cached product details.
const productCacheTTL = 5 * time.Minute

// SellerProfiles resolves the seller profile behind a listing.
type SellerProfiles interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*sellerModel.Seller, error)
}

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type productService struct {
	productRepo repository.ProductRepository
	sellers     SellerProfiles
	cache       cache.Cache
}

func NewProductService(
	productRepo repository.ProductRepository,
	sellers SellerProfiles,
	cacheClient cache.Cache,
) ServiceInterface {
	return &productService{
		productRepo: productRepo,
		sellers:     sellers,
		cache:       cacheClient,
	}
}

func (s *productService) CreateProduct(
	ctx context.Context,
	userID uuid.UUID,
	req model.CreateProductRequest,
) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sellerModel.ErrSellerNotFound) {
			return nil, validation.NewError("validation_seller", "a seller profile is required to list products")
		}
		return nil, fmt.Errorf("failed to resolve seller profile: %w", err)
	}

	now := time.Now()
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
		Category:    req.Category,
		Materials:   orEmpty(req.Materials),
		Dimensions:  req.Dimensions,
		Weight:      req.Weight,
		Images:      orEmpty(req.Images),
		Stock:       req.Stock,
		Tags:        orEmpty(req.Tags),
		IsActive:    true,
		SellerID:    seller.ID,
		SellerName:  seller.UserName,
		ShopName:    seller.ShopName,
		// New listings start unrated; only the rating aggregator
		// moves these fields.
		AverageRating: 0,
		TotalReviews:  0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	cacheKey := utils.ProductCacheKey(id)

	var cached model.Product
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		// Cache trouble should not take down reads
		log.Warn().Err(err).Str("product_id", id.String()).Msg("Product cache read failed")
	}
	if found {
		return &cached, nil
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKey, product, productCacheTTL); err != nil {
		log.Warn().Err(err).Str("product_id", id.String()).Msg("Product cache write failed")
	}

	return product, nil
}

func (s *productService) ListProducts(
	ctx context.Context,
	req model.ListProductsRequest,
) ([]*model.Product, error) {
	filters, err := req.ToFilters()
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

func (s *productService) UpdateProduct(
	ctx context.Context,
	userID uuid.UUID,
	role string,
	productID uuid.UUID,
	req model.UpdateProductRequest,
) (*model.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.checkOwnership(ctx, userID, role, product); err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Materials != nil {
		product.Materials = req.Materials
	}
	if req.Dimensions != nil {
		product.Dimensions = req.Dimensions
	}
	if req.Weight != nil {
		product.Weight = req.Weight
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.NewProductNotFoundError()
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx, productID)
	return product, nil
}

func (s *productService) DeleteProduct(
	ctx context.Context,
	userID uuid.UUID,
	role string,
	productID uuid.UUID,
) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return model.NewProductNotFoundError()
		}
		return fmt.Errorf("failed to get product: %w", err)
	}

	if err := s.checkOwnership(ctx, userID, role, product); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return model.NewProductNotFoundError()
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) checkOwnership(
	ctx context.Context,
	userID uuid.UUID,
	role string,
	product *model.Product,
) error {
	if role == "admin" {
		return nil
	}

	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sellerModel.ErrSellerNotFound) {
			return model.NewNotOwnerError()
		}
		return fmt.Errorf("failed to resolve seller profile: %w", err)
	}

	if product.SellerID != seller.ID {
		return model.NewNotOwnerError()
	}

	return nil
}

func (s *productService) invalidate(ctx context.Context, productID uuid.UUID) {
	if err := s.cache.Delete(ctx, utils.ProductCacheKey(productID)); err != nil {
		log.Warn().Err(err).Str("product_id", productID.String()).Msg("Product cache invalidation failed")
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
