package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	productModel "craftmarket-backend/internal/domains/product/model"
	"craftmarket-backend/internal/domains/seller/model"
	"craftmarket-backend/internal/domains/seller/repository"
)

// ProductLister is the slice of the product store the stats endpoint
// needs.
type ProductLister interface {
	List(ctx context.Context, filters productModel.Filters) ([]*productModel.Product, error)
}

// RolePromoter promotes a user to the seller role once their profile
// exists.
type RolePromoter interface {
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
}

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type sellerService struct {
	sellerRepo repository.SellerRepository
	products   ProductLister
	roles      RolePromoter
}

func NewSellerService(
	sellerRepo repository.SellerRepository,
	products ProductLister,
	roles RolePromoter,
) ServiceInterface {
	return &sellerService{
		sellerRepo: sellerRepo,
		products:   products,
		roles:      roles,
	}
}

func (s *sellerService) CreateProfile(
	ctx context.Context,
	userID uuid.UUID,
	userName string,
	req model.CreateSellerRequest,
) (*model.Seller, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	seller := &model.Seller{
		ID:              uuid.New(),
		UserID:          userID,
		UserName:        userName,
		ShopName:        req.ShopName,
		Bio:             req.Bio,
		Specialization:  req.Specialization,
		Location:        req.Location,
		ContactEmail:    req.ContactEmail,
		PhoneNumber:     req.PhoneNumber,
		SocialMedia:     req.SocialMedia,
		YearsExperience: req.YearsExperience,
		ShippingPolicy:  req.ShippingPolicy,
		ReturnPolicy:    req.ReturnPolicy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		if errors.Is(err, model.ErrAlreadySeller) {
			return nil, model.NewAlreadySellerError()
		}
		return nil, fmt.Errorf("failed to create seller profile: %w", err)
	}

	if err := s.roles.UpdateRole(ctx, userID, "seller"); err != nil {
		return nil, fmt.Errorf("failed to promote user to seller: %w", err)
	}

	return seller, nil
}

func (s *sellerService) GetProfile(ctx context.Context, id uuid.UUID) (*model.Seller, error) {
	seller, err := s.sellerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSellerNotFound) {
			return nil, model.NewSellerNotFoundError()
		}
		return nil, fmt.Errorf("failed to get seller profile: %w", err)
	}

	return seller, nil
}

func (s *sellerService) GetMyProfile(ctx context.Context, userID uuid.UUID) (*model.Seller, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrSellerNotFound) {
			return nil, model.NewSellerNotFoundError()
		}
		return nil, fmt.Errorf("failed to get seller profile: %w", err)
	}

	return seller, nil
}

func (s *sellerService) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	req model.UpdateSellerRequest,
) (*model.Seller, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrSellerNotFound) {
			return nil, model.NewSellerNotFoundError()
		}
		return nil, fmt.Errorf("failed to get seller profile: %w", err)
	}

	if req.ShopName != nil {
		seller.ShopName = *req.ShopName
	}
	if req.Bio != nil {
		seller.Bio = *req.Bio
	}
	if req.Specialization != nil {
		seller.Specialization = *req.Specialization
	}
	if req.Location != nil {
		seller.Location = *req.Location
	}
	if req.ContactEmail != nil {
		seller.ContactEmail = *req.ContactEmail
	}
	if req.PhoneNumber != nil {
		seller.PhoneNumber = *req.PhoneNumber
	}
	if req.SocialMedia != nil {
		seller.SocialMedia = *req.SocialMedia
	}
	if req.YearsExperience != nil {
		seller.YearsExperience = *req.YearsExperience
	}
	if req.ShippingPolicy != nil {
		seller.ShippingPolicy = *req.ShippingPolicy
	}
	if req.ReturnPolicy != nil {
		seller.ReturnPolicy = *req.ReturnPolicy
	}
	seller.UpdatedAt = time.Now()

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, fmt.Errorf("failed to update seller profile: %w", err)
	}

	return seller, nil
}

func (s *sellerService) GetStats(ctx context.Context, userID uuid.UUID) (*model.SellerStats, error) {
	seller, err := s.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrSellerNotFound) {
			return nil, model.NewSellerNotFoundError()
		}
		return nil, fmt.Errorf("failed to get seller profile: %w", err)
	}

	products, err := s.products.List(ctx, productModel.Filters{
		SellerID: seller.ID.String(),
		SortBy:   productModel.SortByCreatedAt,
		Order:    productModel.OrderDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list seller products: %w", err)
	}

	active := 0
	total := decimal.Zero
	for _, p := range products {
		if p.IsActive {
			active++
		}
		total = total.Add(p.Price)
	}

	return &model.SellerStats{
		TotalProducts:  len(products),
		ActiveListings: active,
		TotalValue:     total.String(),
	}, nil
}
