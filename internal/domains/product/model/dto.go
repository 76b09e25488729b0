package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateProductRequest request to create a listing. Seller identity
// comes from the access token.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       float64  `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Materials   []string `json:"materials"`
	Dimensions  *string  `json:"dimensions"`
	Weight      *string  `json:"weight"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
}

func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength).Error("name cannot be more than 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(1, MaxDescriptionLength).Error("description cannot be more than 2000 characters"),
		),
		validation.Field(&r.Price,
			validation.Required.Error("price is required"),
			validation.Min(0.0).Error("price cannot be negative"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(func(value interface{}) error {
				if c, _ := value.(string); c != "" && !IsValidCategory(c) {
					return ErrInvalidCategory
				}
				return nil
			}),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("stock cannot be negative"),
		),
	)
}

// UpdateProductRequest request to update a listing. Only provided
// fields are applied. The derived rating aggregate is deliberately
// not part of this DTO; it cannot be written through product updates.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Materials   []string `json:"materials"`
	Dimensions  *string  `json:"dimensions"`
	Weight      *string  `json:"weight"`
	Images      []string `json:"images"`
	Stock       *int     `json:"stock"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"is_active"`
}

func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Length(1, MaxNameLength).Error("name cannot be more than 100 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(1, MaxDescriptionLength).Error("description cannot be more than 2000 characters"),
		),
		validation.Field(&r.Price,
			validation.Min(0.0).Error("price cannot be negative"),
		),
		validation.Field(&r.Category,
			validation.By(func(value interface{}) error {
				if c, ok := value.(*string); ok && c != nil && !IsValidCategory(*c) {
					return ErrInvalidCategory
				}
				return nil
			}),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("stock cannot be negative"),
		),
	)
}

// ListProductsRequest query params for browsing the marketplace.
type ListProductsRequest struct {
	Category string  `form:"category"`
	MinPrice *string `form:"minPrice"`
	MaxPrice *string `form:"maxPrice"`
	Search   string  `form:"search"`
	SellerID string  `form:"sellerId"`
	SortBy   string  `form:"sortBy"`
	Order    string  `form:"order"`
}

// Filters is the normalized form handed to the repository.
type Filters struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
	SellerID string
	SortBy   string
	Order    string
}

// ToFilters normalizes the raw query params: "all" means no category
// filter, unknown sort fields fall back to newest-first.
func (r ListProductsRequest) ToFilters() (Filters, error) {
	f := Filters{
		Search:   r.Search,
		SellerID: r.SellerID,
		SortBy:   r.SortBy,
		Order:    r.Order,
	}

	if r.Category != "" && r.Category != "all" {
		f.Category = r.Category
	}

	if r.MinPrice != nil && *r.MinPrice != "" {
		min, err := decimal.NewFromString(*r.MinPrice)
		if err != nil {
			return Filters{}, validation.NewError("validation_min_price", "minPrice must be a number")
		}
		f.MinPrice = &min
	}

	if r.MaxPrice != nil && *r.MaxPrice != "" {
		max, err := decimal.NewFromString(*r.MaxPrice)
		if err != nil {
			return Filters{}, validation.NewError("validation_max_price", "maxPrice must be a number")
		}
		f.MaxPrice = &max
	}

	switch f.SortBy {
	case SortByCreatedAt, SortByPrice, SortByRating, SortByName:
	default:
		f.SortBy = SortByCreatedAt
	}

	switch f.Order {
	case OrderAsc, OrderDesc:
	default:
		f.Order = OrderDesc
	}

	return f, nil
}
