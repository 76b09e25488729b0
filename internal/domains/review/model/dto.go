package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest request to create a review. The reviewer's
// identity (user ID, display name) comes from the access token, the
// product from the URL.
type CreateReviewRequest struct {
	Rating  int      `json:"rating" binding:"required"`
	Title   string   `json:"title" binding:"required"`
	Comment string   `json:"comment" binding:"required"`
	Images  []string `json:"images"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating).Error("rating must be at least 1"),
			validation.Max(MaxRating).Error("rating cannot be more than 5"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error("title cannot be more than 100 characters"),
		),
		validation.Field(&r.Comment,
			validation.Required.Error("comment is required"),
			validation.Length(1, MaxCommentLength).Error("comment cannot be more than 1000 characters"),
		),
	)
}

// UpdateReviewRequest request to update a review. Only provided
// fields are applied.
type UpdateReviewRequest struct {
	Rating  *int     `json:"rating"`
	Title   *string  `json:"title"`
	Comment *string  `json:"comment"`
	Images  []string `json:"images"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating,
			validation.Min(MinRating).Error("rating must be at least 1"),
			validation.Max(MaxRating).Error("rating cannot be more than 5"),
		),
		validation.Field(&r.Title,
			validation.Length(1, MaxTitleLength).Error("title cannot be more than 100 characters"),
		),
		validation.Field(&r.Comment,
			validation.Length(1, MaxCommentLength).Error("comment cannot be more than 1000 characters"),
		),
	)
}

// ListReviewsRequest query params for listing a product's reviews.
type ListReviewsRequest struct {
	SortBy string `form:"sortBy"`
	Order  string `form:"order"`
}

// Normalize falls back to the default sort (newest first) for
// anything outside the accepted field and order sets.
func (r *ListReviewsRequest) Normalize() {
	switch r.SortBy {
	case SortByCreatedAt, SortByRating, SortByHelpful:
	default:
		r.SortBy = SortByCreatedAt
	}

	switch r.Order {
	case OrderAsc, OrderDesc:
	default:
		r.Order = OrderDesc
	}
}
