package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a handmade-goods listing.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Materials   []string        `json:"materials"`
	Dimensions  *string         `json:"dimensions,omitempty"`
	Weight      *string         `json:"weight,omitempty"`
	Images      []string        `json:"images"`
	Stock       int             `json:"stock"`
	Tags        []string        `json:"tags"`
	IsActive    bool            `json:"is_active"`

	// Denormalized seller display fields. May go stale if the seller
	// record changes; no cascading update is performed.
	SellerID   uuid.UUID `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	ShopName   string    `json:"shop_name"`

	// Derived rating aggregate. Written only by the rating aggregator,
	// never by product update paths.
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
