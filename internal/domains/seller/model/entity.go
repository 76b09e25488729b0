package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialMedia holds a seller's optional social links.
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Seller represents a seller profile. One profile per user.
type Seller struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	// Denormalized display name of the owning user.
	UserName string `json:"user_name"`

	ShopName        string      `json:"shop_name"`
	Bio             string      `json:"bio"`
	Specialization  string      `json:"specialization"`
	Location        string      `json:"location"`
	ContactEmail    string      `json:"contact_email"`
	PhoneNumber     string      `json:"phone_number,omitempty"`
	SocialMedia     SocialMedia `json:"social_media"`
	YearsExperience int         `json:"years_experience"`
	ShippingPolicy  string      `json:"shipping_policy"`
	ReturnPolicy    string      `json:"return_policy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SellerStats summarizes a seller's listings for the dashboard.
type SellerStats struct {
	TotalProducts  int    `json:"total_products"`
	ActiveListings int    `json:"active_listings"`
	TotalValue     string `json:"total_value"` // decimal, stringified
}
