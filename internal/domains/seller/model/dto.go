package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateSellerRequest request to create a seller profile.
type CreateSellerRequest struct {
	ShopName        string      `json:"shop_name" binding:"required"`
	Bio             string      `json:"bio"`
	Specialization  string      `json:"specialization"`
	Location        string      `json:"location"`
	ContactEmail    string      `json:"contact_email" binding:"required"`
	PhoneNumber     string      `json:"phone_number"`
	SocialMedia     SocialMedia `json:"social_media"`
	YearsExperience int         `json:"years_experience"`
	ShippingPolicy  string      `json:"shipping_policy"`
	ReturnPolicy    string      `json:"return_policy"`
}

func (r CreateSellerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShopName,
			validation.Required.Error("shop name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.ContactEmail,
			validation.Required.Error("contact email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Bio, validation.Length(0, 1000)),
		validation.Field(&r.YearsExperience, validation.Min(0)),
	)
}

// UpdateSellerRequest request to update a seller profile. Only
// provided fields are applied.
type UpdateSellerRequest struct {
	ShopName        *string      `json:"shop_name"`
	Bio             *string      `json:"bio"`
	Specialization  *string      `json:"specialization"`
	Location        *string      `json:"location"`
	ContactEmail    *string      `json:"contact_email"`
	PhoneNumber     *string      `json:"phone_number"`
	SocialMedia     *SocialMedia `json:"social_media"`
	YearsExperience *int         `json:"years_experience"`
	ShippingPolicy  *string      `json:"shipping_policy"`
	ReturnPolicy    *string      `json:"return_policy"`
}

func (r UpdateSellerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ShopName, validation.Length(2, 100)),
		validation.Field(&r.ContactEmail, is.Email.Error("invalid email format")),
		validation.Field(&r.Bio, validation.Length(0, 1000)),
		validation.Field(&r.YearsExperience, validation.Min(0)),
	)
}
