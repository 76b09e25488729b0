package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"craftmarket-backend/internal/domains/seller/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresSellerRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSellerRepository(pool *pgxpool.Pool) SellerRepository {
	return &postgresSellerRepository{pool: pool}
}

const sellerColumns = `
	id, user_id, user_name, shop_name, bio, specialization, location,
	contact_email, phone_number,
	social_instagram, social_facebook, social_website,
	years_experience, shipping_policy, return_policy,
	created_at, updated_at
`

func (r *postgresSellerRepository) Create(ctx context.Context, seller *model.Seller) error {
	query := `
		INSERT INTO sellers (
			id, user_id, user_name, shop_name, bio, specialization, location,
			contact_email, phone_number,
			social_instagram, social_facebook, social_website,
			years_experience, shipping_policy, return_policy,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.pool.Exec(ctx, query,
		seller.ID,
		seller.UserID,
		seller.UserName,
		seller.ShopName,
		seller.Bio,
		seller.Specialization,
		seller.Location,
		seller.ContactEmail,
		seller.PhoneNumber,
		seller.SocialMedia.Instagram,
		seller.SocialMedia.Facebook,
		seller.SocialMedia.Website,
		seller.YearsExperience,
		seller.ShippingPolicy,
		seller.ReturnPolicy,
		seller.CreatedAt,
		seller.UpdatedAt,
	)

	if err != nil {
		// Unique constraint on user_id
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadySeller
		}
		return fmt.Errorf("failed to create seller profile: %w", err)
	}

	return nil
}

func (r *postgresSellerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *postgresSellerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Seller, error) {
	query := `SELECT ` + sellerColumns + ` FROM sellers WHERE user_id = $1`
	return r.get(ctx, query, userID)
}

func (r *postgresSellerRepository) get(ctx context.Context, query string, arg interface{}) (*model.Seller, error) {
	seller := &model.Seller{}

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&seller.ID,
		&seller.UserID,
		&seller.UserName,
		&seller.ShopName,
		&seller.Bio,
		&seller.Specialization,
		&seller.Location,
		&seller.ContactEmail,
		&seller.PhoneNumber,
		&seller.SocialMedia.Instagram,
		&seller.SocialMedia.Facebook,
		&seller.SocialMedia.Website,
		&seller.YearsExperience,
		&seller.ShippingPolicy,
		&seller.ReturnPolicy,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to get seller profile: %w", err)
	}

	return seller, nil
}

func (r *postgresSellerRepository) Update(ctx context.Context, seller *model.Seller) error {
	query := `
		UPDATE sellers
		SET
			shop_name = $2,
			bio = $3,
			specialization = $4,
			location = $5,
			contact_email = $6,
			phone_number = $7,
			social_instagram = $8,
			social_facebook = $9,
			social_website = $10,
			years_experience = $11,
			shipping_policy = $12,
			return_policy = $13,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		seller.ID,
		seller.ShopName,
		seller.Bio,
		seller.Specialization,
		seller.Location,
		seller.ContactEmail,
		seller.PhoneNumber,
		seller.SocialMedia.Instagram,
		seller.SocialMedia.Facebook,
		seller.SocialMedia.Website,
		seller.YearsExperience,
		seller.ShippingPolicy,
		seller.ReturnPolicy,
	)

	if err != nil {
		return fmt.Errorf("failed to update seller profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSellerNotFound
	}

	return nil
}
