package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"craftmarket-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

const reviewColumns = `
	id, product_id, user_id, user_name,
	rating, title, comment, images, helpful,
	created_at, updated_at
`

// sortColumns whitelists the ORDER BY targets. Anything else falls
// back to created_at before reaching this layer, but the map is the
// final guard against injection.
var sortColumns = map[string]string{
	model.SortByCreatedAt: "created_at",
	model.SortByRating:    "rating",
	model.SortByHelpful:   "helpful",
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, product_id, user_id, user_name,
			rating, title, comment, images, helpful,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.UserName,
		review.Rating,
		review.Title,
		review.Comment,
		pq.Array(review.Images),
		review.Helpful,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// Unique constraint on (product_id, user_id)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := r.scanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) GetByProductAndUser(
	ctx context.Context,
	productID, userID uuid.UUID,
) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1 AND user_id = $2`

	review, err := r.scanRow(r.pool.QueryRow(ctx, query, productID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) ListByProduct(
	ctx context.Context,
	productID uuid.UUID,
	sortBy, order string,
) ([]*model.Review, error) {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if order == model.OrderAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM reviews WHERE product_id = $1 ORDER BY %s %s`,
		reviewColumns, column, direction,
	)

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0)
	for rows.Next() {
		review, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}

func (r *postgresReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE reviews
		SET
			rating = $2,
			title = $3,
			comment = $4,
			images = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Title,
		review.Comment,
		pq.Array(review.Images),
	)

	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) IncrementHelpful(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE reviews SET helpful = helpful + 1 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment helpful count: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) scanRow(row pgx.Row) (*model.Review, error) {
	review := &model.Review{}
	var images []string

	err := row.Scan(
		&review.ID,
		&review.ProductID,
		&review.UserID,
		&review.UserName,
		&review.Rating,
		&review.Title,
		&review.Comment,
		pq.Array(&images),
		&review.Helpful,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	review.Images = images
	return review, nil
}
