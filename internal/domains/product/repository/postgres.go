package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"craftmarket-backend/internal/domains/product/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresProductRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &postgresProductRepository{pool: pool}
}

const productColumns = `
	id, name, description, price, category,
	materials, dimensions, weight, images, stock, tags, is_active,
	seller_id, seller_name, shop_name,
	average_rating, total_reviews,
	created_at, updated_at
`

var sortColumns = map[string]string{
	model.SortByCreatedAt: "created_at",
	model.SortByPrice:     "price",
	model.SortByRating:    "average_rating",
	model.SortByName:      "name",
}

func (r *postgresProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (
			id, name, description, price, category,
			materials, dimensions, weight, images, stock, tags, is_active,
			seller_id, seller_name, shop_name,
			average_rating, total_reviews,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		pq.Array(product.Materials),
		product.Dimensions,
		product.Weight,
		pq.Array(product.Images),
		product.Stock,
		pq.Array(product.Tags),
		product.IsActive,
		product.SellerID,
		product.SellerName,
		product.ShopName,
		product.AverageRating,
		product.TotalReviews,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *postgresProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := r.scanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (r *postgresProductRepository) List(ctx context.Context, filters model.Filters) ([]*model.Product, error) {
	var conditions []string
	var args []interface{}
	arg := 1

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", arg))
		args = append(args, filters.Category)
		arg++
	}

	if filters.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", arg))
		args = append(args, *filters.MinPrice)
		arg++
	}

	if filters.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", arg))
		args = append(args, *filters.MaxPrice)
		arg++
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", arg, arg))
		args = append(args, "%"+filters.Search+"%")
		arg++
	}

	if filters.SellerID != "" {
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", arg))
		args = append(args, filters.SellerID)
		arg++
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	column, ok := sortColumns[filters.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filters.Order == model.OrderAsc {
		direction = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", column, direction)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*model.Product, 0)
	for rows.Next() {
		product, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *postgresProductRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to list product ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan product id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product ids: %w", err)
	}

	return ids, nil
}

func (r *postgresProductRepository) Update(ctx context.Context, product *model.Product) error {
	// average_rating and total_reviews are deliberately absent here;
	// only SetRatingStats writes them.
	query := `
		UPDATE products
		SET
			name = $2,
			description = $3,
			price = $4,
			category = $5,
			materials = $6,
			dimensions = $7,
			weight = $8,
			images = $9,
			stock = $10,
			tags = $11,
			is_active = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		pq.Array(product.Materials),
		product.Dimensions,
		product.Weight,
		pq.Array(product.Images),
		product.Stock,
		pq.Array(product.Tags),
		product.IsActive,
	)

	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *postgresProductRepository) SetRatingStats(
	ctx context.Context,
	id uuid.UUID,
	averageRating float64,
	totalReviews int,
) error {
	query := `UPDATE products SET average_rating = $2, total_reviews = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, averageRating, totalReviews)
	if err != nil {
		return fmt.Errorf("failed to set rating stats: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *postgresProductRepository) scanRow(row pgx.Row) (*model.Product, error) {
	product := &model.Product{}
	var materials, images, tags []string

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		pq.Array(&materials),
		&product.Dimensions,
		&product.Weight,
		pq.Array(&images),
		&product.Stock,
		pq.Array(&tags),
		&product.IsActive,
		&product.SellerID,
		&product.SellerName,
		&product.ShopName,
		&product.AverageRating,
		&product.TotalReviews,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Materials = materials
	product.Images = images
	product.Tags = tags
	return product, nil
}
