package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/product/model"
)

// MemoryProductRepository is an in-memory ProductRepository used in
// tests and local development.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]*model.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uuid.UUID]*model.Product),
	}
}

func (r *MemoryProductRepository) Create(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *MemoryProductRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, model.ErrProductNotFound
	}

	copied := *product
	return &copied, nil
}

func (r *MemoryProductRepository) List(_ context.Context, filters model.Filters) ([]*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Product, 0)
	for _, product := range r.products {
		if !matches(product, filters) {
			continue
		}
		copied := *product
		result = append(result, &copied)
	}

	asc := filters.Order == model.OrderAsc
	sort.Slice(result, func(i, j int) bool {
		var less bool
		switch filters.SortBy {
		case model.SortByPrice:
			less = result[i].Price.LessThan(result[j].Price)
		case model.SortByRating:
			less = result[i].AverageRating < result[j].AverageRating
		case model.SortByName:
			less = result[i].Name < result[j].Name
		default:
			less = result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	return result, nil
}

func matches(p *model.Product, f model.Filters) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.SellerID != "" && p.SellerID.String() != f.SellerID {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}

func (r *MemoryProductRepository) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return model.ErrProductNotFound
	}

	// Rating aggregate fields stay as they are; only SetRatingStats
	// writes them.
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category
	existing.Materials = product.Materials
	existing.Dimensions = product.Dimensions
	existing.Weight = product.Weight
	existing.Images = product.Images
	existing.Stock = product.Stock
	existing.Tags = product.Tags
	existing.IsActive = product.IsActive
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return model.ErrProductNotFound
	}

	delete(r.products, id)
	return nil
}

func (r *MemoryProductRepository) SetRatingStats(
	_ context.Context,
	id uuid.UUID,
	averageRating float64,
	totalReviews int,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return model.ErrProductNotFound
	}

	product.AverageRating = averageRating
	product.TotalReviews = totalReviews
	return nil
}
