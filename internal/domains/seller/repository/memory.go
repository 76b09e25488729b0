package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"craftmarket-backend/internal/domains/seller/model"
)

// MemorySellerRepository is an in-memory SellerRepository used in
// tests and local development.
type MemorySellerRepository struct {
	mu      sync.RWMutex
	sellers map[uuid.UUID]*model.Seller
}

func NewMemorySellerRepository() *MemorySellerRepository {
	return &MemorySellerRepository{
		sellers: make(map[uuid.UUID]*model.Seller),
	}
}

func (r *MemorySellerRepository) Create(_ context.Context, seller *model.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.sellers {
		if existing.UserID == seller.UserID {
			return model.ErrAlreadySeller
		}
	}

	stored := *seller
	r.sellers[seller.ID] = &stored
	return nil
}

func (r *MemorySellerRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seller, ok := r.sellers[id]
	if !ok {
		return nil, model.ErrSellerNotFound
	}

	copied := *seller
	return &copied, nil
}

func (r *MemorySellerRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*model.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, seller := range r.sellers {
		if seller.UserID == userID {
			copied := *seller
			return &copied, nil
		}
	}

	return nil, model.ErrSellerNotFound
}

func (r *MemorySellerRepository) Update(_ context.Context, seller *model.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.sellers[seller.ID]
	if !ok {
		return model.ErrSellerNotFound
	}

	copied := *seller
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	r.sellers[seller.ID] = &copied
	return nil
}
