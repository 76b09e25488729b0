package model

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a product review entity.
// One review per (product, user) pair, enforced by the store.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	UserID    uuid.UUID `json:"user_id"`

	// Denormalized display name of the reviewer. May go stale if the
	// user renames themselves; no cascading update is performed.
	UserName string `json:"user_name"`

	// Content
	Rating  int      `json:"rating"` // 1-5
	Title   string   `json:"title"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`

	// Number of "helpful" votes from other users
	Helpful int `json:"helpful"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
