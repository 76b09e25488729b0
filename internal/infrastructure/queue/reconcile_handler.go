package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ProductIDLister enumerates the catalog for the sweep.
type ProductIDLister interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// RatingRecomputer re-derives one product's rating aggregate.
type RatingRecomputer interface {
	Recompute(ctx context.Context, productID uuid.UUID) error
}

// ReconcileHandler processes rating:reconcile tasks.
type ReconcileHandler struct {
	products   ProductIDLister
	aggregator RatingRecomputer
}

func NewReconcileHandler(products ProductIDLister, aggregator RatingRecomputer) *ReconcileHandler {
	return &ReconcileHandler{
		products:   products,
		aggregator: aggregator,
	}
}

// ProcessTask recomputes the aggregate for every product. Recompute is
// idempotent, so products whose aggregate is already correct end up
// unchanged. Per-product failures are logged and the sweep continues;
// the task only fails when the catalog itself cannot be listed.
func (h *ReconcileHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	start := time.Now()

	ids, err := h.products.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products for reconciliation: %w", err)
	}

	failed := 0
	for _, id := range ids {
		if err := h.aggregator.Recompute(ctx, id); err != nil {
			failed++
			log.Error().
				Err(err).
				Str("product_id", id.String()).
				Msg("Rating reconciliation failed for product")
		}
	}

	log.Info().
		Int("products", len(ids)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("Rating reconciliation sweep completed")

	return nil
}
