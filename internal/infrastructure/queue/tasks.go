package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types
const (
	// TypeReconcileRatings sweeps every product and recomputes its
	// rating aggregate from the review table. Catches drift from
	// crashes between a review mutation and its aggregate write.
	TypeReconcileRatings = "rating:reconcile"
)

// Queues
const (
	QueueDefault = "default"
	QueueLow     = "low"
)

// ReconcileRatingsPayload is intentionally empty; the sweep always
// covers the full catalog.
type ReconcileRatingsPayload struct{}

// NewReconcileRatingsTask builds the reconciliation task.
func NewReconcileRatingsTask() (*asynq.Task, error) {
	payload, err := json.Marshal(ReconcileRatingsPayload{})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReconcileRatings, payload), nil
}
