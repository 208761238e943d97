package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for delivery task
// aggregates. It also backs the claim-slot exclusivity: Add surfaces a
// unique-constraint violation on (request, slot) as errs.ConflictError, which
// is how racing claims on the same slot are resolved.
type TaskRepository interface {
	// Add persists a new delivery task aggregate to storage.
	// Returns errs.ConflictError when the task's claim slot within its
	// request is already occupied.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing delivery task aggregate.
	Update(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a delivery task aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such task exists.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetByRequestID retrieves every task attached to the given request,
	// cancelled ones included.
	GetByRequestID(ctx context.Context, requestID kernel.UUID) ([]*task.Task, error)

	// GetAllUnclaimed retrieves tasks without a carrier that are still
	// claimable, typically auto-created pickup segments.
	GetAllUnclaimed(ctx context.Context) ([]*task.Task, error)

	// GetStoredInWarehouse retrieves dropoff tasks currently Stored at the
	// given warehouse.
	GetStoredInWarehouse(ctx context.Context, warehouseID kernel.UUID) ([]*task.Task, error)
}
