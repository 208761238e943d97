package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for delivery request
// aggregates.
type RequestRepository interface {
	// Add persists a new delivery request aggregate to storage.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing delivery request aggregate.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a delivery request aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)
}
