package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/carrier"
	"parcelflow/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
type CarrierRepository interface {
	// Add persists a new carrier aggregate to storage.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier aggregate.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such carrier exists.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
}
