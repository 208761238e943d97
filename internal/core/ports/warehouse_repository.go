package ports

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse
// aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such warehouse exists.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAllActive retrieves every warehouse currently in the routing pool.
	GetAllActive(ctx context.Context) ([]*warehouse.Warehouse, error)
}
