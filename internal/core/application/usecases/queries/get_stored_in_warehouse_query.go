package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetStoredInWarehouseQueryIsNotConstructed = errors.New(
	"GetStoredInWarehouseQuery must be created via NewGetStoredInWarehouseQuery constructor",
)

// GetStoredInWarehouseQuery retrieves the goods currently stored at a
// warehouse: dropoff segments in Stored status whose pickup counterpart has
// not collected them yet.
type GetStoredInWarehouseQuery struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoredInWarehouseQuery creates a query for a warehouse's stored
// goods.
func NewGetStoredInWarehouseQuery(warehouseID kernel.UUID) (GetStoredInWarehouseQuery, error) {
	query := GetStoredInWarehouseQuery{
		guard: guard.NewConstructorGuard(),
	}
	if err := warehouseID.Validate(); err != nil {
		return GetStoredInWarehouseQuery{}, err
	}
	query.warehouseID = warehouseID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoredInWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetStoredInWarehouseQueryIsNotConstructed)
}

// WarehouseID returns the warehouse being inspected.
func (q GetStoredInWarehouseQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}

// StoredGoodsResponse describes one parcel sitting at the warehouse.
type StoredGoodsResponse struct {
	TaskID            kernel.UUID
	RequestID         kernel.UUID
	DestinationStreet string
	DestinationCity   string
	StoredAt          time.Time
}
