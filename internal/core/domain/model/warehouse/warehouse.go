// Package warehouse contains the Warehouse aggregate: a storage site where
// split trips hand goods over between the dropoff and pickup segments.
package warehouse

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrWarehouseIsNotConstructed is returned when a Warehouse instance was not
// created through NewWarehouse or RestoreWarehouse.
var ErrWarehouseIsNotConstructed = errors.New(
	"Warehouse must be created via NewWarehouse or RestoreWarehouse constructor")

// Warehouse is a storage site usable as the intermediate stop of a split trip.
type Warehouse struct {
	id      kernel.UUID
	name    string
	address kernel.Address
	active  bool

	guard guard.ConstructorGuard
}

// NewWarehouse creates an active warehouse.
func NewWarehouse(id kernel.UUID, name string, address kernel.Address) (*Warehouse, error) {
	return RestoreWarehouse(id, name, address, true)
}

// RestoreWarehouse reconstructs a Warehouse from persistence.
func RestoreWarehouse(id kernel.UUID, name string, address kernel.Address, active bool) (*Warehouse, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := address.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("address", err)
	}

	return &Warehouse{
		id:      id,
		name:    name,
		address: address,
		active:  active,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Warehouse was created through a constructor.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by identifier.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Name returns the human-readable warehouse name.
func (w *Warehouse) Name() string {
	return w.name
}

// Address returns the warehouse address.
func (w *Warehouse) Address() kernel.Address {
	return w.address
}

// City returns the city of the warehouse address.
func (w *Warehouse) City() string {
	return w.address.City()
}

// IsActive reports whether the warehouse accepts new stored goods.
func (w *Warehouse) IsActive() bool {
	return w.active
}

// Deactivate removes the warehouse from the routing pool. Goods already
// stored there remain retrievable.
func (w *Warehouse) Deactivate() {
	w.active = false
}

// Activate returns the warehouse to the routing pool.
func (w *Warehouse) Activate() {
	w.active = true
}
