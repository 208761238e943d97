// Package warehouserepo provides data transfer objects and mapping functions
// for warehouse persistence.
package warehouserepo

import (
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse
// aggregates.
type WarehouseDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Street string
	City   string `gorm:"index"`
	Active bool   `gorm:"index"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Street: aggregate.Address().Street(),
		City:   aggregate.Address().City(),
		Active: aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a warehouse aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(dto.Street, dto.City)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, address, dto.Active)
}
