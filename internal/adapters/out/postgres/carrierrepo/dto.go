// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence.
package carrierrepo

import (
	"parcelflow/internal/core/domain/model/carrier"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates.
type CarrierDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	Eligible bool `gorm:"index"`
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

// fromDomain converts a carrier aggregate to its database representation.
func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Eligible: aggregate.IsEligible(),
	}
}

// toDomain converts a database DTO to a carrier aggregate.
func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, dto.Eligible)
}
