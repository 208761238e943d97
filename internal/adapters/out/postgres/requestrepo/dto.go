// Package requestrepo provides data transfer objects and mapping functions
// for delivery request persistence. It implements the repository pattern for
// the request aggregate, converting between domain entities and database
// rows.
package requestrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting delivery
// request aggregates.
type RequestDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceKind        int
	RequesterID       uuid.UUID `gorm:"type:uuid;index"`
	OriginStreet      string
	OriginCity        string
	DestinationStreet string
	DestinationCity   string
	Price             float64
	Deadline          *time.Time
	Description       string
	Status            int `gorm:"index"`
	CreatedAt         time.Time
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:                aggregate.ID().Bytes(),
		SourceKind:        int(aggregate.Source().Kind()),
		RequesterID:       aggregate.Source().RequesterID().Bytes(),
		OriginStreet:      aggregate.Origin().Street(),
		OriginCity:        aggregate.Origin().City(),
		DestinationStreet: aggregate.Destination().Street(),
		DestinationCity:   aggregate.Destination().City(),
		Price:             aggregate.Price().Amount(),
		Deadline:          aggregate.Deadline(),
		Description:       aggregate.Description(),
		Status:            int(aggregate.Status()),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a request aggregate using
// RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}
	source, err := request.RestoreSource(request.SourceKind(dto.SourceKind), requesterID)
	if err != nil {
		return nil, err
	}
	origin, err := kernel.NewAddress(dto.OriginStreet, dto.OriginCity)
	if err != nil {
		return nil, err
	}
	destination, err := kernel.NewAddress(dto.DestinationStreet, dto.DestinationCity)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		id, source, origin, destination, price,
		dto.Deadline, dto.Description,
		request.Status(dto.Status), dto.CreatedAt,
	)
}
