// Package taskrepo provides data transfer objects and mapping functions for
// delivery task persistence. Besides the repository pattern for the task
// aggregate it carries the claim-exclusivity constraint: a unique index on
// (request_id, slot) lets the database arbitrate racing claims.
//
// The index serializes same-slot races only. A complete claim racing a
// segment claim inserts under different slot values, so both rows can land;
// closing that window would take a request-row lock (SELECT ... FOR UPDATE)
// inside the claim transaction.
package taskrepo

import (
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting delivery task
// aggregates. The (request_id, slot) pair is unique: at most one complete
// task, one dropoff and one pickup per request, cancelled rows included.
type TaskDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID         uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_tasks_request_slot"`
	Slot              string     `gorm:"type:varchar(16);uniqueIndex:idx_tasks_request_slot"`
	CarrierID         *uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID       *uuid.UUID `gorm:"type:uuid;index"`
	Segment           int
	OriginStreet      string
	OriginCity        string
	DestinationStreet string
	DestinationCity   string
	Price             float64
	Status            int    `gorm:"index"`
	ValidationCode    string `gorm:"type:varchar(16)"`
	CreatedAt         time.Time
	StartedAt         *time.Time
	FinishedAt        *time.Time
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// fromDomain converts a task aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	var carrierID *uuid.UUID
	if id := aggregate.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}
	var warehouseID *uuid.UUID
	if id := aggregate.WarehouseID(); id != nil {
		raw := id.Bytes()
		warehouseID = &raw
	}

	return TaskDTO{
		ID:                aggregate.ID().Bytes(),
		RequestID:         aggregate.RequestID().Bytes(),
		Slot:              string(aggregate.Slot()),
		CarrierID:         carrierID,
		WarehouseID:       warehouseID,
		Segment:           int(aggregate.Segment()),
		OriginStreet:      aggregate.Origin().Street(),
		OriginCity:        aggregate.Origin().City(),
		DestinationStreet: aggregate.Destination().Street(),
		DestinationCity:   aggregate.Destination().City(),
		Price:             aggregate.Price().Amount(),
		Status:            int(aggregate.Status()),
		ValidationCode:    aggregate.ValidationCode(),
		CreatedAt:         aggregate.CreatedAt(),
		StartedAt:         aggregate.StartedAt(),
		FinishedAt:        aggregate.FinishedAt(),
	}
}

// toDomain converts a database DTO to a task aggregate using RestoreTask.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}
	var warehouseID *kernel.UUID
	if dto.WarehouseID != nil {
		wID, warehouseErr := kernel.UUIDFromBytes((*dto.WarehouseID)[:])
		if warehouseErr != nil {
			return nil, warehouseErr
		}
		warehouseID = &wID
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

	return task.RestoreTask(
		id, requestID, carrierID, warehouseID,
		task.Segment(dto.Segment), origin, destination, price,
		task.Status(dto.Status), dto.ValidationCode,
		dto.CreatedAt, dto.StartedAt, dto.FinishedAt,
	)
}
