package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetCarrierTasksQueryIsNotConstructed = errors.New(
	"GetCarrierTasksQuery must be created via NewGetCarrierTasksQuery constructor",
)

// GetCarrierTasksQuery retrieves every delivery task a carrier holds,
// terminal ones included, for the carrier's worksheet view.
type GetCarrierTasksQuery struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierTasksQuery creates a query for a carrier's tasks.
func NewGetCarrierTasksQuery(carrierID kernel.UUID) (GetCarrierTasksQuery, error) {
	query := GetCarrierTasksQuery{
		guard: guard.NewConstructorGuard(),
	}
	if err := carrierID.Validate(); err != nil {
		return GetCarrierTasksQuery{}, err
	}
	query.carrierID = carrierID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierTasksQueryIsNotConstructed)
}

// CarrierID returns the carrier whose tasks are listed.
func (q GetCarrierTasksQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

// CarrierTaskResponse describes one task on a carrier's worksheet.
type CarrierTaskResponse struct {
	TaskID            kernel.UUID
	RequestID         kernel.UUID
	Segment           int
	Status            string
	OriginStreet      string
	OriginCity        string
	DestinationStreet string
	DestinationCity   string
	Price             float64
	CreatedAt         time.Time
	StartedAt         *time.Time
	FinishedAt        *time.Time
}
