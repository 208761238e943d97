package queries

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrGetSegmentsInfoQueryIsNotConstructed = errors.New(
	"GetSegmentsInfoQuery must be created via NewGetSegmentsInfoQuery constructor",
)

// GetSegmentsInfoQuery retrieves the split-trip picture of one delivery
// request: which segments exist, who carries them, and which claims are
// still possible.
//
// Example:
//
//	query, err := NewGetSegmentsInfoQuery(requestID)
//	if err != nil {
//	    return err
//	}
//	info, err := handler.Handle(ctx, query)
type GetSegmentsInfoQuery struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSegmentsInfoQuery creates a query for a request's segment layout.
func NewGetSegmentsInfoQuery(requestID kernel.UUID) (GetSegmentsInfoQuery, error) {
	query := GetSegmentsInfoQuery{
		guard: guard.NewConstructorGuard(),
	}
	if err := requestID.Validate(); err != nil {
		return GetSegmentsInfoQuery{}, err
	}
	query.requestID = requestID
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSegmentsInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetSegmentsInfoQueryIsNotConstructed)
}

// RequestID returns the request whose segments are inspected.
func (q GetSegmentsInfoQuery) RequestID() kernel.UUID {
	return q.requestID
}

// SegmentInfo describes one existing segment task.
type SegmentInfo struct {
	TaskID            kernel.UUID
	CarrierID         *kernel.UUID
	Status            string
	OriginStreet      string
	OriginCity        string
	DestinationStreet string
	DestinationCity   string
	Price             float64
}

// GetSegmentsInfoQueryResponse is the split-trip picture of a request.
// The displayed pickup origin is the warehouse address once a dropoff
// segment exists; the stored request itself is never rewritten.
type GetSegmentsInfoQueryResponse struct {
	RequestID           kernel.UUID
	Dropoff             *SegmentInfo
	Pickup              *SegmentInfo
	HasComplete         bool
	AllSegmentsAssigned bool
	CanClaimDropoff     bool
	CanClaimPickup      bool
}
