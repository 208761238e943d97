package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSegmentsInfoQueryHandler reads a request's split-trip picture from the
// database.
//
// Example:
//
//	handler := NewGetSegmentsInfoQueryHandler(db)
//	info, err := handler.Handle(ctx, query)
type GetSegmentsInfoQueryHandler struct {
	db *gorm.DB
}

// NewGetSegmentsInfoQueryHandler creates a handler for segment-info queries.
func NewGetSegmentsInfoQueryHandler(db *gorm.DB) GetSegmentsInfoQueryHandler {
	return GetSegmentsInfoQueryHandler{db: db}
}

// Handle collects the request's tasks and derives the claim possibilities. A
// complete task blocks both segments; a cancelled segment blocks its own
// slot; an unclaimed pickup stays claimable.
func (h GetSegmentsInfoQueryHandler) Handle(
	ctx context.Context,
	query GetSegmentsInfoQuery,
) (GetSegmentsInfoQueryResponse, error) {
	resp := GetSegmentsInfoQueryResponse{}
	if err := query.Validate(); err != nil {
		return resp, err
	}
	resp.RequestID = query.RequestID()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			segment,
			status,
			origin_street,
			origin_city,
			destination_street,
			destination_city,
			price
		FROM tasks
		WHERE request_id = ?
		ORDER BY segment
	`, query.RequestID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var info SegmentInfo
		var id uuid.UUID
		var carrierID uuid.NullUUID
		var segment int
		var status int

		if err := rows.Scan(
			&id,
			&carrierID,
			&segment,
			&status,
			&info.OriginStreet,
			&info.OriginCity,
			&info.DestinationStreet,
			&info.DestinationCity,
			&info.Price,
		); err != nil {
			return resp, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return resp, idErr
		}
		info.TaskID = taskID
		info.Status = task.Status(status).String()

		if carrierID.Valid {
			carrier, idErr := kernel.UUIDFromBytes(carrierID.UUID[:])
			if idErr != nil {
				return resp, idErr
			}
			info.CarrierID = &carrier
		}

		switch task.Segment(segment) {
		case task.SegmentDropoff:
			resp.Dropoff = &info
		case task.SegmentPickup:
			resp.Pickup = &info
		default:
			resp.HasComplete = true
		}
	}

	if err := rows.Err(); err != nil {
		return resp, err
	}

	deriveClaims(&resp)
	return resp, nil
}

// deriveClaims fills the claim flags from the collected segments.
func deriveClaims(resp *GetSegmentsInfoQueryResponse) {
	if resp.HasComplete {
		return
	}

	resp.CanClaimDropoff = resp.Dropoff == nil
	switch {
	case resp.Pickup == nil:
		resp.CanClaimPickup = true
	case resp.Pickup.CarrierID == nil && resp.Pickup.Status == task.Assigned.String():
		// auto-created pickup awaiting adoption
		resp.CanClaimPickup = true
	}

	resp.AllSegmentsAssigned = resp.Dropoff != nil && resp.Pickup != nil &&
		resp.Dropoff.CarrierID != nil && resp.Pickup.CarrierID != nil &&
		resp.Dropoff.Status != task.Cancelled.String() &&
		resp.Pickup.Status != task.Cancelled.String()
}
