package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoredInWarehouseQueryHandler reads a warehouse's stored parcels from
// the database. The destination shown is the parent request's final
// destination, joined in so warehouse staff see where each parcel goes next.
type GetStoredInWarehouseQueryHandler struct {
	db *gorm.DB
}

// NewGetStoredInWarehouseQueryHandler creates a handler for stored-goods
// queries.
func NewGetStoredInWarehouseQueryHandler(db *gorm.DB) GetStoredInWarehouseQueryHandler {
	return GetStoredInWarehouseQueryHandler{db: db}
}

// Handle returns dropoff tasks Stored at the warehouse, oldest first. A
// parcel drops off the list once its pickup leg departs or delivers; the
// dropoff row itself stays in Stored, a terminal status.
func (h GetStoredInWarehouseQueryHandler) Handle(
	ctx context.Context,
	query GetStoredInWarehouseQuery,
) ([]StoredGoodsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	goods := make([]StoredGoodsResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.request_id,
			r.destination_street,
			r.destination_city,
			t.finished_at
		FROM tasks t
		JOIN requests r ON r.id = t.request_id
		WHERE t.warehouse_id = ?
		  AND t.segment = ?
		  AND t.status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM tasks p
			WHERE p.request_id = t.request_id
			  AND p.segment = ?
			  AND p.status IN (?, ?)
		  )
		ORDER BY t.finished_at
	`, query.WarehouseID().Bytes(), task.SegmentDropoff, task.Stored,
		task.SegmentPickup, task.InProgress, task.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp StoredGoodsResponse
		var id, requestID uuid.UUID

		if err := rows.Scan(
			&id,
			&requestID,
			&resp.DestinationStreet,
			&resp.DestinationCity,
			&resp.StoredAt,
		); err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.TaskID = taskID

		reqID, idErr := kernel.UUIDFromBytes(requestID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RequestID = reqID

		goods = append(goods, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goods, nil
}
