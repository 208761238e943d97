package queries

import (
	"context"
	"database/sql"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCarrierTasksQueryHandler reads a carrier's worksheet from the database.
type GetCarrierTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetCarrierTasksQueryHandler creates a handler for carrier worksheet
// queries.
func NewGetCarrierTasksQueryHandler(db *gorm.DB) GetCarrierTasksQueryHandler {
	return GetCarrierTasksQueryHandler{db: db}
}

// Handle returns every task the carrier holds, newest first.
func (h GetCarrierTasksQueryHandler) Handle(
	ctx context.Context,
	query GetCarrierTasksQuery,
) ([]CarrierTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]CarrierTaskResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			segment,
			status,
			origin_street,
			origin_city,
			destination_street,
			destination_city,
			price,
			created_at,
			started_at,
			finished_at
		FROM tasks
		WHERE carrier_id = ?
		ORDER BY created_at DESC
	`, query.CarrierID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp CarrierTaskResponse
		var id, requestID uuid.UUID
		var status int
		var startedAt, finishedAt sql.NullTime

		if err := rows.Scan(
			&id,
			&requestID,
			&resp.Segment,
			&status,
			&resp.OriginStreet,
			&resp.OriginCity,
			&resp.DestinationStreet,
			&resp.DestinationCity,
			&resp.Price,
			&resp.CreatedAt,
			&startedAt,
			&finishedAt,
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

		resp.Status = task.Status(status).String()
		if startedAt.Valid {
			t := startedAt.Time
			resp.StartedAt = &t
		}
		if finishedAt.Valid {
			t := finishedAt.Time
			resp.FinishedAt = &t
		}

		tasks = append(tasks, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
