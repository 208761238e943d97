package queries

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListClaimableTasksQueryHandler reads claimable tasks from the database.
//
// Example:
//
//	handler := NewListClaimableTasksQueryHandler(db)
//	tasks, err := handler.Handle(ctx, NewListClaimableTasksQuery(true))
type ListClaimableTasksQueryHandler struct {
	db *gorm.DB
}

// NewListClaimableTasksQueryHandler creates a handler for claimable-task
// queries.
func NewListClaimableTasksQueryHandler(db *gorm.DB) ListClaimableTasksQueryHandler {
	return ListClaimableTasksQueryHandler{db: db}
}

// Handle returns every task without a carrier that is still claimable.
// Auto-created pickup segments surface here regardless of the parent
// request's status.
func (h ListClaimableTasksQueryHandler) Handle(
	ctx context.Context,
	query ListClaimableTasksQuery,
) ([]ClaimableTaskResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	order := "id"
	if query.SortByCreation() {
		order = "created_at"
	}

	tasks := make([]ClaimableTaskResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			request_id,
			segment,
			origin_street,
			origin_city,
			destination_street,
			destination_city,
			price,
			created_at
		FROM tasks
		WHERE carrier_id IS NULL
		  AND status != ?
		ORDER BY `+order, task.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ClaimableTaskResponse
		var id, requestID uuid.UUID

		if err := rows.Scan(
			&id,
			&requestID,
			&resp.Segment,
			&resp.OriginStreet,
			&resp.OriginCity,
			&resp.DestinationStreet,
			&resp.DestinationCity,
			&resp.Price,
			&resp.CreatedAt,
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

		tasks = append(tasks, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
