// Package queries contains read-only operations over the delivery store.
// Query handlers bypass the aggregates and read projections straight from
// the database with raw SQL, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrListClaimableTasksQueryIsNotConstructed = errors.New(
	"ListClaimableTasksQuery must be created via NewListClaimableTasksQuery constructor",
)

// ListClaimableTasksQuery retrieves delivery tasks waiting for a carrier:
// auto-created pickup segments without a claim. Cancelled tasks are excluded.
//
// Example:
//
//	query := NewListClaimableTasksQuery(true)
//	tasks, err := handler.Handle(ctx, query)
type ListClaimableTasksQuery struct {
	sortByCreation bool

	guard guard.ConstructorGuard
}

// NewListClaimableTasksQuery creates a query for claimable tasks.
// sortByCreation orders oldest first; otherwise ordering is by task id.
func NewListClaimableTasksQuery(sortByCreation bool) ListClaimableTasksQuery {
	return ListClaimableTasksQuery{
		sortByCreation: sortByCreation,
		guard:          guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListClaimableTasksQuery) Validate() error {
	return q.guard.Validate(ErrListClaimableTasksQueryIsNotConstructed)
}

// SortByCreation reports whether results are ordered oldest first.
func (q ListClaimableTasksQuery) SortByCreation() bool {
	return q.sortByCreation
}

// ClaimableTaskResponse describes one task a carrier could claim.
type ClaimableTaskResponse struct {
	TaskID            kernel.UUID
	RequestID         kernel.UUID
	Segment           int
	OriginStreet      string
	OriginCity        string
	DestinationStreet string
	DestinationCity   string
	Price             float64
	CreatedAt         time.Time
}
