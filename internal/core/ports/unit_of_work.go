package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This keeps concurrent claim attempts isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Claim commands run
// their check-then-act sequence inside one transaction so that the slot
// uniqueness constraint resolves races at commit time.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// RequestRepository returns a RequestRepository bound to the current
	// transaction.
	RequestRepository() RequestRepository

	// TaskRepository returns a TaskRepository bound to the current
	// transaction.
	TaskRepository() TaskRepository

	// WarehouseRepository returns a WarehouseRepository bound to the current
	// transaction.
	WarehouseRepository() WarehouseRepository

	// CarrierRepository returns a CarrierRepository bound to the current
	// transaction.
	CarrierRepository() CarrierRepository
}
