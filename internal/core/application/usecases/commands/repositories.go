// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Claim commands additionally rely
// on the task repository's unique slot constraint to resolve races.
package commands

import (
	"context"

	"parcelflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request repository within a
	// transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// TaskRepoFactory provides access to the task repository within a
	// transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within
	// a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// CarrierRepoFactory provides access to the carrier repository within a
	// transaction.
	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// TaskUoW manages transactions for task lifecycle operations. Task
	// transitions also touch the parent request's status, so the request
	// repository rides along.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
		RequestRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// ClaimUoW manages transactions for claim operations, which read the
	// carrier and warehouse pools and write both the task and the request.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	taskRepo := uow.TaskRepository()
	//	requestRepo := uow.RequestRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	ClaimUoW interface {
		TxManager
		RequestRepoFactory
		TaskRepoFactory
		WarehouseRepoFactory
		CarrierRepoFactory
	}

	// ClaimUoWFactory creates new claim unit of work instances.
	ClaimUoWFactory interface {
		Create() ClaimUoW
	}
)
