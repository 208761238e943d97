package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
)

// CompleteTaskCommandHandler finishes a task's transit after verifying the
// handover validation code. Completing a dropoff stores the goods and
// auto-creates the pickup counterpart; completing the final leg completes the
// whole request.
//
// Example:
//
//	handler := NewCompleteTaskCommandHandler(uowFactory, notifier)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrValidationCodeMismatch) {
//	    // wrong code presented
//	}
type CompleteTaskCommandHandler struct {
	uowFactory ClaimUoWFactory
	notifier   notify
	issuer     services.ValidationCodeIssuer
}

// NewCompleteTaskCommandHandler creates a handler for completing tasks.
// The notifier may be nil when no notification sink is wired.
func NewCompleteTaskCommandHandler(uowFactory ClaimUoWFactory, notifier ports.Notifier) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{
		uowFactory: uowFactory,
		notifier:   notify{sink: notifier},
		issuer:     services.NewValidationCodeIssuer(),
	}
}

// Handle completes the task. The task must be InProgress and the presented
// code must match the issued one exactly. A dropoff segment resolves to
// Stored and spawns the unclaimed pickup counterpart unless one already
// exists; every other task resolves to Delivered. When the delivered task
// finishes the trip, the request becomes Completed.
func (h CompleteTaskCommandHandler) Handle(ctx context.Context, command CompleteTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	taskAggregate, err := taskRepo.Get(ctx, command.TaskID())
	if err != nil {
		return err
	}

	if err := h.issuer.Verify(taskAggregate.ValidationCode(), command.Code()); err != nil {
		return err
	}

	if err := taskAggregate.Complete(); err != nil {
		return err
	}
	if err := taskRepo.Update(ctx, taskAggregate); err != nil {
		return err
	}

	var pickup *task.Task
	if taskAggregate.Status() == task.Stored {
		pickup, err = h.spawnPickup(ctx, uow, taskAggregate)
		if err != nil {
			return err
		}
	}

	if taskAggregate.Status() == task.Delivered {
		if err := h.completeRequest(ctx, uow, taskAggregate); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.taskCompleted(ctx, taskAggregate)
	if pickup != nil {
		h.notifier.pickupAwaitingClaim(ctx, pickup)
	}

	return nil
}

// spawnPickup creates the unclaimed pickup counterpart of a stored dropoff:
// warehouse to the request's destination, same agreed price, fresh code.
// Returns nil when a pickup task already exists.
func (h CompleteTaskCommandHandler) spawnPickup(
	ctx context.Context, uow ClaimUoW, dropoff *task.Task,
) (*task.Task, error) {
	taskRepo := uow.TaskRepository()
	siblings, err := taskRepo.GetByRequestID(ctx, dropoff.RequestID())
	if err != nil {
		return nil, err
	}
	for _, sibling := range siblings {
		if sibling.IsPickup() {
			return nil, nil
		}
	}

	requestAggregate, err := uow.RequestRepository().Get(ctx, dropoff.RequestID())
	if err != nil {
		return nil, err
	}
	warehouseAggregate, err := uow.WarehouseRepository().Get(ctx, *dropoff.WarehouseID())
	if err != nil {
		return nil, err
	}

	code, err := h.issuer.Issue()
	if err != nil {
		return nil, err
	}

	pickup, err := task.NewSegmentTask(
		kernel.NewUUID(), dropoff.RequestID(), nil, warehouseAggregate.ID(),
		task.SegmentPickup, warehouseAggregate.Address(), requestAggregate.Destination(),
		dropoff.Price(), code)
	if err != nil {
		return nil, err
	}

	if err := taskRepo.Add(ctx, pickup); err != nil {
		return nil, err
	}
	return pickup, nil
}

// completeRequest flips the parent request to Completed when the delivered
// task finishes the trip: a complete task or the pickup segment.
func (h CompleteTaskCommandHandler) completeRequest(
	ctx context.Context, uow ClaimUoW, delivered *task.Task,
) error {
	if delivered.IsDropoff() {
		return nil
	}

	requestAggregate, err := uow.RequestRepository().Get(ctx, delivered.RequestID())
	if err != nil {
		return err
	}
	if requestAggregate.Status() != request.InProgress {
		return nil
	}

	if err := requestAggregate.Complete(); err != nil {
		return err
	}
	return uow.RequestRepository().Update(ctx, requestAggregate)
}
