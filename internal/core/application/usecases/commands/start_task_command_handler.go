package commands

import (
	"context"
	"errors"

	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/pkg/errs"
)

// ErrDropoffNotStored is returned when a pickup segment tries to start before
// the goods arrived at the warehouse.
var ErrDropoffNotStored = errors.New("dropoff segment is not stored yet")

// StartTaskCommandHandler puts a delivery task in transit and moves the
// parent request to InProgress.
//
// Example:
//
//	handler := NewStartTaskCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
type StartTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewStartTaskCommandHandler creates a handler for starting tasks.
func NewStartTaskCommandHandler(uowFactory TaskUoWFactory) StartTaskCommandHandler {
	return StartTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle starts the task. The task must be Assigned and have a carrier. A
// pickup segment additionally requires its sibling dropoff to be Stored: the
// goods must physically be at the warehouse before the second leg departs.
func (h StartTaskCommandHandler) Handle(ctx context.Context, command StartTaskCommand) error {
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

	if taskAggregate.IsPickup() {
		if err := h.checkDropoffStored(ctx, uow, taskAggregate); err != nil {
			return err
		}
	}

	if err := taskAggregate.Start(); err != nil {
		return err
	}
	if err := taskRepo.Update(ctx, taskAggregate); err != nil {
		return err
	}

	requestAggregate, err := uow.RequestRepository().Get(ctx, taskAggregate.RequestID())
	if err != nil {
		return err
	}
	if s := requestAggregate.Status(); s == request.Open || s == request.Assigned {
		if err := requestAggregate.Start(); err != nil {
			return err
		}
		if err := uow.RequestRepository().Update(ctx, requestAggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// checkDropoffStored enforces the predecessor gate of a pickup segment.
func (h StartTaskCommandHandler) checkDropoffStored(
	ctx context.Context, uow TaskUoW, pickup *task.Task,
) error {
	siblings, err := uow.TaskRepository().GetByRequestID(ctx, pickup.RequestID())
	if err != nil {
		return err
	}

	for _, sibling := range siblings {
		if sibling.IsDropoff() && sibling.Status() == task.Stored {
			return nil
		}
	}
	return errs.NewInvalidStateErrorWithCause(
		"pickup "+pickup.ID().String()+" cannot start", ErrDropoffNotStored)
}
