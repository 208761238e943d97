package commands

import (
	"context"
)

// CancelTaskCommandHandler withdraws a delivery task. Cancelling does not
// cascade: sibling segments and the parent request keep their state, and the
// cancelled task keeps occupying its claim slot.
type CancelTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

// NewCancelTaskCommandHandler creates a handler for cancelling tasks.
func NewCancelTaskCommandHandler(uowFactory TaskUoWFactory) CancelTaskCommandHandler {
	return CancelTaskCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the task. Valid from Assigned or InProgress.
func (h CancelTaskCommandHandler) Handle(ctx context.Context, command CancelTaskCommand) error {
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

	if err := taskAggregate.Cancel(); err != nil {
		return err
	}
	if err := taskRepo.Update(ctx, taskAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
