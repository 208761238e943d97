package commands

import (
	"context"
)

// CancelRequestCommandHandler withdraws a delivery request. Cancelling the
// request does not cascade to its tasks: a carrier already in transit
// resolves their task separately.
type CancelRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCancelRequestCommandHandler creates a handler for cancelling requests.
func NewCancelRequestCommandHandler(uowFactory RequestUoWFactory) CancelRequestCommandHandler {
	return CancelRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels the request. Valid from any non-terminal state.
func (h CancelRequestCommandHandler) Handle(ctx context.Context, command CancelRequestCommand) error {
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

	requestRepo := uow.RequestRepository()
	requestAggregate, err := requestRepo.Get(ctx, command.RequestID())
	if err != nil {
		return err
	}

	if err := requestAggregate.Cancel(); err != nil {
		return err
	}
	if err := requestRepo.Update(ctx, requestAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
