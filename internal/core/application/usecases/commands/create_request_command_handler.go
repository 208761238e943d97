package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
)

// CreateRequestCommandHandler persists newly published delivery requests.
//
// Example:
//
//	handler := NewCreateRequestCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request publication.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the request aggregate from the command and stores it in Open
// status.
func (h CreateRequestCommandHandler) Handle(ctx context.Context, command CreateRequestCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	source, err := request.RestoreSource(command.SourceKind(), command.RequesterID())
	if err != nil {
		return err
	}
	origin, err := kernel.NewAddress(command.OriginStreet(), command.OriginCity())
	if err != nil {
		return err
	}
	destination, err := kernel.NewAddress(command.DestinationStreet(), command.DestinationCity())
	if err != nil {
		return err
	}
	price, err := kernel.NewPrice(command.Price())
	if err != nil {
		return err
	}

	aggregate, err := request.NewRequest(
		command.RequestID(), source, origin, destination, price,
		command.Deadline(), command.Description())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RequestRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
