package commands

import (
	"context"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/pkg/errs"
)

// ClaimCompleteCommandHandler executes whole-trip claims. The entire
// check-then-act sequence runs inside one transaction; when two carriers race
// for the same request, the slot uniqueness constraint makes exactly one
// commit win and the loser observes errs.ErrConflict.
//
// Example:
//
//	handler := NewClaimCompleteCommandHandler(uowFactory, notifier)
//	taskID, err := handler.Handle(ctx, cmd)
type ClaimCompleteCommandHandler struct {
	uowFactory ClaimUoWFactory
	notifier   notify
	gate       services.AssignmentGate
	issuer     services.ValidationCodeIssuer
}

// NewClaimCompleteCommandHandler creates a handler for whole-trip claims.
// The notifier may be nil when no notification sink is wired.
func NewClaimCompleteCommandHandler(uowFactory ClaimUoWFactory, notifier ports.Notifier) ClaimCompleteCommandHandler {
	return ClaimCompleteCommandHandler{
		uowFactory: uowFactory,
		notifier:   notify{sink: notifier},
		gate:       services.NewAssignmentGate(),
		issuer:     services.NewValidationCodeIssuer(),
	}
}

// Handle claims the whole trip for the carrier. Preconditions: the request is
// Open, the carrier passes the assignment gate, and no task occupies any slot
// of the request. On success the request becomes Assigned and the new task's
// identifier is returned.
func (h ClaimCompleteCommandHandler) Handle(ctx context.Context, command ClaimCompleteCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierAggregate, err := uow.CarrierRepository().Get(ctx, command.CarrierID())
	if err != nil {
		return kernel.UUID{}, err
	}
	requestAggregate, err := uow.RequestRepository().Get(ctx, command.RequestID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := h.gate.Check(carrierAggregate, requestAggregate); err != nil {
		return kernel.UUID{}, err
	}

	taskRepo := uow.TaskRepository()
	existing, err := taskRepo.GetByRequestID(ctx, requestAggregate.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(existing) > 0 {
		return kernel.UUID{}, errs.NewConflictError(
			"request " + requestAggregate.ID().String() + " already has delivery tasks")
	}

	code, err := h.issuer.Issue()
	if err != nil {
		return kernel.UUID{}, err
	}

	taskAggregate, err := task.NewCompleteTask(
		kernel.NewUUID(), requestAggregate.ID(), carrierAggregate.ID(),
		requestAggregate.Origin(), requestAggregate.Destination(),
		requestAggregate.Price(), code)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := taskRepo.Add(ctx, taskAggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err := requestAggregate.Assign(); err != nil {
		return kernel.UUID{}, err
	}
	if err := uow.RequestRepository().Update(ctx, requestAggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.taskClaimed(ctx, taskAggregate)

	return taskAggregate.ID(), nil
}
