package commands

import (
	"context"
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/core/domain/model/warehouse"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/core/ports"
	"parcelflow/internal/pkg/errs"
)

var (
	// ErrSegmentAlreadyClaimed is returned when the requested segment slot is
	// already occupied, including by a cancelled task.
	ErrSegmentAlreadyClaimed = errors.New("segment already claimed")
	// ErrWarehouseNotActive is returned when the requested warehouse exists
	// but is out of the routing pool.
	ErrWarehouseNotActive = errors.New("warehouse is not active")
)

// ClaimSegmentCommandHandler executes segment claims. A claim either creates
// a fresh segment task or, for segment 2, adopts the unclaimed pickup task
// the system auto-created when the goods were stored. The check-then-act
// sequence runs inside one transaction; the slot uniqueness constraint
// resolves races the checks cannot see.
//
// Example:
//
//	handler := NewClaimSegmentCommandHandler(uowFactory, notifier)
//	taskID, err := handler.Handle(ctx, cmd)
type ClaimSegmentCommandHandler struct {
	uowFactory ClaimUoWFactory
	notifier   notify
	gate       services.AssignmentGate
	issuer     services.ValidationCodeIssuer
	directory  services.WarehouseDirectory
}

// NewClaimSegmentCommandHandler creates a handler for segment claims.
// The notifier may be nil when no notification sink is wired.
func NewClaimSegmentCommandHandler(uowFactory ClaimUoWFactory, notifier ports.Notifier) ClaimSegmentCommandHandler {
	return ClaimSegmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notify{sink: notifier},
		gate:       services.NewAssignmentGate(),
		issuer:     services.NewValidationCodeIssuer(),
		directory:  services.NewWarehouseDirectory(),
	}
}

// Handle claims one segment of the trip for the carrier and returns the
// task's identifier.
//
// Preconditions: the request accepts segment claims, the carrier passes the
// gate, no complete task exists, and the segment slot is free. A free slot
// for segment 2 includes the adoption case: an auto-created pickup task
// without a carrier is claimed in place instead of inserting a new task.
// Claiming segment 2 does not require segment 1 to exist, but if a dropoff
// exists it must not be Cancelled.
func (h ClaimSegmentCommandHandler) Handle(ctx context.Context, command ClaimSegmentCommand) (kernel.UUID, error) {
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

	if err := h.gate.CheckSegment(carrierAggregate, requestAggregate); err != nil {
		return kernel.UUID{}, err
	}

	taskRepo := uow.TaskRepository()
	siblings, err := taskRepo.GetByRequestID(ctx, requestAggregate.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	var slotOccupant *task.Task
	for _, sibling := range siblings {
		if sibling.IsComplete() {
			return kernel.UUID{}, errs.NewConflictError(
				"request " + requestAggregate.ID().String() + " is covered by a complete task")
		}
		if sibling.Segment() == command.Segment() {
			slotOccupant = sibling
			continue
		}
		// a pickup may be claimed before any dropoff exists, but not next to
		// a cancelled one: the goods will never reach the warehouse
		if command.Segment() == task.SegmentPickup &&
			sibling.IsDropoff() && sibling.Status() == task.Cancelled {
			return kernel.UUID{}, errs.NewConflictError(
				"dropoff of request " + requestAggregate.ID().String() + " is cancelled")
		}
	}

	if slotOccupant != nil {
		return h.adoptPickup(ctx, uow, command, slotOccupant, requestAggregate)
	}

	warehouseAggregate, err := h.resolveWarehouse(ctx, uow, command, requestAggregate)
	if err != nil {
		return kernel.UUID{}, err
	}

	code, err := h.issuer.Issue()
	if err != nil {
		return kernel.UUID{}, err
	}

	origin, destination := segmentEndpoints(command.Segment(), requestAggregate, warehouseAggregate)
	carrierID := command.CarrierID()
	taskAggregate, err := task.NewSegmentTask(
		kernel.NewUUID(), requestAggregate.ID(), &carrierID, warehouseAggregate.ID(),
		command.Segment(), origin, destination, requestAggregate.Price(), code)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := taskRepo.Add(ctx, taskAggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.assignIfFullyCovered(ctx, uow, requestAggregate, append(siblings, taskAggregate)); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.taskClaimed(ctx, taskAggregate)

	return taskAggregate.ID(), nil
}

// adoptPickup attaches the carrier to an auto-created pickup task waiting for
// a claim. Anything else occupying the slot is a conflict, cancelled tasks
// included: a cancelled segment keeps its slot.
func (h ClaimSegmentCommandHandler) adoptPickup(
	ctx context.Context,
	uow ClaimUoW,
	command ClaimSegmentCommand,
	occupant *task.Task,
	requestAggregate *request.Request,
) (kernel.UUID, error) {
	if command.Segment() != task.SegmentPickup || occupant.IsClaimed() {
		return kernel.UUID{}, errs.NewConflictErrorWithCause(
			"segment "+command.Segment().String()+" of request "+requestAggregate.ID().String()+" is taken",
			ErrSegmentAlreadyClaimed)
	}

	if err := occupant.Claim(command.CarrierID()); err != nil {
		return kernel.UUID{}, err
	}
	if err := uow.TaskRepository().Update(ctx, occupant); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.taskClaimed(ctx, occupant)

	return occupant.ID(), nil
}

// resolveWarehouse loads the explicitly requested warehouse or routes through
// the one serving the destination city.
func (h ClaimSegmentCommandHandler) resolveWarehouse(
	ctx context.Context,
	uow ClaimUoW,
	command ClaimSegmentCommand,
	requestAggregate *request.Request,
) (*warehouse.Warehouse, error) {
	warehouseRepo := uow.WarehouseRepository()

	if command.WarehouseID() != nil {
		warehouseAggregate, err := warehouseRepo.Get(ctx, *command.WarehouseID())
		if err != nil {
			return nil, err
		}
		if !warehouseAggregate.IsActive() {
			return nil, errs.NewInvalidStateErrorWithCause(
				"warehouse "+warehouseAggregate.ID().String(), ErrWarehouseNotActive)
		}
		return warehouseAggregate, nil
	}

	pool, err := warehouseRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return h.directory.Nearest(requestAggregate.Destination().City(), pool)
}

// assignIfFullyCovered flips an Open request to Assigned once both segments
// have carriers. A request already InProgress stays put: its dropoff moved
// before the pickup was claimed.
func (h ClaimSegmentCommandHandler) assignIfFullyCovered(
	ctx context.Context,
	uow ClaimUoW,
	requestAggregate *request.Request,
	tasks []*task.Task,
) error {
	if requestAggregate.Status() != request.Open {
		return nil
	}

	var dropoffCarried, pickupCarried bool
	for _, t := range tasks {
		if t.Status() == task.Cancelled || !t.IsClaimed() {
			continue
		}
		if t.IsDropoff() {
			dropoffCarried = true
		}
		if t.IsPickup() {
			pickupCarried = true
		}
	}
	if !dropoffCarried || !pickupCarried {
		return nil
	}

	if err := requestAggregate.Assign(); err != nil {
		return err
	}
	return uow.RequestRepository().Update(ctx, requestAggregate)
}

// segmentEndpoints computes the leg's addresses: dropoff runs origin to
// warehouse, pickup runs warehouse to destination.
func segmentEndpoints(
	segment task.Segment,
	requestAggregate *request.Request,
	warehouseAggregate *warehouse.Warehouse,
) (kernel.Address, kernel.Address) {
	if segment == task.SegmentDropoff {
		return requestAggregate.Origin(), warehouseAggregate.Address()
	}
	return warehouseAggregate.Address(), requestAggregate.Destination()
}
