package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/pkg/guard"
)

var ErrClaimSegmentCommandIsNotConstructed = errors.New(
	"ClaimSegmentCommand must be created via NewClaimSegmentCommand constructor",
)

// ClaimSegmentCommand represents a carrier's bid to take one segment of a
// split trip. The warehouse is optional: when absent, the handler routes the
// trip through the warehouse serving the destination city.
//
// Example:
//
//	cmd, err := NewClaimSegmentCommand(requestID, carrierID, task.SegmentDropoff, nil)
//	if err != nil {
//	    return err
//	}
//	taskID, err := handler.Handle(ctx, cmd)
type ClaimSegmentCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	carrierID   kernel.UUID
	segment     task.Segment
	warehouseID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimSegmentCommand creates a command for a segment claim. warehouseID
// may be nil to let the system pick the warehouse.
func NewClaimSegmentCommand(
	requestID kernel.UUID,
	carrierID kernel.UUID,
	segment task.Segment,
	warehouseID *kernel.UUID,
) (ClaimSegmentCommand, error) {
	cmd := ClaimSegmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCarrierID(carrierID),
		cmd.setSegment(segment),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return ClaimSegmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimSegmentCommand) Validate() error {
	return c.guard.Validate(ErrClaimSegmentCommandIsNotConstructed)
}

// RequestID returns the delivery request being claimed.
func (c ClaimSegmentCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CarrierID returns the claiming carrier.
func (c ClaimSegmentCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Segment returns the claimed leg of the split trip.
func (c ClaimSegmentCommand) Segment() task.Segment {
	return c.segment
}

// WarehouseID returns the requested warehouse, nil to auto-route.
func (c ClaimSegmentCommand) WarehouseID() *kernel.UUID {
	return c.warehouseID
}

func (c *ClaimSegmentCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *ClaimSegmentCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}

func (c *ClaimSegmentCommand) setSegment(segment task.Segment) error {
	if err := segment.Validate(); err != nil {
		return err
	}
	c.segment = segment
	return nil
}

func (c *ClaimSegmentCommand) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID == nil {
		return nil
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	c.warehouseID = warehouseID
	return nil
}
