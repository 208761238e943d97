package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrClaimCompleteCommandIsNotConstructed = errors.New(
	"ClaimCompleteCommand must be created via NewClaimCompleteCommand constructor",
)

// ClaimCompleteCommand represents a carrier's bid to take the whole trip of a
// delivery request.
//
// Example:
//
//	cmd, err := NewClaimCompleteCommand(requestID, carrierID)
//	if err != nil {
//	    return err
//	}
//	taskID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // another carrier won the race
//	}
type ClaimCompleteCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimCompleteCommand creates a command for a whole-trip claim.
func NewClaimCompleteCommand(requestID, carrierID kernel.UUID) (ClaimCompleteCommand, error) {
	cmd := ClaimCompleteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return ClaimCompleteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimCompleteCommand) Validate() error {
	return c.guard.Validate(ErrClaimCompleteCommandIsNotConstructed)
}

// RequestID returns the delivery request being claimed.
func (c ClaimCompleteCommand) RequestID() kernel.UUID {
	return c.requestID
}

// CarrierID returns the claiming carrier.
func (c ClaimCompleteCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *ClaimCompleteCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *ClaimCompleteCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}
