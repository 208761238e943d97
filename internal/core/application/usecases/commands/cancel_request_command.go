package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrCancelRequestCommandIsNotConstructed = errors.New(
	"CancelRequestCommand must be created via NewCancelRequestCommand constructor",
)

// CancelRequestCommand represents the requester or an operator withdrawing a
// delivery request.
type CancelRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelRequestCommand creates a command to cancel a request.
func NewCancelRequestCommand(requestID kernel.UUID) (CancelRequestCommand, error) {
	cmd := CancelRequestCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setRequestID(requestID); err != nil {
		return CancelRequestCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelRequestCommand) Validate() error {
	return c.guard.Validate(ErrCancelRequestCommandIsNotConstructed)
}

// RequestID returns the request to cancel.
func (c CancelRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

func (c *CancelRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}
