package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrCancelTaskCommandIsNotConstructed = errors.New(
	"CancelTaskCommand must be created via NewCancelTaskCommand constructor",
)

// CancelTaskCommand represents withdrawing a delivery task before completion.
type CancelTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelTaskCommand creates a command to cancel a task.
func NewCancelTaskCommand(taskID kernel.UUID) (CancelTaskCommand, error) {
	cmd := CancelTaskCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setTaskID(taskID); err != nil {
		return CancelTaskCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTaskCommand) Validate() error {
	return c.guard.Validate(ErrCancelTaskCommandIsNotConstructed)
}

// TaskID returns the task to cancel.
func (c CancelTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c *CancelTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	c.taskID = taskID
	return nil
}
