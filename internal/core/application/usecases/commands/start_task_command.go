package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var ErrStartTaskCommandIsNotConstructed = errors.New(
	"StartTaskCommand must be created via NewStartTaskCommand constructor",
)

// StartTaskCommand represents a carrier departing with the goods.
type StartTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartTaskCommand creates a command to put a task in transit.
func NewStartTaskCommand(taskID kernel.UUID) (StartTaskCommand, error) {
	cmd := StartTaskCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setTaskID(taskID); err != nil {
		return StartTaskCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartTaskCommand) Validate() error {
	return c.guard.Validate(ErrStartTaskCommandIsNotConstructed)
}

// TaskID returns the task to start.
func (c StartTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

func (c *StartTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	c.taskID = taskID
	return nil
}
