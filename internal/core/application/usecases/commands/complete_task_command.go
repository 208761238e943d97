package commands

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/guard"
)

var (
	ErrCompleteTaskCommandIsNotConstructed = errors.New(
		"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
	)
	ErrValidationCodeIsRequired = errors.New("validation code is required")
)

// CompleteTaskCommand represents a carrier handing the goods over, proving it
// with the validation code issued for the task.
type CompleteTaskCommand struct { //nolint:recvcheck //using for validation
	taskID kernel.UUID
	code   string

	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand creates a command to finish a task's transit.
func NewCompleteTaskCommand(taskID kernel.UUID, code string) (CompleteTaskCommand, error) {
	cmd := CompleteTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTaskID(taskID),
		cmd.setCode(code),
	); err != nil {
		return CompleteTaskCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}

// TaskID returns the task to complete.
func (c CompleteTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Code returns the validation code presented on handover.
func (c CompleteTaskCommand) Code() string {
	return c.code
}

func (c *CompleteTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	c.taskID = taskID
	return nil
}

func (c *CompleteTaskCommand) setCode(code string) error {
	if code == "" {
		return ErrValidationCodeIsRequired
	}
	c.code = code
	return nil
}
