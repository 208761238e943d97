package task

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery task.
type Status int

const (
	// Unknown is the zero value and never valid for a constructed task.
	Unknown Status = iota
	// Assigned means the task exists and waits for its carrier to depart.
	// An auto-created pickup segment is Assigned even before a carrier
	// claims it.
	Assigned
	// InProgress means the carrier is in transit.
	InProgress
	// Delivered means the goods reached the task's destination address.
	Delivered
	// Stored means a dropoff segment finished at the warehouse; the goods
	// await the pickup segment.
	Stored
	// Cancelled means the task was withdrawn before completion.
	Cancelled
)

// Validate checks the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case Assigned, InProgress, Delivered, Stored, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidError(fmt.Sprintf("task status %d", int(s)))
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Stored || s == Cancelled
}

// Start moves the task into transit. Only an Assigned task can start.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewInvalidStateErrorWithCause("task cannot start",
			fmt.Errorf("%s is not a valid status to start", s))
	}
	return InProgress, nil
}

// Finish resolves an InProgress task into its terminal success state:
// Stored for a dropoff segment, Delivered otherwise.
func (s Status) Finish(toWarehouse bool) (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewInvalidStateErrorWithCause("task cannot complete",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	if toWarehouse {
		return Stored, nil
	}
	return Delivered, nil
}

// Cancel withdraws the task. Valid from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateErrorWithCause("task cannot be cancelled",
			fmt.Errorf("%s is a terminal status", s))
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Assigned:
		return "Assigned"
	case InProgress:
		return "InProgress"
	case Delivered:
		return "Delivered"
	case Stored:
		return "Stored"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
