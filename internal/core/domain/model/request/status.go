package request

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery request.
// Transitions only move forward, except that Cancelled is reachable from any
// non-terminal state:
//
//	Open ──> Assigned ──> InProgress ──> Completed
//	  │          │             │
//	  └──────────┴─────────────┴──> Cancelled
//
// A segment claim may start transit before both segments are taken, so Start
// is allowed directly from Open as well as from Assigned.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open is the initial status: the request is published and claimable.
	Open

	// Assigned indicates the trip is fully covered: a complete task exists,
	// or both segments have carriers.
	Assigned

	// InProgress indicates at least one task of the request is in transit.
	InProgress

	// Completed indicates the goods reached the final destination.
	// Terminal state.
	Completed

	// Cancelled indicates the requester or an operator withdrew the request.
	// Terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:       "Open",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks the Status holds one of the defined lifecycle values.
// Used when reconstructing requests from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Assign transitions the status to Assigned. Only an Open request can become
// Assigned; anything later means the trip is already covered.
func (s Status) Assign() (Status, error) {
	if s != Open {
		return 0, errs.NewInvalidStateErrorWithCause("request cannot be assigned",
			fmt.Errorf("%s is not a valid status to assign", s))
	}
	return Assigned, nil
}

// Start transitions the status to InProgress. Valid from Open (a single
// segment starting before its sibling is claimed) and from Assigned.
func (s Status) Start() (Status, error) {
	if s != Open && s != Assigned {
		return 0, errs.NewInvalidStateErrorWithCause("request cannot start",
			fmt.Errorf("%s is not a valid status to start", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed. Valid only from InProgress:
// a trip completes when its final task finishes transit.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidStateErrorWithCause("request cannot be completed",
			fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateErrorWithCause("request cannot be cancelled",
			fmt.Errorf("%s is a terminal status", s))
	}
	return Cancelled, nil
}
