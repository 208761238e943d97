package services

import (
	"errors"

	"parcelflow/internal/core/domain/model/carrier"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/pkg/errs"
)

// ErrCarrierNotEligible is returned when a carrier who has not passed
// verification attempts to claim a delivery task.
var ErrCarrierNotEligible = errors.New("carrier is not eligible to claim tasks")

// ErrRequestNotClaimable is returned when the delivery request is no longer
// accepting claims.
var ErrRequestNotClaimable = errors.New("request is not claimable")

// AssignmentGate is a domain service deciding whether a carrier may claim
// work on a delivery request. It checks carrier eligibility and the request's
// lifecycle state; slot exclusivity is enforced separately by the task
// repository's unique slot constraint.
type AssignmentGate struct{}

// NewAssignmentGate creates a new AssignmentGate instance.
func NewAssignmentGate() AssignmentGate {
	return AssignmentGate{}
}

// Check validates that the carrier may claim the whole trip. The request must
// still be Open: a complete claim covers everything, so any prior claim or
// transit blocks it.
func (g AssignmentGate) Check(c *carrier.Carrier, r *request.Request) error {
	if err := g.CheckCarrier(c); err != nil {
		return err
	}

	if err := r.Validate(); err != nil {
		return err
	}
	if !r.IsClaimable() {
		return errs.NewInvalidStateErrorWithCause(
			"request "+r.ID().String()+" is not claimable in status "+r.Status().String(),
			ErrRequestNotClaimable)
	}

	return nil
}

// CheckSegment validates that the carrier may claim one segment of the trip.
// Segment claims stay open while the sibling segment is already moving, so
// InProgress requests still accept them; Assigned means the trip is fully
// covered and terminal states accept nothing.
func (g AssignmentGate) CheckSegment(c *carrier.Carrier, r *request.Request) error {
	if err := g.CheckCarrier(c); err != nil {
		return err
	}

	if err := r.Validate(); err != nil {
		return err
	}
	if s := r.Status(); s != request.Open && s != request.InProgress {
		return errs.NewInvalidStateErrorWithCause(
			"request "+r.ID().String()+" does not accept segment claims in status "+s.String(),
			ErrRequestNotClaimable)
	}

	return nil
}

// CheckCarrier validates carrier eligibility only.
func (g AssignmentGate) CheckCarrier(c *carrier.Carrier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsEligible() {
		return errs.NewInvalidStateErrorWithCause(
			"carrier "+c.ID().String()+" is not eligible", ErrCarrierNotEligible)
	}
	return nil
}
