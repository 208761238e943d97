// Package carrier contains the Carrier aggregate: the courier who claims and
// executes delivery tasks.
package carrier

import (
	"errors"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New(
	"Carrier must be created via NewCarrier or RestoreCarrier constructor")

// Carrier is a courier registered on the platform. Only eligible carriers may
// claim delivery tasks; eligibility is managed outside the claim flow, for
// example after document verification.
type Carrier struct {
	id       kernel.UUID
	name     string
	eligible bool

	guard guard.ConstructorGuard
}

// NewCarrier creates a carrier that is not yet eligible to claim tasks.
func NewCarrier(id kernel.UUID, name string) (*Carrier, error) {
	return RestoreCarrier(id, name, false)
}

// RestoreCarrier reconstructs a Carrier from persistence.
func RestoreCarrier(id kernel.UUID, name string, eligible bool) (*Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Carrier{
		id:       id,
		name:     name,
		eligible: eligible,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Carrier was created through a constructor.
func (c *Carrier) Validate() error {
	if c == nil {
		return ErrCarrierIsNotConstructed
	}
	return c.guard.Validate(ErrCarrierIsNotConstructed)
}

// IsEqual compares two carriers by identifier.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's display name.
func (c *Carrier) Name() string {
	return c.name
}

// IsEligible reports whether the carrier may claim delivery tasks.
func (c *Carrier) IsEligible() bool {
	return c.eligible
}

// MarkEligible grants the carrier the right to claim tasks.
func (c *Carrier) MarkEligible() {
	c.eligible = true
}

// MarkIneligible revokes the carrier's right to claim tasks. Tasks already
// claimed are unaffected.
func (c *Carrier) MarkIneligible() {
	c.eligible = false
}
