package request

import (
	"fmt"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrSourceIsNotConstructed is returned when using a Source that was not
// created via NewIndividualSource or NewMerchantSource.
var ErrSourceIsNotConstructed = errs.NewValueIsRequiredError(
	"source must be created via NewIndividualSource or NewMerchantSource")

// SourceKind tags the requester behind a delivery request. A request has
// exactly one source; the two kinds are mutually exclusive by construction.
type SourceKind int

const (
	// SourceUnknown represents an invalid or undefined source kind.
	SourceUnknown SourceKind = iota
	// SourceIndividual marks a request placed by an individual requester.
	SourceIndividual
	// SourceMerchant marks a request placed by a merchant account.
	SourceMerchant
)

// String implements fmt.Stringer.
func (k SourceKind) String() string {
	switch k {
	case SourceIndividual:
		return "Individual"
	case SourceMerchant:
		return "Merchant"
	default:
		return "Unknown"
	}
}

// Validate checks the kind is one of the two defined requester kinds.
func (k SourceKind) Validate() error {
	if k != SourceIndividual && k != SourceMerchant {
		return errs.NewValueIsInvalidErrorWithCause("source kind is invalid",
			fmt.Errorf("%d is not a valid source kind", k))
	}
	return nil
}

// Source is a tagged value object identifying the requester of a delivery
// request: either an individual or a merchant, never both. The orchestration
// engine is agnostic to the tag and only reads shared request fields;
// the tag exists so external profile collaborators can resolve the owner.
type Source struct {
	kind        SourceKind
	requesterID kernel.UUID
	guard       guard.ConstructorGuard
}

// NewIndividualSource creates a Source for an individual requester.
func NewIndividualSource(requesterID kernel.UUID) (Source, error) {
	return newSource(SourceIndividual, requesterID)
}

// NewMerchantSource creates a Source for a merchant requester.
func NewMerchantSource(requesterID kernel.UUID) (Source, error) {
	return newSource(SourceMerchant, requesterID)
}

// RestoreSource reconstructs a Source from persistence, validating the kind.
func RestoreSource(kind SourceKind, requesterID kernel.UUID) (Source, error) {
	return newSource(kind, requesterID)
}

func newSource(kind SourceKind, requesterID kernel.UUID) (Source, error) {
	if err := kind.Validate(); err != nil {
		return Source{}, err
	}
	if err := requesterID.Validate(); err != nil {
		return Source{}, err
	}

	return Source{
		kind:        kind,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Source was created through a constructor.
func (s Source) Validate() error {
	return s.guard.Validate(ErrSourceIsNotConstructed)
}

// Kind returns the requester kind tag.
func (s Source) Kind() SourceKind {
	return s.kind
}

// RequesterID returns the identifier of the individual or merchant.
func (s Source) RequesterID() kernel.UUID {
	return s.requesterID
}
