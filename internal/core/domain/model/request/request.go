package request

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned when a Request instance was not
// created through NewRequest or RestoreRequest.
var ErrRequestIsNotConstructed = errors.New(
	"Request must be created via NewRequest or RestoreRequest constructor")

// Request is the delivery-request aggregate root: a requester's intent to
// move goods from an origin to a destination for a proposed price. It owns
// the request-level status machine; the attached delivery tasks are separate
// aggregates coordinated by the application layer.
//
// Invariants:
//   - exactly one source (individual or merchant), fixed at creation
//   - origin and destination are valid addresses
//   - status transitions only move forward, except to Cancelled
//   - the stored origin/destination never change once created; warehouse
//     rewrites for split trips are display-time concerns of the read side
type Request struct {
	id          kernel.UUID
	source      Source
	origin      kernel.Address
	destination kernel.Address
	price       kernel.Price
	deadline    *time.Time
	description string
	status      Status
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates an Open delivery request. The deadline is optional and
// the description may be empty; everything else is validated.
func NewRequest(
	id kernel.UUID,
	source Source,
	origin kernel.Address,
	destination kernel.Address,
	price kernel.Price,
	deadline *time.Time,
	description string,
) (*Request, error) {
	req := &Request{
		status:      Open,
		deadline:    deadline,
		description: description,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		req.setID(id),
		req.setSource(source),
		req.setOrigin(origin),
		req.setDestination(destination),
		req.setPrice(price),
	); err != nil {
		return nil, err
	}

	return req, nil
}

// RestoreRequest reconstructs a Request aggregate from persistence, including
// its stored status and creation time.
func RestoreRequest(
	id kernel.UUID,
	source Source,
	origin kernel.Address,
	destination kernel.Address,
	price kernel.Price,
	deadline *time.Time,
	description string,
	status Status,
	createdAt time.Time,
) (*Request, error) {
	req, err := NewRequest(id, source, origin, destination, price, deadline, description)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	req.status = status
	req.createdAt = createdAt

	return req, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares two requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// Source returns the requester source tag.
func (r *Request) Source() Source {
	return r.source
}

// Origin returns the pickup address of the goods.
func (r *Request) Origin() kernel.Address {
	return r.origin
}

// Destination returns the final delivery address.
func (r *Request) Destination() kernel.Address {
	return r.destination
}

// Price returns the proposed price for the whole trip.
func (r *Request) Price() kernel.Price {
	return r.price
}

// Deadline returns the optional delivery deadline, nil when none was set.
func (r *Request) Deadline() *time.Time {
	return r.deadline
}

// Description returns the free-form item description.
func (r *Request) Description() string {
	return r.description
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// CreatedAt returns the request creation time.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// IsClaimable reports whether the request can still accept new claims.
func (r *Request) IsClaimable() bool {
	return r.status == Open
}

// Assign marks the trip as fully covered. Only valid while Open.
func (r *Request) Assign() error {
	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Start marks the request as in transit. Valid from Open or Assigned;
// a no-op error when the request already progressed past that point is
// avoided by callers checking Status first.
func (r *Request) Start() error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Complete marks the trip as delivered to its final destination.
func (r *Request) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

// Cancel withdraws the request. Valid from any non-terminal state.
// Cancelling a request does not cascade to its tasks.
func (r *Request) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}
	r.status = newStatus
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	r.source = source
	return nil
}

func (r *Request) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	r.origin = origin
	return nil
}

func (r *Request) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}
	r.destination = destination
	return nil
}

func (r *Request) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	r.price = price
	return nil
}
