package commands

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/pkg/guard"
)

var (
	ErrCreateRequestCommandIsNotConstructed = errors.New(
		"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
	)
	ErrSourceKindIsInvalid = errors.New("source kind must be individual or merchant")
	ErrPriceIsInvalid      = errors.New("price must not be negative")
)

// CreateRequestCommand represents a request to publish a new delivery
// request. Encapsulates the requester source, trip endpoints and the
// proposed price.
//
// Example:
//
//	cmd, err := NewCreateRequestCommand(
//	    kernel.NewUUID(), request.SourceIndividual, requesterID,
//	    "10 Rue A", "Paris", "5 Rue B", "Lyon", 25.0, nil, "two boxes")
//	if err != nil {
//	    return fmt.Errorf("invalid request data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID         kernel.UUID
	sourceKind        request.SourceKind
	requesterID       kernel.UUID
	originStreet      string
	originCity        string
	destinationStreet string
	destinationCity   string
	price             float64
	deadline          *time.Time
	description       string

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command to publish a delivery request.
// The deadline is optional and the description may be empty; everything else
// is validated.
func NewCreateRequestCommand(
	requestID kernel.UUID,
	sourceKind request.SourceKind,
	requesterID kernel.UUID,
	originStreet string,
	originCity string,
	destinationStreet string,
	destinationCity string,
	price float64,
	deadline *time.Time,
	description string,
) (CreateRequestCommand, error) {
	cmd := CreateRequestCommand{
		deadline:    deadline,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setSourceKind(sourceKind),
		cmd.setRequesterID(requesterID),
		cmd.setAddresses(originStreet, originCity, destinationStreet, destinationCity),
		cmd.setPrice(price),
	); err != nil {
		return CreateRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the identifier the new request will carry.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// SourceKind returns the requester source tag.
func (c CreateRequestCommand) SourceKind() request.SourceKind {
	return c.sourceKind
}

// RequesterID returns the identifier of the individual or merchant.
func (c CreateRequestCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// OriginStreet returns the pickup street.
func (c CreateRequestCommand) OriginStreet() string {
	return c.originStreet
}

// OriginCity returns the pickup city.
func (c CreateRequestCommand) OriginCity() string {
	return c.originCity
}

// DestinationStreet returns the delivery street.
func (c CreateRequestCommand) DestinationStreet() string {
	return c.destinationStreet
}

// DestinationCity returns the delivery city.
func (c CreateRequestCommand) DestinationCity() string {
	return c.destinationCity
}

// Price returns the proposed price for the whole trip.
func (c CreateRequestCommand) Price() float64 {
	return c.price
}

// Deadline returns the optional delivery deadline.
func (c CreateRequestCommand) Deadline() *time.Time {
	return c.deadline
}

// Description returns the free-form item description.
func (c CreateRequestCommand) Description() string {
	return c.description
}

func (c *CreateRequestCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}
	c.requestID = requestID
	return nil
}

func (c *CreateRequestCommand) setSourceKind(kind request.SourceKind) error {
	if kind != request.SourceIndividual && kind != request.SourceMerchant {
		return ErrSourceKindIsInvalid
	}
	c.sourceKind = kind
	return nil
}

func (c *CreateRequestCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	c.requesterID = requesterID
	return nil
}

func (c *CreateRequestCommand) setAddresses(
	originStreet, originCity, destinationStreet, destinationCity string,
) error {
	origin, err := kernel.NewAddress(originStreet, originCity)
	if err != nil {
		return err
	}
	destination, err := kernel.NewAddress(destinationStreet, destinationCity)
	if err != nil {
		return err
	}
	c.originStreet = origin.Street()
	c.originCity = origin.City()
	c.destinationStreet = destination.Street()
	c.destinationCity = destination.City()
	return nil
}

func (c *CreateRequestCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}
