package task

import (
	"errors"
	"time"

	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through one of the package constructors.
var ErrTaskIsNotConstructed = errors.New(
	"Task must be created via NewCompleteTask, NewSegmentTask or RestoreTask constructor")

// ErrTaskAlreadyClaimed is returned when claiming a task that already has a
// carrier attached.
var ErrTaskAlreadyClaimed = errors.New("task already has a carrier")

// Task is a unit of carrier work attached to a delivery request: either the
// whole trip, or one segment of a split trip routed through a warehouse.
//
// Invariants:
//   - a complete task has no segment and no warehouse
//   - a segment task always references a warehouse
//   - only an auto-created pickup segment may exist without a carrier;
//     it must be claimed before it can start
//   - a dropoff segment finishes as Stored, every other task as Delivered
type Task struct {
	id             kernel.UUID
	requestID      kernel.UUID
	carrierID      *kernel.UUID
	warehouseID    *kernel.UUID
	segment        Segment // zero for a complete task
	origin         kernel.Address
	destination    kernel.Address
	price          kernel.Price
	status         Status
	validationCode string
	createdAt      time.Time
	startedAt      *time.Time
	finishedAt     *time.Time

	guard guard.ConstructorGuard
}

// NewCompleteTask creates an Assigned whole-trip task for the given carrier.
func NewCompleteTask(
	id kernel.UUID,
	requestID kernel.UUID,
	carrierID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	price kernel.Price,
	validationCode string,
) (*Task, error) {
	if err := carrierID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredError("carrierID")
	}
	return newTask(id, requestID, &carrierID, nil, 0, origin, destination, price, validationCode)
}

// NewSegmentTask creates an Assigned segment task. A dropoff segment requires
// a carrier; a pickup segment may be created without one when the system
// auto-creates it after the goods are stored, in which case a carrier claims
// it later.
func NewSegmentTask(
	id kernel.UUID,
	requestID kernel.UUID,
	carrierID *kernel.UUID,
	warehouseID kernel.UUID,
	segment Segment,
	origin kernel.Address,
	destination kernel.Address,
	price kernel.Price,
	validationCode string,
) (*Task, error) {
	if err := segment.Validate(); err != nil {
		return nil, err
	}
	if err := warehouseID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredError("warehouseID")
	}
	if segment == SegmentDropoff && carrierID == nil {
		return nil, errs.NewValueIsRequiredError("carrierID")
	}
	return newTask(id, requestID, carrierID, &warehouseID, segment, origin, destination, price, validationCode)
}

func newTask(
	id kernel.UUID,
	requestID kernel.UUID,
	carrierID *kernel.UUID,
	warehouseID *kernel.UUID,
	segment Segment,
	origin kernel.Address,
	destination kernel.Address,
	price kernel.Price,
	validationCode string,
) (*Task, error) {
	t := &Task{
		segment:   segment,
		status:    Assigned,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setRequestID(requestID),
		t.setCarrierID(carrierID),
		t.setWarehouseID(warehouseID),
		t.setOrigin(origin),
		t.setDestination(destination),
		t.setPrice(price),
		t.setValidationCode(validationCode),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a Task aggregate from persistence.
func RestoreTask(
	id kernel.UUID,
	requestID kernel.UUID,
	carrierID *kernel.UUID,
	warehouseID *kernel.UUID,
	segment Segment,
	origin kernel.Address,
	destination kernel.Address,
	price kernel.Price,
	status Status,
	validationCode string,
	createdAt time.Time,
	startedAt *time.Time,
	finishedAt *time.Time,
) (*Task, error) {
	if segment != 0 {
		if err := segment.Validate(); err != nil {
			return nil, err
		}
	}
	t, err := newTask(id, requestID, carrierID, warehouseID, segment, origin, destination, price, validationCode)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	t.status = status
	t.createdAt = createdAt
	t.startedAt = startedAt
	t.finishedAt = finishedAt

	return t, nil
}

// Validate ensures the Task was created through a constructor.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by identifier.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// RequestID returns the identifier of the owning delivery request.
func (t *Task) RequestID() kernel.UUID {
	return t.requestID
}

// CarrierID returns the carrier attached to the task, nil for an unclaimed
// auto-created pickup segment.
func (t *Task) CarrierID() *kernel.UUID {
	return t.carrierID
}

// WarehouseID returns the intermediate warehouse, nil for a complete task.
func (t *Task) WarehouseID() *kernel.UUID {
	return t.warehouseID
}

// Segment returns the segment index, zero for a complete task.
func (t *Task) Segment() Segment {
	return t.segment
}

// Origin returns the task's departure address.
func (t *Task) Origin() kernel.Address {
	return t.origin
}

// Destination returns the task's arrival address.
func (t *Task) Destination() kernel.Address {
	return t.destination
}

// Price returns the payout attached to the task.
func (t *Task) Price() kernel.Price {
	return t.price
}

// Status returns the current lifecycle status.
func (t *Task) Status() Status {
	return t.status
}

// ValidationCode returns the code the recipient must present on handover.
func (t *Task) ValidationCode() string {
	return t.validationCode
}

// CreatedAt returns the task creation time.
func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

// StartedAt returns the transit start time, nil before Start.
func (t *Task) StartedAt() *time.Time {
	return t.startedAt
}

// FinishedAt returns the terminal transition time, nil before completion.
func (t *Task) FinishedAt() *time.Time {
	return t.finishedAt
}

// IsComplete reports whether the task covers the whole trip.
func (t *Task) IsComplete() bool {
	return t.segment == 0
}

// IsDropoff reports whether the task is the first leg of a split trip.
func (t *Task) IsDropoff() bool {
	return t.segment == SegmentDropoff
}

// IsPickup reports whether the task is the second leg of a split trip.
func (t *Task) IsPickup() bool {
	return t.segment == SegmentPickup
}

// IsClaimed reports whether a carrier is attached.
func (t *Task) IsClaimed() bool {
	return t.carrierID != nil
}

// Slot returns the exclusive claim slot the task occupies within its request.
func (t *Task) Slot() Slot {
	if t.IsComplete() {
		return SlotComplete
	}
	return slotForSegment(t.segment)
}

// Claim attaches a carrier to an unclaimed pickup segment. Only an Assigned
// task without a carrier can be claimed.
func (t *Task) Claim(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("carrierID")
	}
	if t.carrierID != nil {
		return errs.NewConflictErrorWithCause(
			"task "+t.id.String()+" already has a carrier", ErrTaskAlreadyClaimed)
	}
	if t.status != Assigned {
		return errs.NewInvalidStateError("cannot claim task in status " + t.status.String())
	}
	t.carrierID = &carrierID
	return nil
}

// Start moves the task into transit and records the departure time. The task
// must have a carrier.
func (t *Task) Start() error {
	if t.carrierID == nil {
		return errs.NewInvalidStateError("cannot start task without a carrier")
	}
	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	t.status = newStatus
	t.startedAt = &now
	return nil
}

// Complete resolves the task into its terminal success state: Stored for a
// dropoff segment, Delivered otherwise. Records the arrival time.
func (t *Task) Complete() error {
	newStatus, err := t.status.Finish(t.IsDropoff())
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	t.status = newStatus
	t.finishedAt = &now
	return nil
}

// Cancel withdraws the task. A cancelled task keeps occupying its claim slot
// so the request cannot be re-claimed through the same slot.
func (t *Task) Cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	t.status = newStatus
	t.finishedAt = &now
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return errs.NewValueIsRequiredError("requestID")
	}
	t.requestID = requestID
	return nil
}

func (t *Task) setCarrierID(carrierID *kernel.UUID) error {
	if carrierID == nil {
		return nil
	}
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrierID", err)
	}
	t.carrierID = carrierID
	return nil
}

func (t *Task) setWarehouseID(warehouseID *kernel.UUID) error {
	if warehouseID == nil {
		return nil
	}
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("warehouseID", err)
	}
	t.warehouseID = warehouseID
	return nil
}

func (t *Task) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("origin", err)
	}
	t.origin = origin
	return nil
}

func (t *Task) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("destination", err)
	}
	t.destination = destination
	return nil
}

func (t *Task) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	t.price = price
	return nil
}

func (t *Task) setValidationCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("validationCode")
	}
	t.validationCode = code
	return nil
}
