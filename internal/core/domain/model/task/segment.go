package task

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
)

// Segment identifies the slot of a partial delivery task within a split trip.
// A split trip routes through a warehouse: segment 1 drops the goods off
// there, segment 2 picks them up and carries them to the final destination.
type Segment int

const (
	// SegmentDropoff is the first leg: request origin to warehouse.
	SegmentDropoff Segment = 1
	// SegmentPickup is the second leg: warehouse to request destination.
	SegmentPickup Segment = 2
)

// Validate checks the segment index is one of the two defined legs.
func (s Segment) Validate() error {
	if s != SegmentDropoff && s != SegmentPickup {
		return errs.NewValueIsOutOfRangeError("segment", int(s), int(SegmentDropoff), int(SegmentPickup))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	switch s {
	case SegmentDropoff:
		return "Dropoff"
	case SegmentPickup:
		return "Pickup"
	default:
		return fmt.Sprintf("Segment(%d)", int(s))
	}
}

// Slot names the exclusive claim slot a task occupies within its request.
// A request allows one complete slot XOR one slot per segment; the storage
// layer backs this with a unique (request_id, slot) index.
type Slot string

const (
	// SlotComplete is occupied by a whole-trip task.
	SlotComplete Slot = "complete"
	// SlotDropoff is occupied by a segment-1 task.
	SlotDropoff Slot = "segment-1"
	// SlotPickup is occupied by a segment-2 task.
	SlotPickup Slot = "segment-2"
)

// slotForSegment maps a segment index to its claim slot.
func slotForSegment(s Segment) Slot {
	if s == SegmentDropoff {
		return SlotDropoff
	}
	return SlotPickup
}
