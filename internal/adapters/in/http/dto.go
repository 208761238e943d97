package http

import "time"

// AddressDTO is a street/city pair in request and response bodies.
type AddressDTO struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// CreateRequestBody is the payload for publishing a delivery request.
type CreateRequestBody struct {
	SourceKind  string     `json:"source_kind"`
	RequesterID string     `json:"requester_id"`
	Origin      AddressDTO `json:"origin"`
	Destination AddressDTO `json:"destination"`
	Price       float64    `json:"price"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Description string     `json:"description,omitempty"`
}

// CreateRequestResponse returns the identifier of the published request.
type CreateRequestResponse struct {
	RequestID string `json:"request_id"`
}

// ClaimCompleteBody is the payload for claiming a whole trip.
type ClaimCompleteBody struct {
	CarrierID string `json:"carrier_id"`
}

// ClaimSegmentBody is the payload for claiming one leg of a split trip.
// WarehouseID may be omitted to let the system route to the nearest hub.
type ClaimSegmentBody struct {
	CarrierID   string  `json:"carrier_id"`
	Segment     int     `json:"segment"`
	WarehouseID *string `json:"warehouse_id,omitempty"`
}

// ClaimResponse returns the identifier of the created task.
type ClaimResponse struct {
	TaskID string `json:"task_id"`
}

// CompleteTaskBody carries the validation code presented on handover.
type CompleteTaskBody struct {
	ValidationCode string `json:"validation_code"`
}

// ClaimableTaskDTO describes one task a carrier could claim.
type ClaimableTaskDTO struct {
	TaskID      string     `json:"task_id"`
	RequestID   string     `json:"request_id"`
	Segment     int        `json:"segment"`
	Origin      AddressDTO `json:"origin"`
	Destination AddressDTO `json:"destination"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SegmentInfoDTO describes one existing segment of a split trip.
type SegmentInfoDTO struct {
	TaskID      string     `json:"task_id"`
	CarrierID   *string    `json:"carrier_id,omitempty"`
	Status      string     `json:"status"`
	Origin      AddressDTO `json:"origin"`
	Destination AddressDTO `json:"destination"`
	Price       float64    `json:"price"`
}

// SegmentsInfoResponse is the split-trip picture of one request.
type SegmentsInfoResponse struct {
	RequestID           string          `json:"request_id"`
	Dropoff             *SegmentInfoDTO `json:"dropoff,omitempty"`
	Pickup              *SegmentInfoDTO `json:"pickup,omitempty"`
	HasComplete         bool            `json:"has_complete"`
	AllSegmentsAssigned bool            `json:"all_segments_assigned"`
	CanClaimDropoff     bool            `json:"can_claim_dropoff"`
	CanClaimPickup      bool            `json:"can_claim_pickup"`
}

// CarrierTaskDTO describes one task on a carrier's worksheet.
type CarrierTaskDTO struct {
	TaskID      string     `json:"task_id"`
	RequestID   string     `json:"request_id"`
	Segment     int        `json:"segment"`
	Status      string     `json:"status"`
	Origin      AddressDTO `json:"origin"`
	Destination AddressDTO `json:"destination"`
	Price       float64    `json:"price"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// StoredGoodsDTO describes one parcel sitting at a warehouse.
type StoredGoodsDTO struct {
	TaskID      string     `json:"task_id"`
	RequestID   string     `json:"request_id"`
	Destination AddressDTO `json:"destination"`
	StoredAt    time.Time  `json:"stored_at"`
}

// Error is the uniform error body of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
