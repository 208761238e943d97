// Package task contains the DeliveryTask aggregate: the unit of carrier work
// attached to a request. A task is either a whole trip or one of two segments
// of a split trip routed through a warehouse. Dropoff segments terminate as
// Stored, everything else as Delivered; Cancelled is reachable from any
// non-terminal state and keeps the task's claim slot occupied.
package task
