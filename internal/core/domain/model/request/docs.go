// Package request contains the DeliveryRequest aggregate: the requester's
// intent to move goods from origin to destination, its tagged source
// (individual or merchant), and the forward-only status machine
// Open -> Assigned -> InProgress -> Completed, with Cancelled reachable from
// any non-terminal state.
package request
