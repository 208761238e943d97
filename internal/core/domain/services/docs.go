// Package services provides domain services that coordinate business rules
// across multiple aggregates of the delivery system.
//
// The package includes:
//   - AssignmentGate: decides whether a carrier may claim work on a request
//   - ValidationCodeIssuer: issues and verifies handover validation codes
//   - WarehouseDirectory: picks the warehouse serving a destination city
package services
