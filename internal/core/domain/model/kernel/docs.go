// Package kernel contains shared value objects used across the domain model:
// UUID identifiers, postal addresses, and prices. All types follow the
// constructor-guard pattern so zero values fail validation.
package kernel
