// Package guard provides the constructor-guard pattern used by value objects,
// entities and commands to ensure they are only created through their
// designated constructor functions. A zero-value struct fails validation,
// which keeps invariants intact when objects cross package boundaries.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error was provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// Embed it in a struct and set it with NewConstructorGuard inside the
// constructor; any zero-value instance will then fail Validate.
//
// Example:
//
//	type Price struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPrice(amount float64) (Price, error) {
//	    if amount < 0 {
//	        return Price{}, errors.New("amount cannot be negative")
//	    }
//	    return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
