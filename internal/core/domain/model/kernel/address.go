package kernel

import (
	"errors"
	"fmt"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an Address
// that was not created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object holding a street line and a city.
// The city is what the warehouse directory matches against; the street line
// is free-form and carried for display and handoff.
//
// Example:
//
//	addr, err := kernel.NewAddress("10 Rue A", "Paris")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address. Both street and city must be non-empty.
func NewAddress(street string, city string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setStreet(street), addr.setCity(city)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was created through NewAddress.
// The zero value fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// IsEqual reports whether two addresses have the same street and city.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city
}

// String implements fmt.Stringer for logging and display.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.street, a.city)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
