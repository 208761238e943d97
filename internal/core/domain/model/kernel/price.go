package kernel

import (
	"fmt"

	"parcelflow/internal/pkg/errs"
	"parcelflow/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use a Price that
// was not created via NewPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice constructor")

// Price is an immutable value object for the amount agreed between requester
// and carrier. Amounts are non-negative; currency handling is out of scope,
// payment settlement belongs to external collaborators.
type Price struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price. The amount must not be negative.
func NewPrice(amount float64) (Price, error) {
	if amount < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", amount))
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Price was created through NewPrice.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the price amount.
func (p Price) Amount() float64 {
	return p.amount
}

// IsEqual reports whether two prices carry the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String implements fmt.Stringer for logging and display.
func (p Price) String() string {
	return fmt.Sprintf("%.2f", p.amount)
}
