package kernel

import (
	"fmt"
	"math"

	"siparisqr/internal/pkg/errs"
)

// minorUnitsPerMajor is the number of kuruş in one lira.
const minorUnitsPerMajor = 100

// Money is a non-negative amount in minor currency units. All menus of the
// platform are priced in a single currency, so no currency code is carried.
//
// Integer minor units keep totals exact: 2 x 25.00 is always 50.00.
type Money struct {
	minor int64
}

// NewMoney creates an amount from minor units. Negative amounts are rejected.
func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", minor, 0, int64(math.MaxInt64))
	}
	return Money{minor: minor}, nil
}

// MoneyFromMajor creates an amount from whole major units, e.g. 25 for 25.00.
func MoneyFromMajor(major int64) (Money, error) {
	if major > math.MaxInt64/minorUnitsPerMajor {
		return Money{}, errs.NewValueIsOutOfRangeError("money", major, 0, int64(math.MaxInt64/minorUnitsPerMajor))
	}
	return NewMoney(major * minorUnitsPerMajor)
}

// Zero is the empty amount.
func Zero() Money {
	return Money{}
}

// Minor returns the amount in minor units.
func (m Money) Minor() int64 {
	return m.minor
}

// IsZero reports whether the amount is 0.00.
func (m Money) IsZero() bool {
	return m.minor == 0
}

// Add returns m + other. Overflow is reported instead of wrapping.
func (m Money) Add(other Money) (Money, error) {
	if other.minor > math.MaxInt64-m.minor {
		return Money{}, errs.NewValueIsOutOfRangeError("money", "overflow", 0, int64(math.MaxInt64))
	}
	return Money{minor: m.minor + other.minor}, nil
}

// Mul returns m x quantity. Quantity must be positive.
func (m Money) Mul(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	if m.minor != 0 && int64(quantity) > math.MaxInt64/m.minor {
		return Money{}, errs.NewValueIsOutOfRangeError("money", "overflow", 0, int64(math.MaxInt64))
	}
	return Money{minor: m.minor * int64(quantity)}, nil
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.minor == other.minor
}

// String formats the amount with two decimals, e.g. "50.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/minorUnitsPerMajor, m.minor%minorUnitsPerMajor)
}
