package money

import (
	"fmt"
)

// Equal reports whether both values share a currency and represent
// the same amount. Presentation metadata is not compared.
func (m *Money) Equal(other *Money) bool {
	if other == nil {
		return false
	}

	return m.currency == other.currency &&
		m.amount.Equal(other.amount)
}

// Cmp compares two values of the same currency and returns:
//
//	-1 if m < other
//	 0 if m = other
//	+1 if m > other
//
// Cmp returns an error if the values are denominated in different
// currencies.
func (m *Money) Cmp(other *Money) (int, error) {
	if other == nil || m.currency != other.currency {
		otherCode := "<nil>"
		if other != nil {
			otherCode = other.currency.Code()
		}

		return 0, fmt.Errorf(
			"%w: %s and %s",
			ErrCurrencyMismatch,
			m.currency.Code(),
			otherCode,
		)
	}

	return m.amount.Cmp(other.amount), nil
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m *Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}
