package exchange

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finwire/go-money/currency"
)

var (
	// ErrInvalidRate is returned when a rate is not positive or an
	// identity pair is given a rate other than one.
	ErrInvalidRate = errors.New("invalid exchange rate")

	// ErrRateNotFound is returned when no rate can be resolved for
	// a currency pair.
	ErrRateNotFound = errors.New("exchange rate not found")
)

// Rate is a unidirectional exchange rate: how many units of the
// quote currency one unit of the base currency buys.
type Rate struct {
	base  currency.Currency
	quote currency.Currency
	value decimal.Decimal
}

// NewRate creates a validated exchange rate. The rate must be
// positive, and a rate between a currency and itself must be one.
func NewRate(
	base, quote currency.Currency,
	value decimal.Decimal,
) (Rate, error) {
	if !value.IsPositive() {
		return Rate{}, fmt.Errorf(
			"%w: rate must be positive, got %s",
			ErrInvalidRate,
			value,
		)
	}

	if base == quote && !value.Equal(decimal.New(1, 0)) {
		return Rate{}, fmt.Errorf(
			"%w: identity rate for %s must be 1",
			ErrInvalidRate,
			base.Code(),
		)
	}

	return Rate{base: base, quote: quote, value: value}, nil
}

// MustNewRate is like [NewRate] but panics on invalid rates. It
// simplifies initialization of rate tables.
func MustNewRate(
	base, quote currency.Currency,
	value decimal.Decimal,
) Rate {
	r, err := NewRate(base, quote, value)
	if err != nil {
		panic(err)
	}

	return r
}

// Base returns the currency being exchanged.
func (r Rate) Base() currency.Currency {
	return r.base
}

// Quote returns the currency obtained in exchange for the base.
func (r Rate) Quote() currency.Currency {
	return r.quote
}

// Value returns the numeric rate.
func (r Rate) Value() decimal.Decimal {
	return r.value
}

// Inverse returns the rate for the opposite direction.
func (r Rate) Inverse() Rate {
	return Rate{
		base:  r.quote,
		quote: r.base,
		value: decimal.New(1, 0).Div(r.value),
	}
}

// String implements the fmt.Stringer interface.
func (r Rate) String() string {
	return fmt.Sprintf(
		"%s/%s %s",
		r.base.Code(),
		r.quote.Code(),
		r.value,
	)
}
