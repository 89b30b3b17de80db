package money

import (
	"github.com/shopspring/decimal"
)

// Neg returns the value with the opposite sign, keeping m's
// presentation metadata.
func (m *Money) Neg() *Money {
	return m.derive(m.amount.Neg(), nil)
}

// Abs returns the absolute value, keeping m's presentation metadata.
func (m *Money) Abs() *Money {
	return m.derive(m.amount.Abs(), nil)
}

// Pos returns a copy of the value, keeping m's presentation
// metadata. It exists for symmetry with [Money.Neg].
func (m *Money) Pos() *Money {
	return m.derive(m.amount, nil)
}

// Round rounds the amount to the given number of digits after the
// decimal point using the base decimal rounding (half away from
// zero). The result keeps m's precision hint and format overrides.
func (m *Money) Round(places int32) *Money {
	return m.derive(m.amount.Round(places), nil)
}

// RoundingMode selects how quantization resolves ties and
// directions.
type RoundingMode int

// Available rounding modes, mapped onto the base decimal type's
// rounding family.
const (
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp RoundingMode = iota

	// RoundHalfEven rounds to nearest, ties to even.
	RoundHalfEven

	// RoundDown rounds toward zero.
	RoundDown

	// RoundUp rounds away from zero.
	RoundUp

	// RoundCeiling rounds toward positive infinity.
	RoundCeiling

	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// quantizeSettings collects quantization options.
type quantizeSettings struct {
	places int32
	mode   RoundingMode
}

// QuantizeOption configures a quantization.
type QuantizeOption func(*quantizeSettings)

// QuantizePlaces sets the target exponent as a number of digits
// after the decimal point. Without it the currency's canonical
// minor-unit digit count applies.
func QuantizePlaces(places int32) QuantizeOption {
	return func(s *quantizeSettings) {
		s.places = places
	}
}

// QuantizeRounding sets the rounding mode. Without it ties round
// half-up.
func QuantizeRounding(mode RoundingMode) QuantizeOption {
	return func(s *quantizeSettings) {
		s.mode = mode
	}
}

// Quantize rounds the amount to a fixed exponent, by default the
// currency's canonical minor-unit digit count with half-up
// rounding, and zero-pads the result to exactly that exponent.
//
// Unlike the other transformations, the result carries default
// presentation metadata rather than m's: quantizing resets a value
// to its canonical shape.
func (m *Money) Quantize(opts ...QuantizeOption) *Money {
	s := quantizeSettings{
		places: m.currency.MinorUnits(),
		mode:   RoundHalfUp,
	}

	for _, opt := range opts {
		opt(&s)
	}

	rounded := roundTo(m.amount, s.places, s.mode)

	// StringFixed only pads here: the amount is already rounded to
	// at most s.places digits, and re-parsing keeps the trailing
	// zeros so the exponent is exact.
	quantized := decimal.RequireFromString(
		rounded.StringFixed(s.places),
	)

	return &Money{
		amount:        quantized,
		currency:      m.currency,
		decimalPlaces: m.config().DecimalPlaces,
		cfg:           m.cfg,
	}
}

func roundTo(
	d decimal.Decimal,
	places int32,
	mode RoundingMode,
) decimal.Decimal {
	switch mode {
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	default:
		return d.Round(places)
	}
}
