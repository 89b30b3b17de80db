package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/finwire/go-money/currency"
	"github.com/finwire/go-money/l10n"
)

// Money represents a monetary value: an arbitrary-precision amount
// denominated in an ISO 4217 currency, together with the
// presentation metadata the base decimal type does not track.
type Money struct {
	// amount of the value.
	amount decimal.Decimal

	// currency the amount is denominated in.
	currency currency.Currency

	// decimalPlaces is the precision hint used when presenting
	// the value. Derived values carry the maximum hint of their
	// operands.
	decimalPlaces int32

	// format holds per-value presentation overrides, stored by
	// value so they cannot be mutated through aliasing.
	format l10n.Options

	// localized overrides the configuration-level localization
	// flag when set.
	localized *bool

	// cfg is the injected configuration; nil falls back to the
	// package defaults.
	cfg *Config
}

// settings collects construction options before the value is built,
// so that "explicitly set" can be told apart from "left at default".
type settings struct {
	places    *int32
	format    *l10n.Options
	localized *bool
	cfg       *Config
}

// Option configures a value at construction time.
type Option func(*settings)

// WithDecimalPlaces sets an explicit precision hint. Without it the
// configuration default applies.
func WithDecimalPlaces(places int32) Option {
	return func(s *settings) {
		s.places = &places
	}
}

// WithFormat attaches presentation overrides to the value. The
// options are copied; later changes to the caller's copy are not
// observed.
func WithFormat(opts l10n.Options) Option {
	return func(s *settings) {
		s.format = &opts
	}
}

// WithLocalized overrides the configuration-level localization flag
// for this value.
func WithLocalized(localized bool) Option {
	return func(s *settings) {
		s.localized = &localized
	}
}

// WithConfig injects the configuration the value and all values
// derived from it will read.
func WithConfig(cfg *Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// New creates a monetary value from a decimal amount and a currency
// code. The currency code must resolve against the ISO 4217 table.
func New(
	amount decimal.Decimal,
	code string,
	opts ...Option,
) (*Money, error) {
	cur, err := currency.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("parsing currency: %w", err)
	}

	return FromDecimal(amount, cur, opts...), nil
}

// FromDecimal creates a monetary value from a decimal amount and an
// already resolved currency.
func FromDecimal(
	amount decimal.Decimal,
	cur currency.Currency,
	opts ...Option,
) *Money {
	var s settings

	for _, opt := range opts {
		opt(&s)
	}

	cfg := s.cfg
	if cfg == nil {
		cfg = defaultConfig
	}

	places := cfg.DecimalPlaces
	if s.places != nil {
		places = *s.places
	}

	m := &Money{
		amount:        amount,
		currency:      cur,
		decimalPlaces: places,
		localized:     s.localized,
		cfg:           cfg,
	}

	if s.format != nil {
		m.format = *s.format
	}

	return m
}

// FromString creates a monetary value from a decimal string such as
// "1234.56" and a currency code.
func FromString(
	amount string,
	code string,
	opts ...Option,
) (*Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	return New(d, code, opts...)
}

// FromFloat64 creates a monetary value from a float amount. NaN and
// infinities are rejected.
func FromFloat64(
	amount float64,
	code string,
	opts ...Option,
) (*Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	return New(decimal.NewFromFloat(amount), code, opts...)
}

// FromMinorUnits creates a monetary value from an integer number of
// the currency's minor units, eg. cents for USD.
func FromMinorUnits(
	units int64,
	code string,
	opts ...Option,
) (*Money, error) {
	cur, err := currency.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("parsing currency: %w", err)
	}

	return FromDecimal(
		decimal.New(units, -cur.MinorUnits()),
		cur,
		opts...,
	), nil
}

// Must returns m if err is nil and panics otherwise.
func Must(m *Money, err error) *Money {
	if err != nil {
		panic(err)
	}

	return m
}

// Amount returns the decimal amount.
func (m *Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency the amount is denominated in.
func (m *Money) Currency() currency.Currency {
	return m.currency
}

// DecimalPlaces returns the precision hint.
func (m *Money) DecimalPlaces() int32 {
	return m.decimalPlaces
}

// FormatOptions returns a copy of the per-value presentation
// overrides.
func (m *Money) FormatOptions() l10n.Options {
	return m.format
}

// Config returns the configuration the value was created with.
func (m *Money) Config() *Config {
	return m.config()
}

func (m *Money) config() *Config {
	if m.cfg != nil {
		return m.cfg
	}

	return defaultConfig
}

// derive builds the result of a transformation on m. The precision
// hint is the maximum of the operands' hints and the remaining
// presentation metadata is carried over from m, so chained
// operations never silently lose formatting information.
func (m *Money) derive(amount decimal.Decimal, other *Money) *Money {
	places := m.decimalPlaces
	if other != nil && other.decimalPlaces > places {
		places = other.decimalPlaces
	}

	return &Money{
		amount:        amount,
		currency:      m.currency,
		decimalPlaces: places,
		format:        m.format,
		localized:     m.localized,
		cfg:           m.cfg,
	}
}
