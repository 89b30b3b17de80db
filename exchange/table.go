package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/finwire/go-money/currency"
	"github.com/finwire/go-money/money"
)

// ensure RateTable satisfies the money package's conversion hook.
var _ money.Converter = (*RateTable)(nil)

// pair keys the rate map by alphabetic codes.
type pair struct {
	from string
	to   string
}

// RateTable is an in-memory rate source. Lookups fall back to the
// inverse pair and, when an intermediate base currency is
// configured, to triangulating through it.
type RateTable struct {
	rates map[pair]decimal.Decimal
	via   currency.Currency
	log   *zap.Logger
}

// Option configures a RateTable.
type Option func(*RateTable)

// WithLogger attaches a structured logger for conversion
// diagnostics. Without it logging is disabled.
func WithLogger(log *zap.Logger) Option {
	return func(t *RateTable) {
		t.log = log
	}
}

// WithBaseCurrency sets an intermediate currency used to triangulate
// pairs that have no direct or inverse rate.
func WithBaseCurrency(via currency.Currency) Option {
	return func(t *RateTable) {
		t.via = via
	}
}

// NewRateTable builds a table from validated rates.
func NewRateTable(rates []Rate, opts ...Option) *RateTable {
	t := &RateTable{
		rates: make(map[pair]decimal.Decimal, len(rates)),
		log:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	for _, r := range rates {
		t.rates[pair{
			from: r.Base().Code(),
			to:   r.Quote().Code(),
		}] = r.Value()
	}

	return t
}

// Rate resolves the numeric rate for a currency pair.
func (t *RateTable) Rate(
	from, to currency.Currency,
) (decimal.Decimal, error) {
	if from == to {
		return decimal.New(1, 0), nil
	}

	if rate, ok := t.rates[pair{
		from: from.Code(),
		to:   to.Code(),
	}]; ok {
		return rate, nil
	}

	if rate, ok := t.rates[pair{
		from: to.Code(),
		to:   from.Code(),
	}]; ok {
		return decimal.New(1, 0).Div(rate), nil
	}

	if !t.via.IsZero() && from != t.via && to != t.via {
		leg1, err := t.Rate(from, t.via)
		if err != nil {
			return decimal.Decimal{}, err
		}

		leg2, err := t.Rate(t.via, to)
		if err != nil {
			return decimal.Decimal{}, err
		}

		return leg1.Mul(leg2), nil
	}

	return decimal.Decimal{}, fmt.Errorf(
		"%w: %s/%s",
		ErrRateNotFound,
		from.Code(),
		to.Code(),
	)
}

// Convert implements the money.Converter interface. The converted
// value keeps the source value's configuration, precision hint and
// format overrides so metadata propagation survives conversion.
func (t *RateTable) Convert(
	m *money.Money,
	to currency.Currency,
) (*money.Money, error) {
	if m.Currency() == to {
		return m, nil
	}

	rate, err := t.Rate(m.Currency(), to)
	if err != nil {
		return nil, err
	}

	converted := money.FromDecimal(
		m.Amount().Mul(rate),
		to,
		money.WithConfig(m.Config()),
		money.WithDecimalPlaces(m.DecimalPlaces()),
		money.WithFormat(m.FormatOptions()),
	)

	t.log.Debug(
		"converted amount",
		zap.String("from", m.Currency().Code()),
		zap.String("to", to.Code()),
		zap.String("rate", rate.String()),
		zap.String("amount", m.Amount().String()),
		zap.String("converted", converted.Amount().String()),
	)

	return converted, nil
}
