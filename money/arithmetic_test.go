package money_test

import (
	"testing"

	"github.com/matryer/is"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/finwire/go-money/currency"
	"github.com/finwire/go-money/expr"
	"github.com/finwire/go-money/money"
)

// doublingConverter is a Converter stub that multiplies the amount
// by two and records how many times it was invoked.
type doublingConverter struct {
	calls int
}

func (c *doublingConverter) Convert(
	m *money.Money,
	to currency.Currency,
) (*money.Money, error) {
	c.calls++

	return money.FromDecimal(
		m.Amount().Mul(decimal.New(2, 0)),
		to,
		money.WithConfig(m.Config()),
		money.WithDecimalPlaces(m.DecimalPlaces()),
	), nil
}

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("SameCurrency", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString(
			"10.1234", "USD",
			money.WithDecimalPlaces(4),
		))
		b := money.Must(money.FromString(
			"5.1", "USD",
			money.WithDecimalPlaces(2),
		))

		sum, err := a.Add(b)
		i.NoErr(err)

		m, ok := sum.(*money.Money)
		i.True(ok)

		i.True(m.Amount().Equal(decimal.RequireFromString("15.2234")))
		i.Equal("USD", m.Currency().Code())

		// the result carries the maximum precision hint.
		i.Equal(int32(4), m.DecimalPlaces())
	})

	t.Run("MaxPrecisionCommutes", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString(
			"1", "USD",
			money.WithDecimalPlaces(2),
		))
		b := money.Must(money.FromString(
			"2", "USD",
			money.WithDecimalPlaces(6),
		))

		sum, err := a.Add(b)
		i.NoErr(err)

		i.Equal(int32(6), sum.(*money.Money).DecimalPlaces())
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		// auto-convert is off by default: the converter must not
		// be consulted even when configured.
		conv := &doublingConverter{}

		cfg := money.DefaultConfig()
		cfg.Converter = conv

		a := money.Must(money.FromString(
			"10", "USD",
			money.WithConfig(cfg),
		))
		b := money.Must(money.FromString("10", "EUR"))

		_, err := a.Add(b)

		i.True(errors.Is(err, money.ErrCurrencyMismatch))
		i.Equal(0, conv.calls)
	})

	t.Run("AutoConvert", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		conv := &doublingConverter{}

		cfg := money.DefaultConfig()
		cfg.AutoConvert = true
		cfg.Converter = conv

		a := money.Must(money.FromString(
			"10", "USD",
			money.WithConfig(cfg),
			money.WithDecimalPlaces(2),
		))
		b := money.Must(money.FromString(
			"10", "EUR",
			money.WithDecimalPlaces(3),
		))

		sum, err := a.Add(b)
		i.NoErr(err)

		m, ok := sum.(*money.Money)
		i.True(ok)

		i.Equal(1, conv.calls)
		i.Equal("USD", m.Currency().Code())
		i.True(m.Amount().Equal(decimal.New(30, 0)))

		// the converted operand keeps its precision hint, which
		// wins the maximum.
		i.Equal(int32(3), m.DecimalPlaces())
	})

	t.Run("AutoConvertWithoutConverter", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		cfg := money.DefaultConfig()
		cfg.AutoConvert = true

		a := money.Must(money.FromString(
			"10", "USD",
			money.WithConfig(cfg),
		))
		b := money.Must(money.FromString("10", "EUR"))

		_, err := a.Add(b)

		i.True(errors.Is(err, money.ErrNoConverter))
	})

	t.Run("DeferredExpression", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))

		res, err := a.Add(expr.F("price"))
		i.NoErr(err)

		combined, ok := res.(money.Expression)
		i.True(ok)

		i.Equal("($10.00 + F(price))", combined.String())
	})

	t.Run("IncompatibleOperand", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))

		_, err := a.Add(decimal.New(1, 0))

		i.True(errors.Is(err, money.ErrIncompatibleOperand))
	})
}

func TestSub(t *testing.T) {
	t.Parallel()

	t.Run("SameCurrency", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString(
			"10.50", "USD",
			money.WithDecimalPlaces(3),
		))
		b := money.Must(money.FromString(
			"0.25", "USD",
			money.WithDecimalPlaces(5),
		))

		diff, err := a.Sub(b)
		i.NoErr(err)

		m, ok := diff.(*money.Money)
		i.True(ok)

		i.True(m.Amount().Equal(decimal.RequireFromString("10.25")))
		i.Equal(int32(5), m.DecimalPlaces())
	})

	t.Run("DeferredExpression", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))

		res, err := a.Sub(expr.F("discount"))
		i.NoErr(err)

		i.Equal("($10.00 - F(discount))", res.(money.Expression).String())
	})
}

func TestMul(t *testing.T) {
	t.Parallel()

	t.Run("ByDecimal", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString(
			"10.50", "USD",
			money.WithDecimalPlaces(4),
		))

		res, err := a.Mul(decimal.New(3, 0))
		i.NoErr(err)

		m, ok := res.(*money.Money)
		i.True(ok)

		i.True(m.Amount().Equal(decimal.RequireFromString("31.5")))
		i.Equal(int32(4), m.DecimalPlaces())
	})

	t.Run("ByMoney", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))
		b := money.Must(money.FromString("2", "USD"))

		_, err := a.Mul(b)

		i.True(errors.Is(err, money.ErrIncompatibleOperand))
	})

	t.Run("DeferredExpression", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))

		res, err := a.Mul(expr.F("quantity"))
		i.NoErr(err)

		i.Equal("($10.00 * F(quantity))", res.(money.Expression).String())
	})
}

func TestDiv(t *testing.T) {
	t.Parallel()

	t.Run("ByDecimal", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString(
			"10", "USD",
			money.WithDecimalPlaces(3),
		))

		res, err := a.Div(decimal.New(4, 0))
		i.NoErr(err)

		m, ok := res.(*money.Money)
		i.True(ok)

		i.True(m.Amount().Equal(decimal.RequireFromString("2.5")))
		i.Equal(int32(3), m.DecimalPlaces())
	})

	t.Run("ByMoneyYieldsRatio", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))
		b := money.Must(money.FromString("4", "USD"))

		res, err := a.Div(b)
		i.NoErr(err)

		ratio, ok := res.(decimal.Decimal)
		i.True(ok)

		i.True(ratio.Equal(decimal.RequireFromString("2.5")))
	})

	t.Run("ByMoneyCurrencyMismatch", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))
		b := money.Must(money.FromString("4", "EUR"))

		_, err := a.Div(b)

		i.True(errors.Is(err, money.ErrCurrencyMismatch))
	})

	t.Run("ByZero", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))

		_, err := a.Div(decimal.New(0, 0))
		i.True(errors.Is(err, money.ErrDivisionByZero))

		_, err = a.Div(money.Must(money.FromString("0", "USD")))
		i.True(errors.Is(err, money.ErrDivisionByZero))
	})

	t.Run("DeferredExpression", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))

		res, err := a.Div(expr.F("parts"))
		i.NoErr(err)

		i.Equal("($10.00 / F(parts))", res.(money.Expression).String())
	})
}

func TestDispatchers(t *testing.T) {
	t.Parallel()

	t.Run("NonMoneyDivision", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		m := money.Must(money.FromString("10", "USD"))

		_, err := money.Div(decimal.New(100, 0), m)
		i.True(errors.Is(err, money.ErrNonMoneyDivision))

		// the operation is undefined regardless of the operands.
		_, err = money.Div(
			decimal.New(0, 0),
			money.Must(money.FromString("0", "JPY")),
		)
		i.True(errors.Is(err, money.ErrNonMoneyDivision))
	})

	t.Run("ReflectedAdd", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("1", "USD"))
		b := money.Must(money.FromString("2", "USD"))

		sum, err := money.Add(a, b)
		i.NoErr(err)

		i.True(sum.(*money.Money).Amount().Equal(decimal.New(3, 0)))

		// no money operand at all.
		_, err = money.Add(decimal.New(1, 0), decimal.New(2, 0))
		i.True(errors.Is(err, money.ErrIncompatibleOperand))
	})

	t.Run("ReflectedSub", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))
		b := money.Must(money.FromString("4", "USD"))

		diff, err := money.Sub(a, b)
		i.NoErr(err)

		i.True(diff.(*money.Money).Amount().Equal(decimal.New(6, 0)))
	})

	t.Run("ReflectedMul", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		m := money.Must(money.FromString("10", "USD"))

		res, err := money.Mul(decimal.New(3, 0), m)
		i.NoErr(err)

		i.True(res.(*money.Money).Amount().Equal(decimal.New(30, 0)))
	})

	t.Run("ExpressionLeadsDivision", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		m := money.Must(money.FromString("10", "USD"))

		// a deferred left operand combines instead of being
		// rejected as a plain number.
		res, err := money.Div(expr.F("price"), m)
		i.NoErr(err)

		i.Equal("(F(price) / $10.00)", res.String())
	})

	t.Run("ExpressionKeepsLeftPosition", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		m := money.Must(money.FromString("10", "USD"))

		res, err := money.Add(expr.F("bonus"), m)
		i.NoErr(err)
		i.Equal("(F(bonus) + $10.00)", res.String())

		res, err = money.Sub(expr.F("bonus"), m)
		i.NoErr(err)
		i.Equal("(F(bonus) - $10.00)", res.String())

		res, err = money.Mul(expr.F("rate"), m)
		i.NoErr(err)
		i.Equal("(F(rate) * $10.00)", res.String())
	})

	t.Run("ExpressionMod", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		m := money.Must(money.FromString("10", "USD"))

		res, err := money.Mod(expr.F("pct"), m)
		i.NoErr(err)
		i.Equal("(F(pct) % $10.00)", res.String())

		res, err = money.Mod(m, expr.F("pct"))
		i.NoErr(err)
		i.Equal("($10.00 % F(pct))", res.String())
	})

	t.Run("PercentageMod", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		m := money.Must(money.FromString(
			"250", "USD",
			money.WithDecimalPlaces(3),
		))

		res, err := money.Mod(decimal.New(10, 0), m)
		i.NoErr(err)

		pct, ok := res.(*money.Money)
		i.True(ok)

		i.True(pct.Amount().Equal(decimal.New(25, 0)))
		i.Equal("USD", pct.Currency().Code())
		i.Equal(int32(3), pct.DecimalPlaces())
	})

	t.Run("ModRejectsMoneyPercent", func(t *testing.T) {
		t.Parallel()

		i := is.New(t)

		a := money.Must(money.FromString("10", "USD"))
		b := money.Must(money.FromString("250", "USD"))

		_, err := money.Mod(a, b)
		i.True(errors.Is(err, money.ErrIncompatibleOperand))
	})
}
