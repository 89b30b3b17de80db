package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Operand is a value that can appear in Money arithmetic: another
// *Money, a plain decimal factor, or a deferred query expression.
type Operand interface {
	String() string
}

// Expression is the capability implemented by symbolic
// query-expression operands. Arithmetic involving an Expression is
// never computed numerically: when the expression leads, the forward
// methods combine it with the other operand, and when a money value
// leads, the operation is delegated to the expression's reflected
// operator. Either way the combined expression is returned in place
// of a numeric result. See the expr package for an implementation.
type Expression interface {
	Operand

	Add(other Operand) Expression
	Sub(other Operand) Expression
	Mul(other Operand) Expression
	Div(other Operand) Expression
	Mod(other Operand) Expression

	ReverseAdd(m *Money) Expression
	ReverseSub(m *Money) Expression
	ReverseMul(m *Money) Expression
	ReverseDiv(m *Money) Expression
	ReverseMod(m *Money) Expression
}

// Add returns m + other.
//
// A deferred expression operand is delegated to. A monetary operand
// is auto-converted to m's currency first when the configuration
// enables it; otherwise differing currencies fail with
// [ErrCurrencyMismatch]. The result carries the maximum precision
// hint of both operands.
func (m *Money) Add(other Operand) (Operand, error) {
	if expr, ok := other.(Expression); ok {
		return expr.ReverseAdd(m), nil
	}

	om, err := m.monetaryOperand(other, "add")
	if err != nil {
		return nil, err
	}

	return m.derive(m.amount.Add(om.amount), om), nil
}

// Sub returns m - other, with the same operand semantics as
// [Money.Add].
func (m *Money) Sub(other Operand) (Operand, error) {
	if expr, ok := other.(Expression); ok {
		return expr.ReverseSub(m), nil
	}

	om, err := m.monetaryOperand(other, "subtract")
	if err != nil {
		return nil, err
	}

	return m.derive(m.amount.Sub(om.amount), om), nil
}

// monetaryOperand coerces other into a money value in m's currency,
// applying the auto-conversion guard.
func (m *Money) monetaryOperand(
	other Operand,
	verb string,
) (*Money, error) {
	om, ok := other.(*Money)
	if !ok {
		return nil, fmt.Errorf(
			"%w: cannot %s %T and a money value",
			ErrIncompatibleOperand,
			verb,
			other,
		)
	}

	om, err := m.maybeConvert(om)
	if err != nil {
		return nil, err
	}

	if om.currency != m.currency {
		return nil, fmt.Errorf(
			"%w: %s and %s",
			ErrCurrencyMismatch,
			m.currency.Code(),
			om.currency.Code(),
		)
	}

	return om, nil
}

// Mul returns m * other. The factor must be a plain decimal or a
// deferred expression; multiplying two money values is not defined.
// The result keeps m's presentation metadata.
func (m *Money) Mul(other Operand) (Operand, error) {
	if expr, ok := other.(Expression); ok {
		return expr.ReverseMul(m), nil
	}

	switch factor := other.(type) {
	case decimal.Decimal:
		return m.derive(m.amount.Mul(factor), nil), nil

	case *Money:
		return nil, fmt.Errorf(
			"%w: cannot multiply two money values",
			ErrIncompatibleOperand,
		)

	default:
		return nil, fmt.Errorf(
			"%w: cannot multiply a money value by %T",
			ErrIncompatibleOperand,
			other,
		)
	}
}

// Div returns m / other.
//
// Dividing by a plain decimal yields a money value carrying m's
// presentation metadata. Dividing by another money value of the
// same currency yields the plain decimal ratio between the two
// amounts, which carries no metadata.
func (m *Money) Div(other Operand) (Operand, error) {
	if expr, ok := other.(Expression); ok {
		return expr.ReverseDiv(m), nil
	}

	switch divisor := other.(type) {
	case decimal.Decimal:
		if divisor.IsZero() {
			return nil, ErrDivisionByZero
		}

		return m.derive(m.amount.Div(divisor), nil), nil

	case *Money:
		if divisor.currency != m.currency {
			return nil, fmt.Errorf(
				"%w: %s and %s",
				ErrCurrencyMismatch,
				m.currency.Code(),
				divisor.currency.Code(),
			)
		}

		if divisor.amount.IsZero() {
			return nil, ErrDivisionByZero
		}

		return m.amount.Div(divisor.amount), nil

	default:
		return nil, fmt.Errorf(
			"%w: cannot divide a money value by %T",
			ErrIncompatibleOperand,
			other,
		)
	}
}

// Add evaluates x + y with the full operand semantics of the value
// type, including the reflected form where the left-hand side is
// not a money value. A leading deferred expression keeps the left
// position in the combined expression.
func Add(x, y Operand) (Operand, error) {
	if xe, ok := x.(Expression); ok {
		return xe.Add(y), nil
	}

	if xm, ok := x.(*Money); ok {
		return xm.Add(y)
	}

	// Addition commutes, so the reflected form reuses the
	// money-led path.
	if ym, ok := y.(*Money); ok {
		return ym.Add(x)
	}

	return nil, fmt.Errorf(
		"%w: no money operand in addition",
		ErrIncompatibleOperand,
	)
}

// Sub evaluates x - y. The reflected form x - money is evaluated as
// (-money) + x.
func Sub(x, y Operand) (Operand, error) {
	if xe, ok := x.(Expression); ok {
		return xe.Sub(y), nil
	}

	if xm, ok := x.(*Money); ok {
		return xm.Sub(y)
	}

	if ym, ok := y.(*Money); ok {
		return ym.Neg().Add(x)
	}

	return nil, fmt.Errorf(
		"%w: no money operand in subtraction",
		ErrIncompatibleOperand,
	)
}

// Mul evaluates x * y; at least one operand must be a money value or
// a deferred expression.
func Mul(x, y Operand) (Operand, error) {
	if xe, ok := x.(Expression); ok {
		return xe.Mul(y), nil
	}

	if xm, ok := x.(*Money); ok {
		return xm.Mul(y)
	}

	if ym, ok := y.(*Money); ok {
		return ym.Mul(x)
	}

	return nil, fmt.Errorf(
		"%w: no money operand in multiplication",
		ErrIncompatibleOperand,
	)
}

// Div evaluates x / y. A leading deferred expression combines;
// dividing a plain number by a money value is not defined and always
// fails with [ErrNonMoneyDivision].
func Div(x, y Operand) (Operand, error) {
	if xe, ok := x.(Expression); ok {
		return xe.Div(y), nil
	}

	if xm, ok := x.(*Money); ok {
		return xm.Div(y)
	}

	if _, ok := y.(*Money); ok {
		return nil, ErrNonMoneyDivision
	}

	return nil, fmt.Errorf(
		"%w: no money operand in division",
		ErrIncompatibleOperand,
	)
}

// Mod evaluates x % y. Numerically only the reflected percentage
// form is defined: a plain decimal modulo a money value yields x
// percent of y, carrying y's presentation metadata. A deferred
// expression on either side combines instead.
func Mod(x, y Operand) (Operand, error) {
	if xe, ok := x.(Expression); ok {
		return xe.Mod(y), nil
	}

	if ye, ok := y.(Expression); ok {
		if xm, ok := x.(*Money); ok {
			return ye.ReverseMod(xm), nil
		}
	}

	ym, ok := y.(*Money)
	if !ok {
		return nil, fmt.Errorf(
			"%w: right-hand side of %% must be a money value",
			ErrIncompatibleOperand,
		)
	}

	if _, ok := x.(*Money); ok {
		return nil, fmt.Errorf(
			"%w: cannot take a money percentage of a money value",
			ErrIncompatibleOperand,
		)
	}

	pct, ok := x.(decimal.Decimal)
	if !ok {
		return nil, fmt.Errorf(
			"%w: cannot take %T percent of a money value",
			ErrIncompatibleOperand,
			x,
		)
	}

	amount := ym.amount.Mul(pct).Div(decimal.NewFromInt(100))

	return ym.derive(amount, nil), nil
}
