package money

import (
	"errors"
)

var (
	// ErrInvalidAmount is returned when an amount cannot be parsed
	// into a decimal value.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrCurrencyMismatch is returned when an operation requires
	// both operands to share a currency and they do not.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrIncompatibleOperand is returned when an operand type is
	// not defined for the attempted operation.
	ErrIncompatibleOperand = errors.New("incompatible operand")

	// ErrNonMoneyDivision is returned when a plain number is
	// divided by a money value. The operation is never defined;
	// hitting it signals a programming error at the call site.
	ErrNonMoneyDivision = errors.New("cannot divide non-money by a money value")

	// ErrDivisionByZero is returned when dividing by a zero
	// divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNoConverter is returned when auto-conversion is enabled
	// but no converter is configured.
	ErrNoConverter = errors.New("no currency converter configured")
)
