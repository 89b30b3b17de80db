package currency

import (
	"errors"
)

// ErrUnknownCurrency is returned when a code cannot be resolved
// against the ISO 4217 table.
var ErrUnknownCurrency = errors.New("unknown currency")
