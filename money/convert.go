package money

import (
	"fmt"
)

// maybeConvert returns other unchanged unless auto-conversion is
// enabled and the operand currencies differ, in which case other is
// converted into m's currency through the configured converter.
func (m *Money) maybeConvert(other *Money) (*Money, error) {
	cfg := m.config()

	if !cfg.AutoConvert || other.currency == m.currency {
		return other, nil
	}

	if cfg.Converter == nil {
		return nil, ErrNoConverter
	}

	converted, err := cfg.Converter.Convert(other, m.currency)
	if err != nil {
		return nil, fmt.Errorf(
			"converting %s to %s: %w",
			other.currency.Code(),
			m.currency.Code(),
			err,
		)
	}

	return converted, nil
}
