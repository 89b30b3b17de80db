package money

import (
	"encoding/json"
	"fmt"
	"strings"
)

// moneyJSON is the wire shape of a monetary value: the plain decimal
// amount and the alphabetic currency code, both as strings.
type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.String(),
		Currency: m.currency.Code(),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface. The
// decoded value carries default presentation metadata.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := FromString(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}

	*m = *parsed

	return nil
}

// MarshalText implements the encoding.TextMarshaler interface and
// encodes the value as "<code> <amount>", eg. "USD 1234.56".
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.currency.Code() + " " + m.amount.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *Money) UnmarshalText(text []byte) error {
	code, amount, ok := strings.Cut(string(text), " ")
	if !ok {
		return fmt.Errorf(
			"%w: malformed money text %q",
			ErrInvalidAmount,
			text,
		)
	}

	parsed, err := FromString(amount, code)
	if err != nil {
		return err
	}

	*m = *parsed

	return nil
}
