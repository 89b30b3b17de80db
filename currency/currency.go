package currency

import (
	"fmt"
	"strings"
)

// Currency holds the ISO 4217 metadata for a single currency.
// The zero value represents an unknown currency; values returned by
// [Parse] are always resolved against the built-in table.
type Currency struct {
	// three letter alphabetic code, eg. USD.
	code string

	// three digit numeric code, eg. 840.
	numeric string

	// canonical number of digits after the decimal point.
	minorUnits int32

	// fallback symbol used when no locale-aware symbol is known.
	symbol string
}

// Parse resolves a three letter alphabetic code against the built-in
// ISO 4217 table. The lookup is case insensitive.
func Parse(code string) (Currency, error) {
	c, ok := currencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf(
			"%w: %q",
			ErrUnknownCurrency,
			code,
		)
	}

	return c, nil
}

// MustParse is like [Parse] but panics on unknown codes. It simplifies
// initialization of variables holding well-known currencies.
func MustParse(code string) Currency {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}

	return c
}

// Code returns the three letter alphabetic code.
func (c Currency) Code() string {
	return c.code
}

// Numeric returns the three digit numeric code.
func (c Currency) Numeric() string {
	return c.numeric
}

// MinorUnits returns the canonical number of digits after the
// decimal point.
func (c Currency) MinorUnits() int32 {
	return c.minorUnits
}

// Symbol returns the fallback display symbol. The symbol is not
// locale-aware; formatting code should prefer a locale-specific
// symbol and fall back to this one.
func (c Currency) Symbol() string {
	return c.symbol
}

// IsZero reports whether the currency is the unknown zero value.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// String implements the fmt.Stringer interface and returns the
// alphabetic code.
func (c Currency) String() string {
	return c.code
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// MarshalJSON implements the json.Marshaler interface and encodes
// the currency as its alphabetic code.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.code + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Currency) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	return c.UnmarshalText([]byte(s))
}
