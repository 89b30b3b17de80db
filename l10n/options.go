package l10n

import (
	"fmt"
)

// Display selects how the currency itself is shown next to the
// formatted amount.
type Display int

// Available display modes. DisplayDefault defers to the merged
// configuration defaults and resolves to DisplaySymbol.
const (
	DisplayDefault Display = iota
	DisplaySymbol
	DisplayNarrowSymbol
	DisplayCode
)

// MarshalText implements the encoding.TextMarshaler interface.
func (d Display) MarshalText() ([]byte, error) {
	switch d {
	case DisplayDefault:
		return []byte(""), nil
	case DisplaySymbol:
		return []byte("symbol"), nil
	case DisplayNarrowSymbol:
		return []byte("narrow"), nil
	case DisplayCode:
		return []byte("code"), nil
	}

	return nil, fmt.Errorf("unknown display mode: %d", d)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Display) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*d = DisplayDefault
	case "symbol":
		*d = DisplaySymbol
	case "narrow":
		*d = DisplayNarrowSymbol
	case "code":
		*d = DisplayCode
	default:
		return fmt.Errorf("unknown display mode: %q", text)
	}

	return nil
}

// Position selects where the currency symbol is placed relative to
// the formatted amount.
type Position int

// Available symbol positions. PositionDefault defers to the merged
// configuration defaults and resolves to PositionBefore.
const (
	PositionDefault Position = iota
	PositionBefore
	PositionAfter
)

// MarshalText implements the encoding.TextMarshaler interface.
func (p Position) MarshalText() ([]byte, error) {
	switch p {
	case PositionDefault:
		return []byte(""), nil
	case PositionBefore:
		return []byte("before"), nil
	case PositionAfter:
		return []byte("after"), nil
	}

	return nil, fmt.Errorf("unknown symbol position: %d", p)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Position) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*p = PositionDefault
	case "before":
		*p = PositionBefore
	case "after":
		*p = PositionAfter
	default:
		return fmt.Errorf("unknown symbol position: %q", text)
	}

	return nil
}

// Flag is a tri-state boolean whose zero value means "not set",
// so that merged overrides can distinguish "off" from "absent".
type Flag int

// Available flag states.
const (
	FlagDefault Flag = iota
	FlagOn
	FlagOff
)

// MarshalText implements the encoding.TextMarshaler interface.
func (f Flag) MarshalText() ([]byte, error) {
	switch f {
	case FlagDefault:
		return []byte(""), nil
	case FlagOn:
		return []byte("on"), nil
	case FlagOff:
		return []byte("off"), nil
	}

	return nil, fmt.Errorf("unknown flag state: %d", f)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (f *Flag) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*f = FlagDefault
	case "on", "true":
		*f = FlagOn
	case "off", "false":
		*f = FlagOff
	default:
		return fmt.Errorf("unknown flag state: %q", text)
	}

	return nil
}

// Options holds presentation overrides for a formatted monetary
// amount. Options are passed and stored by value so a caller can
// never mutate an already attached set of overrides through
// aliasing.
type Options struct {
	// Locale identifies the rendering locale, eg. "en-us" or "de".
	Locale string `yaml:"locale" json:"locale,omitempty"`

	// Symbol, when set, replaces the currency symbol entirely.
	Symbol string `yaml:"symbol" json:"symbol,omitempty"`

	// Display selects symbol, narrow symbol or ISO code display.
	Display Display `yaml:"display" json:"display,omitempty"`

	// Position places the symbol before or after the amount.
	Position Position `yaml:"position" json:"position,omitempty"`

	// Grouping toggles locale-aware digit grouping.
	Grouping Flag `yaml:"grouping" json:"grouping,omitempty"`

	// CurrencyDigits toggles quantizing the displayed amount to
	// the currency's canonical minor-unit digits.
	CurrencyDigits Flag `yaml:"currency_digits" json:"currency_digits,omitempty"`
}

// Merge combines two option sets. Every field set on the override
// takes precedence over the corresponding field of the base.
func Merge(base, override Options) Options {
	out := base

	if override.Locale != "" {
		out.Locale = override.Locale
	}

	if override.Symbol != "" {
		out.Symbol = override.Symbol
	}

	if override.Display != DisplayDefault {
		out.Display = override.Display
	}

	if override.Position != PositionDefault {
		out.Position = override.Position
	}

	if override.Grouping != FlagDefault {
		out.Grouping = override.Grouping
	}

	if override.CurrencyDigits != FlagDefault {
		out.CurrencyDigits = override.CurrencyDigits
	}

	return out
}

// IsZero reports whether no field of the option set is set.
func (o Options) IsZero() bool {
	return o == Options{}
}
