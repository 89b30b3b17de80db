package l10n

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	xcurrency "golang.org/x/text/currency"

	"github.com/finwire/go-money/currency"
)

// Format renders amount as a locale-aware string for the given
// currency.
//
// Unset option fields resolve to symbol display, symbol-before
// placement, locale digit grouping and quantization to the
// currency's minor-unit digits.
func Format(
	amount decimal.Decimal,
	cur currency.Currency,
	opts Options,
) string {
	printer := message.NewPrinter(ToLocale(opts.Locale))

	scale := int(cur.MinorUnits())
	if opts.CurrencyDigits == FlagOff {
		scale = int(-amount.Exponent())
		if scale < 0 {
			scale = 0
		}
	}

	negative := amount.IsNegative()

	num := formatNumber(printer, amount.Abs(), scale, opts)
	sym := symbolFor(printer, cur, opts)

	var b strings.Builder

	if negative {
		b.WriteString("-")
	}

	switch {
	case sym == "":
		b.WriteString(num)

	case opts.Position == PositionAfter:
		b.WriteString(num)
		b.WriteString(" ")
		b.WriteString(sym)

	case opts.Display == DisplayCode:
		b.WriteString(sym)
		b.WriteString(" ")
		b.WriteString(num)

	default:
		b.WriteString(sym)
		b.WriteString(num)
	}

	return b.String()
}

// formatNumber renders the absolute amount with the given number of
// fraction digits. The digits come straight from the decimal's exact
// fixed-point form and only the separators come from the locale, so
// the amount never passes through a lossy binary float.
func formatNumber(
	printer *message.Printer,
	abs decimal.Decimal,
	scale int,
	opts Options,
) string {
	intPart, fracPart, _ := strings.Cut(
		abs.StringFixed(int32(scale)),
		".",
	)

	seps := localeSeparators(printer)

	var b strings.Builder

	if opts.Grouping == FlagOff {
		b.WriteString(intPart)
	} else {
		b.WriteString(groupDigits(intPart, seps))
	}

	if fracPart != "" {
		b.WriteString(seps.decimal)
		b.WriteString(fracPart)
	}

	return b.String()
}

// numberSeparators describes a locale's decimal number pattern: the
// decimal and group separators and the group sizes, least significant
// group first.
type numberSeparators struct {
	decimal string
	group   string
	sizes   []int
}

// localeSeparators recovers the pattern by formatting a reference
// number through the locale printer, the only place x/text exposes
// it. The reference is exactly representable as a binary float and
// wide enough to reveal a secondary group size.
func localeSeparators(printer *message.Printer) numberSeparators {
	sample := printer.Sprint(number.Decimal(
		100000000.5,
		number.Scale(1),
	))

	// strip bidirectional marks and the like around the digits.
	sample = strings.TrimFunc(sample, func(r rune) bool {
		return !unicode.IsDigit(r)
	})

	var (
		runs []int
		seps []string

		runLen int
		sep    strings.Builder
	)

	for _, r := range sample {
		if unicode.IsDigit(r) {
			if sep.Len() > 0 {
				seps = append(seps, sep.String())
				sep.Reset()
			}

			runLen++

			continue
		}

		if runLen > 0 {
			runs = append(runs, runLen)
			runLen = 0
		}

		sep.WriteRune(r)
	}

	if runLen > 0 {
		runs = append(runs, runLen)
	}

	// the last separator precedes the single fraction digit of the
	// reference number; any before it separate integer groups.
	if len(seps) == 0 {
		return numberSeparators{decimal: "."}
	}

	out := numberSeparators{decimal: seps[len(seps)-1]}

	if len(seps) == 1 {
		return out
	}

	out.group = seps[0]

	// integer digit runs without the leftmost one, which is whatever
	// was left over after grouping.
	intRuns := runs[:len(runs)-1]
	for i := len(intRuns) - 1; i > 0; i-- {
		out.sizes = append(out.sizes, intRuns[i])
	}

	return out
}

// groupDigits inserts the locale group separator into an ASCII digit
// string, repeating the last known group size once the pattern is
// exhausted.
func groupDigits(digits string, seps numberSeparators) string {
	if seps.group == "" || len(seps.sizes) == 0 {
		return digits
	}

	var groups []string

	for i := 0; len(digits) > 0; i++ {
		size := seps.sizes[len(seps.sizes)-1]
		if i < len(seps.sizes) {
			size = seps.sizes[i]
		}

		if len(digits) <= size {
			groups = append(groups, digits)

			break
		}

		groups = append(groups, digits[len(digits)-size:])
		digits = digits[:len(digits)-size]
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}

	return strings.Join(groups, seps.group)
}

// symbolFor resolves the currency marker to place next to the
// amount: an explicit override, the ISO code, the locale-specific
// symbol, or the table fallback, in that order of availability.
func symbolFor(
	printer *message.Printer,
	cur currency.Currency,
	opts Options,
) string {
	if opts.Symbol != "" {
		return opts.Symbol
	}

	if opts.Display == DisplayCode {
		return cur.Code()
	}

	unit, err := xcurrency.ParseISO(cur.Code())
	if err == nil {
		if opts.Display == DisplayNarrowSymbol {
			return printer.Sprint(xcurrency.NarrowSymbol(unit))
		}

		return printer.Sprint(xcurrency.Symbol(unit))
	}

	if cur.Symbol() != "" {
		return cur.Symbol()
	}

	return cur.Code()
}
