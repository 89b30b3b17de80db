package money

import (
	"html/template"
	"strings"

	"github.com/finwire/go-money/l10n"
)

// String implements the fmt.Stringer interface. The configuration's
// default format options are merged under the value's own overrides,
// the rendering locale is resolved from the active language, and the
// merged options are handed to the localization service.
func (m *Money) String() string {
	cfg := m.config()

	opts := l10n.Merge(cfg.Format, m.format)
	opts.Locale = cfg.CurrentLocale().String()

	return l10n.Format(m.amount, m.currency, opts)
}

// HTML renders the value for embedding in generated markup. The
// string form is HTML-escaped first, then its spaces are replaced
// with non-breaking spaces so the rendered amount never wraps.
func (m *Money) HTML() template.HTML {
	return template.HTML(
		avoidWrapping(template.HTMLEscapeString(m.String())),
	)
}

// avoidWrapping swaps ordinary spaces for non-breaking ones.
func avoidWrapping(s string) string {
	return strings.ReplaceAll(s, " ", "\u00a0")
}

// Localized reports whether this value renders localized: the
// per-value override when set, otherwise the configuration flag,
// otherwise true.
func (m *Money) Localized() bool {
	if m.localized != nil {
		return *m.localized
	}

	return m.config().Localized()
}
