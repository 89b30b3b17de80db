package l10n

import (
	"strings"

	"golang.org/x/text/language"
)

// fallbackLocale is used when no language identifier can be resolved.
var fallbackLocale = language.AmericanEnglish

// ToLocale parses a language identifier such as "en-us" or "pt_BR"
// into a canonical locale tag. Empty or malformed identifiers resolve
// to American English.
func ToLocale(lang string) language.Tag {
	if lang == "" {
		return fallbackLocale
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return fallbackLocale
	}

	return tag
}

// Resolve returns the locale for the currently active language,
// falling back to the default language code when no language is
// active.
func Resolve(active, fallback string) language.Tag {
	if active == "" {
		active = fallback
	}

	return ToLocale(active)
}
