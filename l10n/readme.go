// Package l10n renders monetary amounts as locale-aware strings.
//
// It implements an Options type holding presentation overrides that
// merge the way configuration defaults and per-value overrides are
// expected to: a set field on the override always wins over the
// corresponding default.
//
// Number grouping and locale-specific currency symbols are provided
// by golang.org/x/text.
package l10n
