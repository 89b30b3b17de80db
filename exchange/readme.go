// Package exchange implements an in-memory exchange-rate source.
//
// A RateTable resolves rates directly, through the inverse pair, or
// through a configured intermediate base currency, and implements
// the money package's Converter hook so that values can be
// auto-converted during arithmetic.
package exchange
