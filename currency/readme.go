// Package currency implements an ISO 4217 currency metadata table
// defined by the following properties:
//
// - code, the three letter shorthand for the currency, eg. USD.
//
// - numeric code, the three digit shorthand, eg. 840 for USD.
//
// - minor units, the canonical number of digits after the decimal
// point, eg. 2 for USD, 0 for JPY, 3 for BHD.
//
// - symbol, a display fallback used when no locale-aware symbol
// is available.
package currency
