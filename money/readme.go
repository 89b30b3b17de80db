// Package money implements a monetary value type composed of an
// arbitrary-precision amount, an ISO 4217 currency and presentation
// metadata: a decimal-places precision hint and locale formatting
// overrides.
//
// Values are immutable by convention: every arithmetic or
// transformation operation returns a new value, and derived values
// keep the presentation metadata of their operands so chained
// operations never silently lose formatting information.
//
// Arithmetic operands may also be deferred query expressions; in
// that case the operation is delegated to the expression instead of
// being computed numerically. See the expr package.
package money
