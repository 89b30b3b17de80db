// Package expr implements deferred query expressions: symbolic
// placeholders that stand in for database fields while a query is
// being built.
//
// Expressions satisfy the money package's Expression capability, so
// arithmetic between a money value and an expression returns a
// combined expression instead of a numeric result. The expression
// tree renders as a readable infix string.
package expr
