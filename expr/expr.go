package expr

import (
	"fmt"

	"github.com/finwire/go-money/money"
)

// ensure the expression types satisfy the money arithmetic
// capability.
var (
	_ money.Expression = Field{}
	_ money.Expression = Combined{}
)

// Field is a deferred reference to a named field.
type Field struct {
	name string
}

// F creates a deferred reference to the named field.
func F(name string) Field {
	return Field{name: name}
}

// Name returns the referenced field name.
func (f Field) Name() string {
	return f.name
}

// String implements the fmt.Stringer interface.
func (f Field) String() string {
	return "F(" + f.name + ")"
}

// Combined is a binary expression over two operands, at least one of
// which is symbolic.
type Combined struct {
	left  money.Operand
	op    string
	right money.Operand
}

// Left returns the left-hand operand.
func (c Combined) Left() money.Operand {
	return c.left
}

// Right returns the right-hand operand.
func (c Combined) Right() money.Operand {
	return c.right
}

// Operator returns the infix operator symbol.
func (c Combined) Operator() string {
	return c.op
}

// String implements the fmt.Stringer interface.
func (c Combined) String() string {
	return fmt.Sprintf("(%s %s %s)", c.left, c.op, c.right)
}

// Forward combinations: the expression leads and keeps the left-hand
// side of the result.

// Add returns the expression f + other.
func (f Field) Add(other money.Operand) money.Expression {
	return Combined{left: f, op: "+", right: other}
}

// Sub returns the expression f - other.
func (f Field) Sub(other money.Operand) money.Expression {
	return Combined{left: f, op: "-", right: other}
}

// Mul returns the expression f * other.
func (f Field) Mul(other money.Operand) money.Expression {
	return Combined{left: f, op: "*", right: other}
}

// Div returns the expression f / other.
func (f Field) Div(other money.Operand) money.Expression {
	return Combined{left: f, op: "/", right: other}
}

// Mod returns the expression f % other.
func (f Field) Mod(other money.Operand) money.Expression {
	return Combined{left: f, op: "%", right: other}
}

// Add returns the expression c + other.
func (c Combined) Add(other money.Operand) money.Expression {
	return Combined{left: c, op: "+", right: other}
}

// Sub returns the expression c - other.
func (c Combined) Sub(other money.Operand) money.Expression {
	return Combined{left: c, op: "-", right: other}
}

// Mul returns the expression c * other.
func (c Combined) Mul(other money.Operand) money.Expression {
	return Combined{left: c, op: "*", right: other}
}

// Div returns the expression c / other.
func (c Combined) Div(other money.Operand) money.Expression {
	return Combined{left: c, op: "/", right: other}
}

// Mod returns the expression c % other.
func (c Combined) Mod(other money.Operand) money.Expression {
	return Combined{left: c, op: "%", right: other}
}

// Reflected operators, invoked by money arithmetic when it detects a
// deferred right-hand operand: the money value stays on the left-hand
// side of the combined expression.

// ReverseAdd returns the expression m + f.
func (f Field) ReverseAdd(m *money.Money) money.Expression {
	return Combined{left: m, op: "+", right: f}
}

// ReverseSub returns the expression m - f.
func (f Field) ReverseSub(m *money.Money) money.Expression {
	return Combined{left: m, op: "-", right: f}
}

// ReverseMul returns the expression m * f.
func (f Field) ReverseMul(m *money.Money) money.Expression {
	return Combined{left: m, op: "*", right: f}
}

// ReverseDiv returns the expression m / f.
func (f Field) ReverseDiv(m *money.Money) money.Expression {
	return Combined{left: m, op: "/", right: f}
}

// ReverseMod returns the expression m % f.
func (f Field) ReverseMod(m *money.Money) money.Expression {
	return Combined{left: m, op: "%", right: f}
}

// ReverseAdd returns the expression m + c.
func (c Combined) ReverseAdd(m *money.Money) money.Expression {
	return Combined{left: m, op: "+", right: c}
}

// ReverseSub returns the expression m - c.
func (c Combined) ReverseSub(m *money.Money) money.Expression {
	return Combined{left: m, op: "-", right: c}
}

// ReverseMul returns the expression m * c.
func (c Combined) ReverseMul(m *money.Money) money.Expression {
	return Combined{left: m, op: "*", right: c}
}

// ReverseDiv returns the expression m / c.
func (c Combined) ReverseDiv(m *money.Money) money.Expression {
	return Combined{left: m, op: "/", right: c}
}

// ReverseMod returns the expression m % c.
func (c Combined) ReverseMod(m *money.Money) money.Expression {
	return Combined{left: m, op: "%", right: c}
}
