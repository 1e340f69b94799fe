package formula

import "github.com/cellgraph/engine/internal/position"

// Expr is a node of a parsed formula's abstract syntax tree. The model is
// a small closed set of concrete types switched on by the evaluator,
// printer, and reference-collector, in the spirit of Go's own ast package.
type Expr interface {
	isExpr()
}

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
}

// RefExpr is a reference to another cell.
type RefExpr struct {
	Pos position.Position
}

// UnaryExpr is a prefix '-' applied to a single operand. The grammar does
// not accept a prefix '+' (see parseUnary).
type UnaryExpr struct {
	Op tokenKind // always tokMinus
	X  Expr
}

// BinaryExpr is a left-associative binary operation.
type BinaryExpr struct {
	Op   tokenKind // tokPlus, tokMinus, tokStar, tokSlash
	X, Y Expr
}

func (NumberExpr) isExpr() {}
func (RefExpr) isExpr()    {}
func (UnaryExpr) isExpr()  {}
func (BinaryExpr) isExpr() {}
