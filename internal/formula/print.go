package formula

import "github.com/cellgraph/engine/internal/position"

// Print renders e back into the canonical, minimally-parenthesised textual
// form. Parse(Print(e)) has the same value as e, and is structurally equal
// to e except that a right-nested '+' or '*' operand is printed without
// parentheses and so reparses left-associated ("1+(2+3)" prints "1+2+3").
func Print(e Expr) string {
	return printExpr(e, 0, false)
}

// precedence ranks a node for parenthesisation purposes: atoms bind
// tightest, then unary +/-, then * and /, then + and -.
func precedence(e Expr) int {
	switch e := e.(type) {
	case BinaryExpr:
		if e.Op == tokPlus || e.Op == tokMinus {
			return 1
		}
		return 2
	case UnaryExpr:
		return 3
	default:
		return 4
	}
}

// printExpr renders e, wrapping it in parentheses iff its precedence is
// too low for its parent's required precedence on that side — strictly
// lower always requires a bump, and equal precedence requires one too when
// needBump is set (the right side of '-' and '/', where swapping
// associativity would change the value).
func printExpr(e Expr, parentPrec int, needBump bool) string {
	p := precedence(e)
	s := render(e)
	if p < parentPrec || (p == parentPrec && needBump) {
		return "(" + s + ")"
	}
	return s
}

func render(e Expr) string {
	switch e := e.(type) {
	case NumberExpr:
		return position.FormatNumber(e.Value)
	case RefExpr:
		return e.Pos.String()
	case UnaryExpr:
		return opSymbol(e.Op) + printExpr(e.X, precedence(e), false)
	case BinaryExpr:
		p := precedence(e)
		left := printExpr(e.X, p, false)
		right := printExpr(e.Y, p, e.Op == tokMinus || e.Op == tokSlash)
		return left + opSymbol(e.Op) + right
	}
	return ""
}

func opSymbol(op tokenKind) string {
	switch op {
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "*"
	case tokSlash:
		return "/"
	}
	return ""
}
