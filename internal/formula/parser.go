package formula

import (
	"strconv"

	"github.com/cellgraph/engine/internal/position"
)

// Parse parses expr — the formula text with its leading '=' already
// stripped by the caller — into an Expr, or returns a *SyntaxError.
func Parse(expr string) (Expr, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, syntaxErrorf("empty expression")
	}
	e, rest, err := parseSum(tokens)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, syntaxErrorf("unexpected trailing token")
	}
	return e, nil
}

// parseSum parses +/- at the lowest precedence, left-associative.
func parseSum(tokens []token) (Expr, []token, error) {
	return parseBinary(tokens, parseProduct, tokPlus, tokMinus)
}

// parseProduct parses * and /, binding tighter than +/-.
func parseProduct(tokens []token) (Expr, []token, error) {
	return parseBinary(tokens, parseUnary, tokStar, tokSlash)
}

func parseBinary(tokens []token, next func([]token) (Expr, []token, error), ops ...tokenKind) (Expr, []token, error) {
	left, rest, err := next(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 && isOneOf(rest[0].kind, ops) {
		op := rest[0].kind
		right, tail, err := next(rest[1:])
		if err != nil {
			return nil, nil, err
		}
		left = BinaryExpr{Op: op, X: left, Y: right}
		rest = tail
	}
	return left, rest, nil
}

func isOneOf(kind tokenKind, ops []tokenKind) bool {
	for _, op := range ops {
		if kind == op {
			return true
		}
	}
	return false
}

// parseUnary parses a prefix '-' applied to another unary expression. A
// prefix '+' is not accepted: it would let something like "1++1" parse as
// 1 plus (unary-plus 1), which this grammar rejects outright instead.
func parseUnary(tokens []token) (Expr, []token, error) {
	if len(tokens) == 0 {
		return nil, nil, syntaxErrorf("expected an expression, found end of input")
	}
	if tokens[0].kind == tokMinus {
		x, rest, err := parseUnary(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return UnaryExpr{Op: tokMinus, X: x}, rest, nil
	}
	return parsePrimary(tokens)
}

// parsePrimary parses a number literal, a cell reference, or a
// parenthesised sub-expression.
func parsePrimary(tokens []token) (Expr, []token, error) {
	if len(tokens) == 0 {
		return nil, nil, syntaxErrorf("expected an expression, found end of input")
	}
	tok := tokens[0]
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.lit, 64)
		if err != nil {
			return nil, nil, syntaxErrorf("invalid numeric literal %q", tok.lit)
		}
		return NumberExpr{Value: v}, tokens[1:], nil
	case tokRef:
		pos, err := position.Parse(tok.lit)
		if err != nil {
			return nil, nil, syntaxErrorf("invalid cell reference %q", tok.lit)
		}
		return RefExpr{Pos: pos}, tokens[1:], nil
	case tokLParen:
		inner, rest, err := parseSum(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		if len(rest) == 0 || rest[0].kind != tokRParen {
			return nil, nil, syntaxErrorf("expected ')'")
		}
		return inner, rest[1:], nil
	default:
		return nil, nil, syntaxErrorf("unexpected token")
	}
}
