package formula

import (
	"math"

	"github.com/cellgraph/engine/internal/position"
)

// SheetReader is the read-only facet of a sheet the evaluator needs: the
// current CellValue at a position, with empty/absent cells already
// projected to the empty string by the caller (package sheet).
type SheetReader interface {
	Value(pos position.Position) position.CellValue
}

// Evaluate walks e, consulting sheet for cell references, and returns
// either a finite number or the first FormulaError encountered. Traversal
// is left-to-right, depth-first, so the first referenced error wins.
func Evaluate(e Expr, sheet SheetReader) (float64, *position.FormulaError) {
	switch e := e.(type) {
	case NumberExpr:
		return e.Value, nil

	case RefExpr:
		if !e.Pos.Valid() {
			err := position.ErrRef
			return 0, &err
		}
		return sheet.Value(e.Pos).Number()

	case UnaryExpr:
		x, err := Evaluate(e.X, sheet)
		if err != nil {
			return 0, err
		}
		if e.Op == tokMinus {
			return checkFinite(-x)
		}
		return checkFinite(x)

	case BinaryExpr:
		x, err := Evaluate(e.X, sheet)
		if err != nil {
			return 0, err
		}
		y, err := Evaluate(e.Y, sheet)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case tokPlus:
			return checkFinite(x + y)
		case tokMinus:
			return checkFinite(x - y)
		case tokStar:
			return checkFinite(x * y)
		case tokSlash:
			if y == 0 {
				err := position.ErrDivZero
				return 0, &err
			}
			return checkFinite(x / y)
		}
	}
	// unreachable for any Expr produced by Parse.
	err := position.ErrValueKind
	return 0, &err
}

// checkFinite turns an overflowing or NaN arithmetic result into #DIV/0!,
// per the spec's "any non-finite result... produce #DIV/0!" rule.
func checkFinite(f float64) (float64, *position.FormulaError) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		err := position.ErrDivZero
		return 0, &err
	}
	return f, nil
}
