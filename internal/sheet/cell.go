// Package sheet implements the sparse 2-D grid, its dependency graph, and
// the cell value cache: components C3, C4, and C5 of the engine.
package sheet

import (
	"strings"

	"github.com/cellgraph/engine/internal/formula"
	"github.com/cellgraph/engine/internal/position"
)

// body is the polymorphic part of a Cell: the three mutually exclusive
// rules for GetText/GetValue/references. Modelling them as a tagged
// interface, rather than branching on a kind field everywhere, keeps each
// rule local, per the engine's design notes.
type body interface {
	text() string
	value(sheet formula.SheetReader) position.CellValue
	references() []position.Position
}

type emptyBody struct{}

func (emptyBody) text() string                                     { return "" }
func (emptyBody) value(formula.SheetReader) position.CellValue     { return position.StringValue("") }
func (emptyBody) references() []position.Position                  { return nil }

// textBody holds literal text. An apostrophe escapes a leading '=' so the
// text can be displayed without being mistaken for a formula.
type textBody struct {
	raw string
}

func (t textBody) text() string { return t.raw }

func (t textBody) value(formula.SheetReader) position.CellValue {
	if strings.HasPrefix(t.raw, "'") {
		return position.StringValue(t.raw[1:])
	}
	return position.StringValue(t.raw)
}

func (textBody) references() []position.Position { return nil }

// formulaBody holds a parsed AST. It never stores the raw input text: the
// text form is always the canonical reprint, exactly as GetText specifies.
type formulaBody struct {
	ast  formula.Expr
	refs []position.Position
}

func newFormulaBody(ast formula.Expr) formulaBody {
	return formulaBody{ast: ast, refs: formula.References(ast)}
}

func (f formulaBody) text() string { return "=" + formula.Print(f.ast) }

func (f formulaBody) value(sheet formula.SheetReader) position.CellValue {
	n, err := formula.Evaluate(f.ast, sheet)
	if err != nil {
		return position.ErrorValue(*err)
	}
	return position.NumberValue(n)
}

func (f formulaBody) references() []position.Position { return f.refs }

// Cell is one grid slot: a body (Empty, Text, or Formula), a memoised
// value, and the two edge sets of the dependency graph. referenced and
// dependents store Position, not pointers, per the engine's design notes:
// the edges are indices into the Sheet's cell map, not ownership.
type Cell struct {
	body       body
	cache      *position.CellValue
	referenced map[position.Position]struct{}
	dependents map[position.Position]struct{}
}

func newEmptyCell() *Cell {
	return &Cell{
		body:       emptyBody{},
		referenced: make(map[position.Position]struct{}),
		dependents: make(map[position.Position]struct{}),
	}
}

// newCellFromText builds a standalone Cell from text, without touching any
// sheet state. Returns a *formula.SyntaxError if text is a malformed
// formula. This is the "tentative cell" construction step of Sheet.SetCell:
// it must not have any observable effect until the caller commits it.
func newCellFromText(text string) (*Cell, error) {
	c := &Cell{
		referenced: make(map[position.Position]struct{}),
		dependents: make(map[position.Position]struct{}),
	}
	switch {
	case text == "":
		c.body = emptyBody{}
	case strings.HasPrefix(text, "=") && len(text) > 1:
		ast, err := formula.Parse(text[1:])
		if err != nil {
			return nil, err
		}
		fb := newFormulaBody(ast)
		c.body = fb
		for _, p := range fb.refs {
			c.referenced[p] = struct{}{}
		}
	default:
		c.body = textBody{raw: text}
	}
	return c, nil
}

// GetText returns the cell's textual source.
func (c *Cell) GetText() string {
	if c == nil {
		return ""
	}
	return c.body.text()
}

// GetValue returns the cell's evaluated value, computing and memoising it
// against sheet if the cache is empty.
func (c *Cell) GetValue(sheet formula.SheetReader) position.CellValue {
	if c == nil {
		return position.StringValue("")
	}
	if c.cache != nil {
		return *c.cache
	}
	v := c.body.value(sheet)
	c.cache = &v
	return v
}

// ReferencedPositions returns the positions this cell's body reads.
func (c *Cell) ReferencedPositions() []position.Position {
	if c == nil {
		return nil
	}
	return c.body.references()
}

// ClearCache drops only this cell's own memoised value. Recursive fan-out
// to dependents is Sheet's job: only Sheet holds the position -> *Cell map
// needed to walk the dependents edges, per the engine's design notes on
// explicit work-set invalidation over Cell-owned recursion.
func (c *Cell) ClearCache() {
	c.cache = nil
}

// isEmpty reports whether the body is the Empty variant.
func (c *Cell) isEmpty() bool {
	_, ok := c.body.(emptyBody)
	return ok
}
