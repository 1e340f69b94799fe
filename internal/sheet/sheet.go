package sheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cellgraph/engine/internal/formula"
	"github.com/cellgraph/engine/internal/position"
	"golang.org/x/exp/maps"
)

// Sentinel errors for the three mutating-operation failure kinds. All three
// are transactional: on failure the Sheet is left exactly as it was.
var (
	ErrPosition  = errors.New("position error")
	ErrSyntax    = errors.New("formula syntax error")
	ErrCircular  = errors.New("circular dependency")
)

// Option configures a Sheet at construction time.
type Option func(*Sheet)

// WithMaxRows restricts the sheet to fewer rows than the package default
// (position.MaxRows). It cannot raise the limit past the default.
func WithMaxRows(n int) Option {
	return func(s *Sheet) {
		if n > 0 && n <= position.MaxRows {
			s.maxRows = n
		}
	}
}

// WithMaxCols restricts the sheet to fewer columns than the package default
// (position.MaxCols). It cannot raise the limit past the default.
func WithMaxCols(n int) Option {
	return func(s *Sheet) {
		if n > 0 && n <= position.MaxCols {
			s.maxCols = n
		}
	}
}

// Sheet is a sparse Position -> Cell grid with a bidirectional dependency
// graph distributed across its cells, coordinated here.
type Sheet struct {
	cells   map[position.Position]*Cell
	rowFill *fillCounter
	colFill *fillCounter
	maxRows int
	maxCols int
}

// NewSheet constructs an empty Sheet, defaulting to the full position.MaxRows
// x position.MaxCols grid.
func NewSheet(opts ...Option) *Sheet {
	s := &Sheet{
		cells:   make(map[position.Position]*Cell),
		rowFill: newFillCounter(),
		colFill: newFillCounter(),
		maxRows: position.MaxRows,
		maxCols: position.MaxCols,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sheet) validPos(pos position.Position) bool {
	return pos.Valid() && pos.Row < s.maxRows && pos.Col < s.maxCols
}

// Value implements formula.SheetReader: the raw CellValue at pos, with an
// absent cell projected to the empty string exactly as an Empty cell would
// be. This is what lets a formula treat an unmaterialised reference the
// same as one pointing at a real Empty cell.
func (s *Sheet) Value(pos position.Position) position.CellValue {
	cell, ok := s.cells[pos]
	if !ok {
		return position.StringValue("")
	}
	return cell.GetValue(s)
}

// GetCell returns the cell at pos, or nil if the slot is unpopulated.
func (s *Sheet) GetCell(pos position.Position) (*Cell, error) {
	if !s.validPos(pos) {
		return nil, fmt.Errorf("%w: %s", ErrPosition, pos)
	}
	return s.cells[pos], nil
}

// SetCell parses text and installs it at pos, rewiring the dependency graph
// and invalidating dependent caches. It fails, leaving the Sheet
// byte-for-byte unchanged, if pos is invalid, text is an unparseable
// formula, or installing it would create a reference cycle.
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if !s.validPos(pos) {
		return fmt.Errorf("%w: %s", ErrPosition, pos)
	}

	tentative, err := newCellFromText(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	newRefs := tentative.ReferencedPositions()
	if len(newRefs) > 0 && s.reaches(newRefs, pos) {
		return fmt.Errorf("%w: setting %s would create a cycle", ErrCircular, pos)
	}

	existing := s.cells[pos]
	oldRefs := existing.ReferencedPositions()
	wasNonEmpty := existing != nil && !existing.isEmpty()
	isNonEmpty := !tentative.isEmpty()

	if existing != nil {
		tentative.dependents = existing.dependents
	}
	s.cells[pos] = tentative

	s.rewireReferences(pos, oldRefs, newRefs)

	switch {
	case !wasNonEmpty && isNonEmpty:
		s.rowFill.inc(pos.Row)
		s.colFill.inc(pos.Col)
	case wasNonEmpty && !isNonEmpty:
		s.rowFill.dec(pos.Row)
		s.colFill.dec(pos.Col)
	}

	s.invalidate(pos)
	return nil
}

// ClearCell resets the cell at pos to Empty. A no-op if the slot is absent
// or already Empty; otherwise detaches its out-edges (but not its
// dependents, which still point at the now-Empty cell) and invalidates
// caches transitively.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !s.validPos(pos) {
		return fmt.Errorf("%w: %s", ErrPosition, pos)
	}
	cell, ok := s.cells[pos]
	if !ok || cell.isEmpty() {
		return nil
	}

	oldRefs := cell.ReferencedPositions()
	s.rewireReferences(pos, oldRefs, nil)

	cell.body = emptyBody{}
	maps.Clear(cell.referenced)

	s.rowFill.dec(pos.Row)
	s.colFill.dec(pos.Col)

	s.invalidate(pos)
	return nil
}

// rewireReferences applies the edge delta between oldRefs and newRefs for
// the cell at pos: positions no longer referenced lose pos from their
// dependents; newly referenced positions are materialised (as Empty, if
// absent) and gain pos as a dependent.
func (s *Sheet) rewireReferences(pos position.Position, oldRefs, newRefs []position.Position) {
	newSet := make(map[position.Position]struct{}, len(newRefs))
	for _, p := range newRefs {
		newSet[p] = struct{}{}
	}
	oldSet := make(map[position.Position]struct{}, len(oldRefs))
	for _, p := range oldRefs {
		oldSet[p] = struct{}{}
	}

	for p := range oldSet {
		if _, stillReferenced := newSet[p]; stillReferenced {
			continue
		}
		if ref, ok := s.cells[p]; ok {
			delete(ref.dependents, pos)
		}
	}

	for p := range newSet {
		if _, wasReferenced := oldSet[p]; wasReferenced {
			continue
		}
		ref, ok := s.cells[p]
		if !ok {
			ref = newEmptyCell()
			s.cells[p] = ref
		}
		ref.dependents[pos] = struct{}{}
	}
}

// reaches reports whether target is reachable from any position in
// frontier by following referenced-cell edges over the *current* sheet —
// i.e. whether wiring the tentative cell's references would create a
// cycle back to target. Absent cells are treated as having no out-edges:
// safe, because they would become Empty (and so edge-less) after this
// operation succeeds anyway.
func (s *Sheet) reaches(frontier []position.Position, target position.Position) bool {
	visited := make(map[position.Position]struct{})
	queue := append([]position.Position(nil), frontier...)
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == target {
			return true
		}
		if _, seen := visited[curr]; seen {
			continue
		}
		visited[curr] = struct{}{}
		cell, ok := s.cells[curr]
		if !ok {
			continue
		}
		queue = append(queue, cell.ReferencedPositions()...)
	}
	return false
}

// invalidate clears the cache of the cell at pos and every cell
// transitively reachable by following dependents edges, using an explicit
// work-set so the traversal is loop-free even under wide or diamond-shaped
// fan-out (a dependent reachable by two paths is only cleared once).
func (s *Sheet) invalidate(pos position.Position) {
	visited := map[position.Position]struct{}{pos: {}}
	queue := []position.Position{pos}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		cell, ok := s.cells[curr]
		if !ok {
			continue
		}
		cell.ClearCache()
		for dep := range cell.dependents {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			queue = append(queue, dep)
		}
	}
}

// PrintableSize returns the smallest (rows, cols) rectangle, anchored at
// (0,0), containing every non-empty cell; (0, 0) for an empty sheet.
func (s *Sheet) PrintableSize() (rows, cols int) {
	if s.rowFill.empty() {
		return 0, 0
	}
	maxRow, _ := s.rowFill.max()
	maxCol, _ := s.colFill.max()
	return maxRow + 1, maxCol + 1
}

// PrintValues writes the printable range's evaluated values, tab-separated
// within a row and newline-terminated per row. Absent cells print empty.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.printGrid(w, func(c *Cell) string {
		return c.GetValue(s).String()
	})
}

// PrintTexts writes the printable range's textual sources, in the same grid
// layout as PrintValues.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.printGrid(w, func(c *Cell) string {
		return c.GetText()
	})
}

func (s *Sheet) printGrid(w io.Writer, render func(*Cell) string) error {
	rows, cols := s.PrintableSize()
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteByte('\t')
			}
			if cell, ok := s.cells[position.Position{Row: r, Col: c}]; ok {
				b.WriteString(render(cell))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
