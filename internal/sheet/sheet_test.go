package sheet

import (
	"strings"
	"testing"

	"github.com/cellgraph/engine/internal/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, s *Sheet, cellID, text string) {
	t.Helper()
	require.NoError(t, s.SetCell(pos(t, cellID), text))
}

func pos(t *testing.T, cellID string) position.Position {
	t.Helper()
	p, err := position.Parse(cellID)
	require.NoError(t, err)
	return p
}

func value(t *testing.T, s *Sheet, cellID string) position.CellValue {
	t.Helper()
	cell, err := s.GetCell(pos(t, cellID))
	require.NoError(t, err)
	return cell.GetValue(s)
}

func text(t *testing.T, s *Sheet, cellID string) string {
	t.Helper()
	cell, err := s.GetCell(pos(t, cellID))
	require.NoError(t, err)
	return cell.GetText()
}

func TestTextEscape(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "'=1+2")
	assert.Equal(t, "'=1+2", text(t, s, "A1"))
	assert.Equal(t, "=1+2", value(t, s, "A1").AsString())
}

func TestBasicFormula(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "2")
	mustSet(t, s, "A2", "3")
	mustSet(t, s, "A3", "=A1+A2")
	assert.Equal(t, float64(5), value(t, s, "A3").AsNumber())
	assert.Equal(t, "=A1+A2", text(t, s, "A3"))

	mustSet(t, s, "A1", "10")
	assert.Equal(t, float64(13), value(t, s, "A3").AsNumber())
}

func TestReferenceToEmptyMaterialises(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "B1", "=A1+1")
	cell, err := s.GetCell(pos(t, "A1"))
	require.NoError(t, err)
	require.NotNil(t, cell)
	assert.Equal(t, "", cell.GetText())
	assert.Equal(t, float64(1), value(t, s, "B1").AsNumber())
}

func TestDivisionByZero(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "0")
	mustSet(t, s, "A2", "=1/A1")
	v := value(t, s, "A2")
	require.Equal(t, position.KindError, v.Kind())
	assert.Equal(t, position.ErrDivZero, v.AsError())

	mustSet(t, s, "A1", "2")
	assert.Equal(t, 0.5, value(t, s, "A2").AsNumber())
}

func TestCycleRejection(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "2")
	mustSet(t, s, "A2", "3")
	mustSet(t, s, "A3", "=A1+A2")

	err := s.SetCell(pos(t, "A1"), "=A3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircular)

	// sheet is unchanged
	assert.Equal(t, "2", value(t, s, "A1").AsString())
	assert.Equal(t, float64(5), value(t, s, "A3").AsNumber())
}

func TestCycleRejection_selfRef(t *testing.T) {
	s := NewSheet()
	err := s.SetCell(pos(t, "A1"), "=A1")
	assert.ErrorIs(t, err, ErrCircular)
}

func TestCycleRejection_bigCycle(t *testing.T) {
	s := NewSheet()
	for i := 1; i <= 15; i++ {
		from := cellName(i)
		to := "=" + cellName(i+1)
		mustSet(t, s, from, to)
	}
	err := s.SetCell(pos(t, "A15"), "=A1")
	assert.ErrorIs(t, err, ErrCircular)
}

func cellName(row int) string {
	return "A" + itoa(row)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func TestPrinting(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "1")
	mustSet(t, s, "B2", "=A1+1")

	rows, cols := s.PrintableSize()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	var values, texts strings.Builder
	require.NoError(t, s.PrintValues(&values))
	require.NoError(t, s.PrintTexts(&texts))

	assert.Equal(t, "1\t\n\t2\n", values.String())
	assert.Equal(t, "1\t\n\t=A1+1\n", texts.String())
}

func TestPrintableSize_empty(t *testing.T) {
	s := NewSheet()
	rows, cols := s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestClearCell_noopOnAbsent(t *testing.T) {
	s := NewSheet()
	require.NoError(t, s.ClearCell(pos(t, "A1")))
	rows, cols := s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestClearCell_detachesReferencesKeepsDependents(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "5")
	mustSet(t, s, "B1", "=A1+1")

	require.NoError(t, s.ClearCell(pos(t, "A1")))
	assert.Equal(t, "", text(t, s, "A1"))
	// B1 still depends on A1, now reading as empty/zero.
	assert.Equal(t, float64(1), value(t, s, "B1").AsNumber())

	// re-setting A1 still propagates, proving the dependents edge survived
	// the clear.
	mustSet(t, s, "A1", "9")
	assert.Equal(t, float64(10), value(t, s, "B1").AsNumber())
}

func TestSetCell_invalidPosition(t *testing.T) {
	s := NewSheet()
	outOfRange := position.Position{Row: position.MaxRows, Col: 0}
	err := s.SetCell(outOfRange, "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPosition)

	_, err = s.GetCell(outOfRange)
	assert.ErrorIs(t, err, ErrPosition)
}

func TestSetCell_formulaSyntaxErrorLeavesSheetUnchanged(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "7")

	err := s.SetCell(pos(t, "A1"), "=1+")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, "7", value(t, s, "A1").AsString())
}

func TestSetCell_clearViaEmptyText(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "7")
	rows, _ := s.PrintableSize()
	require.Equal(t, 1, rows)

	mustSet(t, s, "A1", "")
	rows, cols := s.PrintableSize()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestFibonacci(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "0")
	mustSet(t, s, "A2", "1")
	for i := 3; i <= 14; i++ {
		mustSet(t, s, cellName(i), "=A"+itoa(i-2)+"+A"+itoa(i-1))
	}
	assert.Equal(t, float64(233), value(t, s, "A14").AsNumber())
}

func TestBidirectionalConsistency(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "1")
	mustSet(t, s, "B1", "=A1")
	mustSet(t, s, "C1", "=A1+B1")

	a1, err := s.GetCell(pos(t, "A1"))
	require.NoError(t, err)
	for _, dependent := range []string{"B1", "C1"} {
		_, ok := a1.dependents[pos(t, dependent)]
		assert.True(t, ok, "A1 should list %s as a dependent", dependent)
	}

	c1, err := s.GetCell(pos(t, "C1"))
	require.NoError(t, err)
	for _, ref := range []string{"A1", "B1"} {
		_, ok := c1.referenced[pos(t, ref)]
		assert.True(t, ok, "C1 should reference %s", ref)
	}
}

func TestInvalidateCache_diamondFanOutRecomputes(t *testing.T) {
	s := NewSheet()
	mustSet(t, s, "A1", "1")
	mustSet(t, s, "B1", "=A1")
	mustSet(t, s, "B2", "=A1")
	mustSet(t, s, "C1", "=B1+B2") // diamond: C1 depends on A1 via two paths

	assert.Equal(t, float64(2), value(t, s, "C1").AsNumber())
	mustSet(t, s, "A1", "10")
	assert.Equal(t, float64(20), value(t, s, "C1").AsNumber())
}
