// Package export dumps a sheet's printable range to an XLSX workbook. It is
// write-only by design and depends only on the public Sheet surface
// (PrintableSize, GetCell, Cell.GetValue) — exactly the kind of outer-layer
// collaborator spec.md's file-format non-goal anticipates ("Where these
// interact with the core they appear only as interfaces").
package export

import (
	"io"

	"github.com/cellgraph/engine/internal/position"
	"github.com/cellgraph/engine/internal/sheet"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// WriteXLSX renders sh's printable range as computed values (not formula
// text) into a single-sheet workbook and writes it to w.
func WriteXLSX(w io.Writer, sh *sheet.Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), defaultSheetName); err != nil {
		return err
	}

	rows, cols := sh.PrintableSize()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := position.Position{Row: r, Col: c}
			cell, err := sh.GetCell(pos)
			if err != nil {
				return err
			}
			if cell == nil {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := setAxisValue(f, axis, cell.GetValue(sh)); err != nil {
				return err
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func setAxisValue(f *excelize.File, axis string, v position.CellValue) error {
	switch v.Kind() {
	case position.KindNumber:
		return f.SetCellValue(defaultSheetName, axis, v.AsNumber())
	case position.KindError:
		return f.SetCellValue(defaultSheetName, axis, v.AsError().String())
	default:
		return f.SetCellValue(defaultSheetName, axis, v.AsString())
	}
}
