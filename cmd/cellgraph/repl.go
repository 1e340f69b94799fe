package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cellgraph/engine/export"
	"github.com/cellgraph/engine/internal/position"
	"github.com/cellgraph/engine/internal/sheet"
	"github.com/cellgraph/engine/observability"
)

// runREPL reads commands from in, one per line, until EOF or "quit":
//
//	set <cell> <text...>   parse and install text at <cell>
//	get <cell>             print the cell's value and text
//	clear <cell>           reset <cell> to Empty
//	print values|texts     dump the printable range
//	quit                   exit the loop
//
// If xlsxPath is non-empty, the final sheet is written there on exit.
func runREPL(in io.Reader, out io.Writer, xlsxPath string) error {
	log := observability.New("cellgraph", os.Stderr)
	sh := sheet.NewSheet()
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, " ", 3)
		switch fields[0] {
		case "quit", "exit":
			return finish(sh, xlsxPath)
		case "set":
			if len(fields) < 3 {
				fmt.Fprintln(out, "usage: set <cell> <text>")
				continue
			}
			if err := setCell(sh, fields[1], fields[2]); err != nil {
				log.Warn().Err(err).Str("cell", fields[1]).Msg("set failed")
				fmt.Fprintln(out, "error:", err)
			}
		case "get":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: get <cell>")
				continue
			}
			if err := getCell(sh, out, fields[1]); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case "clear":
			if len(fields) < 2 {
				fmt.Fprintln(out, "usage: clear <cell>")
				continue
			}
			if err := clearCell(sh, fields[1]); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		case "print":
			target := "values"
			if len(fields) >= 2 {
				target = fields[1]
			}
			if err := printSheet(sh, out, target); err != nil {
				fmt.Fprintln(out, "error:", err)
			}
		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return finish(sh, xlsxPath)
}

func setCell(sh *sheet.Sheet, cellID, text string) error {
	pos, err := position.Parse(cellID)
	if err != nil {
		return err
	}
	return sh.SetCell(pos, text)
}

func getCell(sh *sheet.Sheet, out io.Writer, cellID string) error {
	pos, err := position.Parse(cellID)
	if err != nil {
		return err
	}
	cell, err := sh.GetCell(pos)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: text=%q value=%q\n", cellID, cell.GetText(), sh.Value(pos).String())
	return nil
}

func clearCell(sh *sheet.Sheet, cellID string) error {
	pos, err := position.Parse(cellID)
	if err != nil {
		return err
	}
	return sh.ClearCell(pos)
}

func printSheet(sh *sheet.Sheet, out io.Writer, kind string) error {
	switch kind {
	case "values":
		return sh.PrintValues(out)
	case "texts":
		return sh.PrintTexts(out)
	default:
		return fmt.Errorf("unknown print target %q (want values|texts)", kind)
	}
}

func finish(sh *sheet.Sheet, xlsxPath string) error {
	if xlsxPath == "" {
		return nil
	}
	f, err := os.Create(xlsxPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteXLSX(f, sh)
}
