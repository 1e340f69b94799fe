// Command cellgraph is a small interactive shell over the sheet engine:
// set, get, clear, and print cells, and optionally dump the sheet to an
// XLSX workbook on exit.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var xlsxPath string

	root := &cobra.Command{
		Use:   "cellgraph",
		Short: "Interactive shell over the cellgraph spreadsheet engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), xlsxPath)
		},
	}
	root.Flags().StringVar(&xlsxPath, "xlsx", "", "write the final sheet to this XLSX path on exit")
	return root
}
