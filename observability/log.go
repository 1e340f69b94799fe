// Package observability provides the structured logger used by the
// outer-layer CLI; the XLSX exporter does not log. The core
// engine packages (position, formula, sheet) never import this package:
// they are side-effect free and report failure only through returned
// errors, per the engine's error-handling design.
package observability

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a human-readable console logger writing to w, falling back to
// os.Stderr when w is nil. component is attached to every event so a run
// mixing the CLI and the exporter can be told apart in the output.
func New(component string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	return zerolog.New(console).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
