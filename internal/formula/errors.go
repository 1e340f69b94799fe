package formula

import "fmt"

// SyntaxError reports a formula that failed to parse: an unexpected
// character, an unparseable cell reference, or a truncated expression.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("formula syntax error: %s", e.Msg)
}

func syntaxErrorf(format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}
