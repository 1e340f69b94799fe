package position

import "strconv"

// FormulaError is the closed set of value-level errors a formula can
// evaluate to. Unlike ErrInvalidPosition and friends, these are never
// returned as Go errors to a mutating caller — they are data, carried
// inside a CellValue.
type FormulaError int

const (
	// ErrRef marks a reference to an out-of-range position.
	ErrRef FormulaError = iota
	// ErrValueKind marks a non-numeric operand where arithmetic is required.
	ErrValueKind
	// ErrDivZero marks division by zero or a non-finite arithmetic result.
	ErrDivZero
)

// formulaErrorText holds the stable textual form of each FormulaError,
// indexed by its ordering.
var formulaErrorText = [...]string{
	ErrRef:       "#REF!",
	ErrValueKind: "#VALUE!",
	ErrDivZero:   "#DIV/0!",
}

// String returns the stable textual form, e.g. "#DIV/0!".
func (e FormulaError) String() string {
	if int(e) < 0 || int(e) >= len(formulaErrorText) {
		return "#ERR" + strconv.Itoa(int(e)) + "!"
	}
	return formulaErrorText[e]
}

// Error implements the error interface so a FormulaError can be returned
// from contexts (such as tests) that expect one, without becoming part of
// the mutating-operation error taxonomy in package sheet.
func (e FormulaError) Error() string {
	return e.String()
}
