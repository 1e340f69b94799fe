package position

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the three branches of CellValue.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindError
)

// CellValue is the tagged union a cell's evaluated value takes: a string,
// a finite float64, or a FormulaError. The zero value is the empty string,
// matching an Empty cell's projection.
type CellValue struct {
	kind Kind
	str  string
	num  float64
	err  FormulaError
}

// StringValue wraps a string result.
func StringValue(s string) CellValue { return CellValue{kind: KindString, str: s} }

// NumberValue wraps a finite numeric result.
func NumberValue(n float64) CellValue { return CellValue{kind: KindNumber, num: n} }

// ErrorValue wraps a FormulaError result.
func ErrorValue(e FormulaError) CellValue { return CellValue{kind: KindError, err: e} }

// Kind reports which branch of the union is populated.
func (v CellValue) Kind() Kind { return v.kind }

// AsString returns the string payload; only meaningful when Kind() == KindString.
func (v CellValue) AsString() string { return v.str }

// AsNumber returns the numeric payload; only meaningful when Kind() == KindNumber.
func (v CellValue) AsNumber() float64 { return v.num }

// AsError returns the FormulaError payload; only meaningful when Kind() == KindError.
func (v CellValue) AsError() FormulaError { return v.err }

// Number attempts to coerce v to a finite number, the rule used when a
// formula reads a referenced cell in an arithmetic context:
//   - a number value converts directly;
//   - the empty string converts to 0;
//   - a non-empty string converts only if it parses as a finite number,
//     otherwise the coercion fails with #VALUE!;
//   - an error value propagates unchanged.
func (v CellValue) Number() (float64, *FormulaError) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindError:
		err := v.err
		return 0, &err
	case KindString:
		if v.str == "" {
			return 0, nil
		}
		n, parseErr := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if parseErr != nil || math.IsInf(n, 0) || math.IsNaN(n) {
			err := ErrValueKind
			return 0, &err
		}
		return n, nil
	}
	return 0, nil
}

// String renders v in the form print_values/print_texts emit: strings
// verbatim, numbers in canonical decimal (no trailing zeros, no '+' sign),
// errors as their stable textual form.
func (v CellValue) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return FormatNumber(v.num)
	case KindError:
		return v.err.String()
	}
	return ""
}

// FormatNumber renders f in the canonical decimal syntax: minimal digits,
// no trailing zeros, no exponent for ordinary magnitudes, no leading '+'.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
