package formula

import "fmt"

// tokenize splits expr (the formula text with the leading '=' already
// stripped by the caller) into tokens, rejecting any character that does
// not belong to the grammar with a SyntaxError.
func tokenize(expr string) ([]token, error) {
	runes := []rune(expr)
	var tokens []token
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == ' ' || ch == '\t':
			continue
		case isDigit(ch):
			start := i
			for i < len(runes) && (isDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, token{kind: tokNumber, lit: string(runes[start:i])})
			i--
		case isUpper(ch):
			start := i
			for i < len(runes) && (isUpper(runes[i]) || isDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokRef, lit: string(runes[start:i])})
			i--
		default:
			kind, ok := singleCharTokens[ch]
			if !ok {
				return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected character %q", ch)}
			}
			tokens = append(tokens, token{kind: kind})
		}
	}
	return tokens, nil
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }
