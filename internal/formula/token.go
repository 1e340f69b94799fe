package formula

// tokenKind enumerates the lexical categories of a formula expression.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokRef
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

// token is one lexical unit; lit carries the literal text for tokNumber and
// tokRef, and is unused otherwise.
type token struct {
	kind tokenKind
	lit  string
}

var singleCharTokens = map[rune]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}
