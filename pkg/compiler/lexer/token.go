package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindInteger
	KindIdentifier
	KindPlus      // +
	KindMinus     // -
	KindStar      // *
	KindSlash     // /
	KindPercent   // %
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }
	KindAssign    // =
	KindSemicolon // ;
	KindWhile     // while
)

var kindNames = [...]string{
	KindEOF:        "EOF",
	KindInteger:    "INTEGER",
	KindIdentifier: "IDENTIFIER",
	KindPlus:       "+",
	KindMinus:      "-",
	KindStar:       "*",
	KindSlash:      "/",
	KindPercent:    "%",
	KindLParen:     "(",
	KindRParen:     ")",
	KindLBrace:     "{",
	KindRBrace:     "}",
	KindAssign:     "=",
	KindSemicolon:  ";",
	KindWhile:      "while",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "INVALID"
}

// Token represents a lexical unit pointing back to the source.
// Line and Col are 1-based and exist solely for diagnostics; tokens are
// immutable once produced.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Col    int
}
