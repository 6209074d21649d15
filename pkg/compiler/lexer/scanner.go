package lexer

import (
	"github.com/agenthands/pilang/pkg/core/diag"
)

// Scanner performs lexical analysis on pi source. It is a pure function of
// the input text: no state survives outside the cursor.
type Scanner struct {
	source []byte
	cursor int
	line   int
	col    int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		col:    1,
	}
}

// Next returns the next token from the source. Once the input is exhausted
// it keeps returning EOF tokens. An unrecognized character stops scanning
// with a lex error carrying the character's position.
func (s *Scanner) Next() (Token, error) {
	for {
		s.skipWhitespace()
		if s.cursor >= len(s.source) {
			return Token{Kind: KindEOF, Line: s.line, Col: s.col}, nil
		}
		if s.source[s.cursor] == '#' {
			s.skipComment()
			continue
		}
		break
	}

	ch := s.source[s.cursor]
	line, col := s.line, s.col

	if isDigit(ch) {
		return s.scanInteger(), nil
	}
	if isAlpha(ch) {
		return s.scanIdentifier(), nil
	}

	var kind Kind
	switch ch {
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '*':
		kind = KindStar
	case '/':
		kind = KindSlash
	case '%':
		kind = KindPercent
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '{':
		kind = KindLBrace
	case '}':
		kind = KindRBrace
	case '=':
		kind = KindAssign
	case ';':
		kind = KindSemicolon
	default:
		return Token{}, diag.Errorf(diag.KindLex, line, col, "unrecognized character %q", ch)
	}

	s.advance()
	return Token{Kind: kind, Lexeme: string(ch), Line: line, Col: col}, nil
}

func (s *Scanner) advance() {
	if s.source[s.cursor] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.cursor++
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		switch s.source[s.cursor] {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

// skipComment consumes '#' through end of line; the newline itself is left
// for skipWhitespace.
func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.advance()
	}
}

// scanInteger consumes a maximal digit run.
func (s *Scanner) scanInteger() Token {
	start := s.cursor
	line, col := s.line, s.col
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.advance()
	}
	return Token{Kind: KindInteger, Lexeme: string(s.source[start:s.cursor]), Line: line, Col: col}
}

// scanIdentifier consumes an identifier and maps the reserved word "while".
func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	line, col := s.line, s.col
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor])) {
		s.advance()
	}

	lexeme := string(s.source[start:s.cursor])
	kind := KindIdentifier
	if lexeme == "while" {
		kind = KindWhile
	}
	return Token{Kind: kind, Lexeme: lexeme, Line: line, Col: col}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
