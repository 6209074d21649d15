package parser

import (
	"fmt"
	"strconv"

	"github.com/agenthands/pilang/pkg/compiler/ast"
	"github.com/agenthands/pilang/pkg/compiler/lexer"
	"github.com/agenthands/pilang/pkg/core/diag"
)

// Parser builds a Program AST from the scanner's token stream by recursive
// descent, one function per grammar rule:
//
//	program    := statement* EOF
//	statement  := assignment ';'?  |  while_stmt  |  block
//	assignment := IDENTIFIER '=' expr
//	while_stmt := 'while' '(' expr ')' block
//	block      := '{' statement* '}'
//	expr       := term (('+' | '-') term)*
//	term       := factor (('*' | '/' | '%') factor)*
//	factor     := INTEGER | IDENTIFIER | '(' expr ')'
//
// The first token that violates the grammar aborts parsing with a syntax
// error; there is no recovery.
type Parser struct {
	scanner *lexer.Scanner
	curTok  lexer.Token
	peekTok lexer.Token
}

// NewParser creates a parser over the scanner's output. The error return
// surfaces a lex failure in the first two tokens.
func NewParser(s *lexer.Scanner) (*Parser, error) {
	p := &Parser{scanner: s}
	// Read two tokens, so curTok and peekTok are both set
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) nextToken() error {
	p.curTok = p.peekTok
	tok, err := p.scanner.Next()
	if err != nil {
		return err
	}
	p.peekTok = tok
	return nil
}

// Parse consumes the whole token stream and returns the Program.
func (p *Parser) Parse() (*ast.Program, error) {
	stmts, err := p.parseStatements(lexer.KindEOF)
	if err != nil {
		return nil, err
	}
	return &ast.Program{Statements: stmts}, nil
}

// parseStatements parses until the stop kind or EOF, consuming any number
// of stray semicolons between statements.
func (p *Parser) parseStatements(stop lexer.Kind) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for p.curTok.Kind != stop && p.curTok.Kind != lexer.KindEOF {
		if p.curTok.Kind == lexer.KindSemicolon {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curTok.Kind {
	case lexer.KindIdentifier:
		return p.parseAssignment()
	case lexer.KindWhile:
		return p.parseWhile()
	case lexer.KindLBrace:
		return p.parseBlock()
	default:
		return nil, p.syntaxError("statement")
	}
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	name := p.curTok
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindAssign, "'='"); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	// Statement terminator is optional
	if p.curTok.Kind == lexer.KindSemicolon {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	return &ast.Assignment{Name: name, Value: value}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok := p.curTok
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindLParen, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindRParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.WhileLoop{Token: tok, Cond: cond, Body: body}, nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	tok, err := p.expect(lexer.KindLBrace, "'{'")
	if err != nil {
		return nil, err
	}
	stmts, err := p.parseStatements(lexer.KindRBrace)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.KindRBrace, "'}'"); err != nil {
		return nil, err
	}
	return &ast.Block{Token: tok, Statements: stmts}, nil
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curTok.Kind == lexer.KindPlus || p.curTok.Kind == lexer.KindMinus {
		op := p.curTok
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curTok.Kind == lexer.KindStar || p.curTok.Kind == lexer.KindSlash || p.curTok.Kind == lexer.KindPercent {
		op := p.curTok
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ast.BinaryOp{Op: op, Left: node, Right: right}
	}
	return node, nil
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.curTok.Kind {
	case lexer.KindInteger:
		tok := p.curTok
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, diag.Errorf(diag.KindSyntax, tok.Line, tok.Col, "integer literal %s out of range", tok.Lexeme)
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Token: tok, Value: value}, nil
	case lexer.KindIdentifier:
		tok := p.curTok
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.VariableRef{Token: tok}, nil
	case lexer.KindLParen:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KindRParen, "')'"); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, p.syntaxError("expression")
	}
}

// expect consumes the current token if it has the wanted kind, otherwise it
// fails with a syntax error naming the expected construct.
func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, error) {
	if p.curTok.Kind != kind {
		return lexer.Token{}, p.syntaxError(what)
	}
	tok := p.curTok
	if err := p.nextToken(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func (p *Parser) syntaxError(expected string) error {
	tok := p.curTok
	return diag.Errorf(diag.KindSyntax, tok.Line, tok.Col, "expected %s, found %s", expected, tokenString(tok))
}

func tokenString(tok lexer.Token) string {
	if tok.Kind == lexer.KindEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}
