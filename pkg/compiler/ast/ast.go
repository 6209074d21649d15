package ast

import "github.com/agenthands/pilang/pkg/compiler/lexer"

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() lexer.Token
}

// Expr represents an expression that yields an integer value.
type Expr interface {
	Node
	exprNode()
}

// Statement represents a standalone unit of execution.
type Statement interface {
	Node
	stmtNode()
}

// Program is the root node.
type Program struct {
	Statements []Statement
}

// Assignment: IDENTIFIER '=' expr
type Assignment struct {
	Name  lexer.Token
	Value Expr
}

func (a *Assignment) Pos() lexer.Token { return a.Name }
func (a *Assignment) stmtNode()        {}

// WhileLoop: while '(' expr ')' block
type WhileLoop struct {
	Token lexer.Token
	Cond  Expr
	Body  *Block
}

func (w *WhileLoop) Pos() lexer.Token { return w.Token }
func (w *WhileLoop) stmtNode()        {}

// Block: '{' statement* '}'. Blocks introduce no scope.
type Block struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *Block) Pos() lexer.Token { return b.Token }
func (b *Block) stmtNode()        {}

// BinaryOp: one of + - * / %, left-associative.
type BinaryOp struct {
	Op    lexer.Token
	Left  Expr
	Right Expr
}

func (b *BinaryOp) Pos() lexer.Token { return b.Op }
func (b *BinaryOp) exprNode()        {}

// NumberLiteral holds the decoded integer value.
type NumberLiteral struct {
	Token lexer.Token
	Value int64
}

func (n *NumberLiteral) Pos() lexer.Token { return n.Token }
func (n *NumberLiteral) exprNode()        {}

// VariableRef reads a variable; the name is the token's lexeme.
type VariableRef struct {
	Token lexer.Token
}

func (v *VariableRef) Pos() lexer.Token { return v.Token }
func (v *VariableRef) exprNode()        {}

// Name returns the referenced variable name.
func (v *VariableRef) Name() string { return v.Token.Lexeme }
