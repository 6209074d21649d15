package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/agenthands/pilang/pkg/compiler/ast"
	"github.com/agenthands/pilang/pkg/compiler/lexer"
	"github.com/agenthands/pilang/pkg/compiler/parser"
	"github.com/agenthands/pilang/pkg/core/diag"
)

func parse(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	p, err := parser.NewParser(lexer.NewScanner([]byte(src)))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

func TestParseValidPrograms(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr bool
	}{
		{
			name: "Assignments With Terminators",
			src:  "a = 1; b = 2;",
		},
		{
			name: "Assignments Without Terminators",
			src:  "a = 1\nb = 2",
		},
		{
			name: "Stray Semicolons",
			src:  ";;; a = 1 ;;; b = a ;;",
		},
		{
			name: "While With Block",
			src:  "n = 3 while (n) { n = n - 1 }",
		},
		{
			name: "Nested While",
			src:  "i = 2 while (i) { j = 2 while (j) { j = j - 1 } i = i - 1 }",
		},
		{
			name: "Empty Block Body",
			src:  "while (0) { }",
		},
		{
			name: "Bare Block Statement",
			src:  "{ a = 1 { b = 2 } }",
		},
		{
			name: "Comments Only",
			src:  "# just a comment\n\n# another\n",
		},
		{
			name:    "Missing Expression",
			src:     "x = ;",
			wantErr: true,
		},
		{
			name:    "Missing Assign",
			src:     "x 1",
			wantErr: true,
		},
		{
			name:    "Unclosed Paren",
			src:     "x = (1 + 2",
			wantErr: true,
		},
		{
			name:    "Unclosed Block",
			src:     "while (1) { x = 1",
			wantErr: true,
		},
		{
			name:    "While Without Parens",
			src:     "while 1 { }",
			wantErr: true,
		},
		{
			name:    "Unary Minus Unsupported",
			src:     "x = -5",
			wantErr: true,
		},
		{
			name:    "Trailing Operator",
			src:     "x = 1 +",
			wantErr: true,
		},
		{
			name:    "Stray Closing Brace",
			src:     "x = 1 }",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.src)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	// a + b * c parses as a + (b * c)
	prog, err := parse(t, "x = a + b * c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	assign := prog.Statements[0].(*ast.Assignment)
	add, ok := assign.Value.(*ast.BinaryOp)
	if !ok || add.Op.Kind != lexer.KindPlus {
		t.Fatalf("expected top-level +, got %+v", assign.Value)
	}
	if ref, ok := add.Left.(*ast.VariableRef); !ok || ref.Name() != "a" {
		t.Errorf("expected left operand a, got %+v", add.Left)
	}
	mul, ok := add.Right.(*ast.BinaryOp)
	if !ok || mul.Op.Kind != lexer.KindStar {
		t.Fatalf("expected right operand b * c, got %+v", add.Right)
	}
}

func TestParseParensOverridePrecedence(t *testing.T) {
	// (a + b) * c parses as (a + b) * c
	prog, err := parse(t, "x = (a + b) * c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	assign := prog.Statements[0].(*ast.Assignment)
	mul, ok := assign.Value.(*ast.BinaryOp)
	if !ok || mul.Op.Kind != lexer.KindStar {
		t.Fatalf("expected top-level *, got %+v", assign.Value)
	}
	if add, ok := mul.Left.(*ast.BinaryOp); !ok || add.Op.Kind != lexer.KindPlus {
		t.Errorf("expected left operand a + b, got %+v", mul.Left)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	// a - b - c parses as (a - b) - c
	prog, err := parse(t, "x = a - b - c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	assign := prog.Statements[0].(*ast.Assignment)
	outer, ok := assign.Value.(*ast.BinaryOp)
	if !ok || outer.Op.Kind != lexer.KindMinus {
		t.Fatalf("expected top-level -, got %+v", assign.Value)
	}
	inner, ok := outer.Left.(*ast.BinaryOp)
	if !ok || inner.Op.Kind != lexer.KindMinus {
		t.Fatalf("expected left-nested a - b, got %+v", outer.Left)
	}
	if ref, ok := outer.Right.(*ast.VariableRef); !ok || ref.Name() != "c" {
		t.Errorf("expected right operand c, got %+v", outer.Right)
	}
}

func TestParseCommentOnlyProgramIsEmpty(t *testing.T) {
	prog, err := parse(t, "# nothing here\n\n# still nothing\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(prog.Statements) != 0 {
		t.Errorf("expected empty program, got %d statements", len(prog.Statements))
	}
}

func TestParseSyntaxErrorPosition(t *testing.T) {
	// The defect is the ';' where an expression was expected.
	_, err := parse(t, "x = ;")
	if err == nil {
		t.Fatal("expected syntax error, got none")
	}
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *diag.Error, got %T", err)
	}
	if derr.Kind != diag.KindSyntax {
		t.Errorf("expected KindSyntax, got %v", derr.Kind)
	}
	if derr.Line != 1 || derr.Col != 5 {
		t.Errorf("expected position 1:5, got %d:%d", derr.Line, derr.Col)
	}
	if !strings.Contains(derr.Msg, "expression") {
		t.Errorf("expected message to name the expected construct, got %q", derr.Msg)
	}
}

func TestParseLexErrorSurfaces(t *testing.T) {
	_, err := parse(t, "x = 1 @")
	if err == nil {
		t.Fatal("expected lex error, got none")
	}
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected *diag.Error, got %T", err)
	}
	if derr.Kind != diag.KindLex {
		t.Errorf("expected KindLex, got %v", derr.Kind)
	}
}

func TestParseIntegerOverflow(t *testing.T) {
	_, err := parse(t, "x = 99999999999999999999")
	if err == nil {
		t.Fatal("expected syntax error for out-of-range literal, got none")
	}
	var derr *diag.Error
	if !errors.As(err, &derr) || derr.Kind != diag.KindSyntax {
		t.Errorf("expected KindSyntax, got %v", err)
	}
}
