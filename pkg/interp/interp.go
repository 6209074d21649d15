// Package interp executes a parsed program by walking its AST. The node set
// is closed, so dispatch is an exhaustive type switch; the parser guarantees
// structural validity and only the runtime conditions (undefined variables,
// division by zero) can fail here.
package interp

import (
	"fmt"

	"github.com/agenthands/pilang/pkg/compiler/ast"
	"github.com/agenthands/pilang/pkg/compiler/lexer"
	"github.com/agenthands/pilang/pkg/core/diag"
)

// Run executes the program against a fresh environment and returns the
// final variable state. The first runtime error aborts execution and the
// partial environment is discarded.
func Run(prog *ast.Program) (Env, error) {
	env := NewEnv()
	for _, stmt := range prog.Statements {
		if err := execStmt(stmt, env); err != nil {
			return nil, err
		}
	}
	return env, nil
}

func execStmt(stmt ast.Statement, env Env) error {
	switch s := stmt.(type) {
	case *ast.Assignment:
		value, err := evalExpr(s.Value, env)
		if err != nil {
			return err
		}
		env.Set(s.Name.Lexeme, value)
		return nil

	case *ast.WhileLoop:
		// Plain check/execute cycle; a script whose condition never
		// reaches zero runs forever.
		for {
			cond, err := evalExpr(s.Cond, env)
			if err != nil {
				return err
			}
			if cond == 0 {
				return nil
			}
			for _, body := range s.Body.Statements {
				if err := execStmt(body, env); err != nil {
					return err
				}
			}
		}

	case *ast.Block:
		for _, inner := range s.Statements {
			if err := execStmt(inner, env); err != nil {
				return err
			}
		}
		return nil

	default:
		panic(fmt.Sprintf("interp: unknown statement node %T", stmt))
	}
}

// evalExpr evaluates operands left to right. Division truncates toward zero
// and the remainder takes the sign of the dividend (Go's convention).
func evalExpr(expr ast.Expr, env Env) (int64, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return e.Value, nil

	case *ast.VariableRef:
		value, ok := env.Lookup(e.Name())
		if !ok {
			tok := e.Token
			return 0, diag.Errorf(diag.KindUndefinedVariable, tok.Line, tok.Col, "variable %q read before assignment", e.Name())
		}
		return value, nil

	case *ast.BinaryOp:
		left, err := evalExpr(e.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := evalExpr(e.Right, env)
		if err != nil {
			return 0, err
		}
		switch e.Op.Kind {
		case lexer.KindPlus:
			return left + right, nil
		case lexer.KindMinus:
			return left - right, nil
		case lexer.KindStar:
			return left * right, nil
		case lexer.KindSlash:
			if right == 0 {
				return 0, diag.Errorf(diag.KindDivisionByZero, e.Op.Line, e.Op.Col, "division by zero")
			}
			return left / right, nil
		case lexer.KindPercent:
			if right == 0 {
				return 0, diag.Errorf(diag.KindDivisionByZero, e.Op.Line, e.Op.Col, "modulo by zero")
			}
			return left % right, nil
		default:
			panic(fmt.Sprintf("interp: unknown binary operator %s", e.Op.Kind))
		}

	default:
		panic(fmt.Sprintf("interp: unknown expression node %T", expr))
	}
}
