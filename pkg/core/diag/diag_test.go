package diag_test

import (
	"testing"

	"github.com/agenthands/pilang/pkg/core/diag"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *diag.Error
		want string
	}{
		{
			name: "With Position",
			err:  diag.Errorf(diag.KindSyntax, 3, 7, "expected expression, found %q", ";"),
			want: `syntax error at 3:7: expected expression, found ";"`,
		},
		{
			name: "Without Position",
			err:  &diag.Error{Kind: diag.KindDivisionByZero, Msg: "modulo by zero"},
			want: "division by zero: modulo by zero",
		},
		{
			name: "Undefined Variable",
			err:  diag.Errorf(diag.KindUndefinedVariable, 1, 5, "variable %q read before assignment", "x"),
			want: `undefined variable at 1:5: variable "x" read before assignment`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
