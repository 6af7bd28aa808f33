package syntax

import (
	"math"
	"strings"
	"testing"

	"github.com/you-not-fish/mica/internal/types"
)

func initializer(t *testing.T, src string) Expr {
	t.Helper()
	prog := parseProgram(t, src)
	d, ok := prog.Stmts[len(prog.Stmts)-1].(*DeclareStmt)
	if !ok || d.Value == nil {
		t.Fatalf("%q: last statement has no initializer", src)
	}
	return d.Value
}

func TestIntLiterals(t *testing.T) {
	tests := []struct {
		lit  string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"0x1F", 31},
		{"0XfF", 255},
		{"0o17", 15},
		{"0b1011", 11},
		{"9223372036854775807", math.MaxInt64},
	}

	for _, tt := range tests {
		x := initializer(t, "int v = "+tt.lit)
		lit, ok := x.(*IntLit)
		if !ok {
			t.Errorf("%s: got %T, want *IntLit", tt.lit, x)
			continue
		}
		if lit.Value != tt.want {
			t.Errorf("%s: Value = %d, want %d", tt.lit, lit.Value, tt.want)
		}
		if lit.Type() != types.Int {
			t.Errorf("%s: Type = %v, want int", tt.lit, lit.Type())
		}
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		lit  string
		want float64
	}{
		{"1.5", 1.5},
		{"0.25", 0.25},
		{"3.", 3},
		{"1e3", 1000},
		{"2.5e-2", 0.025},
		{"6E+2", 600},
	}

	for _, tt := range tests {
		x := initializer(t, "float v = "+tt.lit)
		lit, ok := x.(*FloatLit)
		if !ok {
			t.Errorf("%s: got %T, want *FloatLit", tt.lit, x)
			continue
		}
		if lit.Value != tt.want {
			t.Errorf("%s: Value = %g, want %g", tt.lit, lit.Value, tt.want)
		}
	}
}

func TestStringAndBoolLiterals(t *testing.T) {
	s := initializer(t, `string s = "tab\there\n"`).(*StringLit)
	if s.Value != "tab\there\n" {
		t.Errorf("string Value = %q", s.Value)
	}

	for src, want := range map[string]bool{"bool b = true": true, "bool b = false": false} {
		b := initializer(t, src).(*BoolLit)
		if b.Value != want || b.Type() != types.Bool {
			t.Errorf("%q: Value = %v (%v), want %v", src, b.Value, b.Type(), want)
		}
	}
}

func TestBadLiterals(t *testing.T) {
	tests := []struct {
		src     string
		wantMsg string
	}{
		{"int v = 9223372036854775808", "integer literal 9223372036854775808 overflows int"},
		{"int v = 0xFFFFFFFFFFFFFFFFF", "overflows int"},
		{"float v = 1e400", "float literal 1e400 overflows float"},
		// The literal is parsed before the unary minus applies.
		{"int v = -9223372036854775808", "integer literal 9223372036854775808 overflows int"},
	}

	for _, tt := range tests {
		e := parseError(t, tt.src)
		if e.Kind != BadLiteral {
			t.Errorf("%q: Kind = %v, want %v", tt.src, e.Kind, BadLiteral)
		}
		if !strings.Contains(e.Msg, tt.wantMsg) {
			t.Errorf("%q: Msg = %q, want %q", tt.src, e.Msg, tt.wantMsg)
		}
	}
}

func TestMinInt(t *testing.T) {
	x := initializer(t, "int v = -9223372036854775807 - 1")
	if got, want := ExprString(x), "((-9223372036854775807) - 1)"; got != want {
		t.Errorf("ExprString = %q, want %q", got, want)
	}
	if x.Type() != types.Int {
		t.Errorf("Type = %v, want int", x.Type())
	}
}

// Any expression whose type is assignable to the declared type is a valid
// right-hand side, including comparisons and int variables widened to float.
func TestValueExpressions(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantExpr string
		wantType types.Type
	}{
		{"bool_comparison", "bool b = 1 < 2", "(1 < 2)", types.Bool},
		{"bool_logic", "bool p = true\nbool b = p && !p", "(p && (!p))", types.Bool},
		{"int_var_to_float", "int n = 1\nfloat f = n", "n", types.Int},
		{"int_expr_to_float", "int n = 1\nfloat f = n * 2", "(n * 2)", types.Int},
		{"string_var", "string a = \"x\"\nstring b = a", "a", types.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := initializer(t, tt.src)
			if got := ExprString(x); got != tt.wantExpr {
				t.Errorf("ExprString = %q, want %q", got, tt.wantExpr)
			}
			if x.Type() != tt.wantType {
				t.Errorf("Type = %v, want %v", x.Type(), tt.wantType)
			}
		})
	}
}

func TestTypeKeywords(t *testing.T) {
	tests := []struct {
		src  string
		want types.Type
	}{
		{"int f() {\n    return 1\n}", types.Int},
		{"float f() {\n    return 1\n}", types.Float},
		{"bool f() {\n    return true\n}", types.Bool},
		{"string f() {\n    return \"\"\n}", types.String},
		{"void f() {\n}", types.Void},
	}

	for _, tt := range tests {
		prog := parseProgram(t, tt.src)
		fd := prog.Stmts[0].(*FuncDecl)
		if fd.Result != tt.want || fd.Sig.Result() != tt.want {
			t.Errorf("%q: Result = %v, Sig.Result = %v, want %v", tt.src, fd.Result, fd.Sig.Result(), tt.want)
		}
	}

	// void is a result type only.
	if e := parseError(t, "int f(void v) {\n}"); e.Kind != UnexpectedToken {
		t.Errorf("void parameter: Kind = %v, want %v", e.Kind, UnexpectedToken)
	}
}

func TestUndefinedFunctionMessage(t *testing.T) {
	e := parseError(t, "int x = missing(1)")
	if e.Kind != UnknownID || e.Msg != "undefined function: missing" {
		t.Errorf("got %v %q", e.Kind, e.Msg)
	}

	e = parseError(t, "void f() {\n}\nint f() {\n    return 1\n}")
	if e.Msg != "function f redeclared in this scope" {
		t.Errorf("Msg = %q", e.Msg)
	}
}
