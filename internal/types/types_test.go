package types

import "testing"

func TestTypes(t *testing.T) {
	tests := []struct {
		typ        Type
		name       string
		numeric    bool
		declarable bool
	}{
		{Int, "int", true, true},
		{Float, "float", true, true},
		{Bool, "bool", false, true},
		{String, "string", false, true},
		{Void, "void", false, false},
		{Invalid, "invalid type", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.typ.IsNumeric(); got != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", got, tt.numeric)
			}
			if got := tt.typ.IsDeclarable(); got != tt.declarable {
				t.Errorf("IsDeclarable() = %v, want %v", got, tt.declarable)
			}
		})
	}
}

func TestTypeStringOutOfRange(t *testing.T) {
	if got := Type(42).String(); got != "Type(42)" {
		t.Errorf("String() = %q, want %q", got, "Type(42)")
	}
}

func TestSignature(t *testing.T) {
	tests := []struct {
		name   string
		sig    *Signature
		str    string
		result Type
	}{
		{"void no params", NewSignature(Void), "func()", Void},
		{"int result", NewSignature(Int, Float, Bool), "func(float, bool) int", Int},
		{"multi result", &Signature{Results: []Type{Int, String}}, "func() (int, string)", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sig.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.sig.Result(); got != tt.result {
				t.Errorf("Result() = %v, want %v", got, tt.result)
			}
		})
	}
}
