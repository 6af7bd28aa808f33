package types

import "strings"

// Var is a declared variable.
type Var struct {
	name   string
	typ    Type
	parent *Scope
}

// NewVar creates a variable object.
func NewVar(name string, typ Type) *Var {
	return &Var{name: name, typ: typ}
}

func (v *Var) Name() string   { return v.name }
func (v *Var) Type() Type     { return v.typ }
func (v *Var) Parent() *Scope { return v.parent }

// Signature describes a function's results and ordered parameter types.
// A void function has no results. Results is a sequence so that functions
// with several results can be represented; the parser currently declares at
// most one.
type Signature struct {
	Results []Type
	Params  []Type
}

// NewSignature returns a signature with a single result, or no results when
// result is Void.
func NewSignature(result Type, params ...Type) *Signature {
	sig := &Signature{Params: params}
	if result != Void {
		sig.Results = []Type{result}
	}
	return sig
}

// Result returns the unique result type, Void for a function without
// results, and Invalid when there is more than one result.
func (s *Signature) Result() Type {
	switch len(s.Results) {
	case 0:
		return Void
	case 1:
		return s.Results[0]
	}
	return Invalid
}

// String returns the signature in declaration order, e.g. "func(int, bool) float".
func (s *Signature) String() string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	switch len(s.Results) {
	case 0:
	case 1:
		b.WriteString(" " + s.Results[0].String())
	default:
		b.WriteString(" (")
		for i, r := range s.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.String())
		}
		b.WriteString(")")
	}
	return b.String()
}

// Func is a declared function.
type Func struct {
	name   string
	sig    *Signature
	parent *Scope
}

// NewFunc creates a function object.
func NewFunc(name string, sig *Signature) *Func {
	return &Func{name: name, sig: sig}
}

func (f *Func) Name() string           { return f.name }
func (f *Func) Signature() *Signature { return f.sig }
func (f *Func) Parent() *Scope         { return f.parent }
