package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateID is returned when a name is declared twice in one scope.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrUnknownID is returned when a name is not found in the scope chain.
	ErrUnknownID = errors.New("unknown identifier")
)

// Scope is one layer of the symbol environment. Variables and functions live
// in separate namespaces, so a variable and a function may share a name.
// A scope lives exactly as long as the block it was opened for.
type Scope struct {
	parent  *Scope
	vars    map[string]*Var
	funcs   map[string]*Func
	comment string // debugging comment (e.g., "function foo", "while")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	return &Scope{
		parent:  parent,
		vars:    make(map[string]*Var),
		funcs:   make(map[string]*Func),
		comment: comment,
	}
}

// Parent returns the enclosing scope, or nil for the outermost scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Comment returns the scope's comment (for debugging).
func (s *Scope) Comment() string {
	return s.comment
}

// DeclareVar declares a variable in this scope. Only this scope is checked
// for collisions; shadowing an outer variable is allowed.
func (s *Scope) DeclareVar(name string, typ Type) (*Var, error) {
	if _, ok := s.vars[name]; ok {
		return nil, ErrDuplicateID
	}
	v := NewVar(name, typ)
	v.parent = s
	s.vars[name] = v
	return v, nil
}

// LookupVar resolves a variable by searching this scope and then its
// ancestors.
func (s *Scope) LookupVar(name string) (*Var, error) {
	for scope := s; scope != nil; scope = scope.parent {
		if v := scope.vars[name]; v != nil {
			return v, nil
		}
	}
	return nil, ErrUnknownID
}

// DeclareFunc declares a function in this scope. Like DeclareVar it only
// checks this scope.
func (s *Scope) DeclareFunc(name string, sig *Signature) (*Func, error) {
	if _, ok := s.funcs[name]; ok {
		return nil, ErrDuplicateID
	}
	f := NewFunc(name, sig)
	f.parent = s
	s.funcs[name] = f
	return f, nil
}

// LookupFunc resolves a function by searching this scope and then its
// ancestors.
func (s *Scope) LookupFunc(name string) (*Func, error) {
	for scope := s; scope != nil; scope = scope.parent {
		if f := scope.funcs[name]; f != nil {
			return f, nil
		}
	}
	return nil, ErrUnknownID
}

// Names returns the names of all variables and functions declared in this
// scope, sorted alphabetically. A name used in both namespaces appears once.
func (s *Scope) Names() []string {
	seen := make(map[string]bool, len(s.vars)+len(s.funcs))
	names := make([]string, 0, len(s.vars)+len(s.funcs))
	for name := range s.vars {
		seen[name] = true
		names = append(names, name)
	}
	for name := range s.funcs {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// NumObjects returns the number of variables and functions in the scope.
func (s *Scope) NumObjects() int {
	return len(s.vars) + len(s.funcs)
}

// String returns a string representation of the scope chain for debugging,
// innermost scope first.
func (s *Scope) String() string {
	var buf strings.Builder
	for scope, depth := s, 0; scope != nil; scope, depth = scope.parent, depth+1 {
		scope.writeTo(&buf, depth)
	}
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		if v := s.vars[name]; v != nil {
			fmt.Fprintf(buf, "%s  var %s: %s\n", prefix, name, v.typ)
		}
		if f := s.funcs[name]; f != nil {
			fmt.Fprintf(buf, "%s  func %s: %s\n", prefix, name, f.sig)
		}
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
