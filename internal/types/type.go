// Package types implements the type set and the symbol environment of the
// Mica language. It has no dependency on the AST so that the parser can
// resolve names while it builds nodes.
package types

import "fmt"

// Type is one of the closed set of Mica types.
type Type uint8

const (
	Invalid Type = iota // invalid type

	// Declarable variable types
	Int
	Float
	Bool
	String

	// Function return marker
	Void
)

// Info describes properties of a type.
type Info int

const (
	IsInteger Info = 1 << iota
	IsFloat
	IsBoolean
	IsString
	IsDeclarable
	IsNumeric = IsInteger | IsFloat
)

var typeInfo = [...]struct {
	name string
	info Info
}{
	Invalid: {"invalid type", 0},
	Int:     {"int", IsInteger | IsDeclarable},
	Float:   {"float", IsFloat | IsDeclarable},
	Bool:    {"bool", IsBoolean | IsDeclarable},
	String:  {"string", IsString | IsDeclarable},
	Void:    {"void", 0},
}

// String returns the keyword spelling of the type.
func (t Type) String() string {
	if int(t) < len(typeInfo) {
		return typeInfo[t].name
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Info returns the property bits of the type.
func (t Type) Info() Info {
	if int(t) < len(typeInfo) {
		return typeInfo[t].info
	}
	return 0
}

// IsNumeric reports whether t is int or float.
func (t Type) IsNumeric() bool {
	return t.Info()&IsNumeric != 0
}

// IsDeclarable reports whether a variable may be declared with type t.
// void is only valid as a function result.
func (t Type) IsDeclarable() bool {
	return t.Info()&IsDeclarable != 0
}
