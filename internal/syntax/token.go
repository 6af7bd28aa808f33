// Package syntax implements lexical analysis, parsing and name/type
// resolution for the Mica programming language.
package syntax

import (
	"fmt"

	"github.com/you-not-fish/mica/internal/types"
)

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF     Token = iota // end of file
	_Error                // lexical error
	_Newline              // statement terminator

	// Literals
	_Name    // identifier: foo, total, isDone
	_Literal // literal value (used with LitKind)

	// Assignment
	_Assign   // =
	_AssignOp // op=   (+=, -=, *=, /=, %=)
	_IncOp    // opop  (++, --)

	// Logical operators
	_OrOr   // ||
	_AndAnd // &&

	// Comparison operators
	_Eql // ==
	_Neq // !=
	_Lss // <
	_Leq // <=
	_Gtr // >
	_Geq // >=

	// Arithmetic operators (additive)
	_Add // +
	_Sub // -

	// Arithmetic operators (multiplicative)
	_Mul // *
	_Div // /
	_Rem // %

	// Unary operators
	_Not // !

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,

	// Keywords
	_Else
	_For
	_If
	_In
	_Return
	_While

	// Boolean literals
	_True
	_False

	// Type keywords
	_Int
	_Float
	_Bool
	_String
	_Void

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:     "EOF",
	_Error:   "ERROR",
	_Newline: "NEWLINE",

	_Name:    "NAME",
	_Literal: "LITERAL",

	_Assign:   "=",
	_AssignOp: "op=",
	_IncOp:    "opop",

	_OrOr:   "||",
	_AndAnd: "&&",

	_Eql: "==",
	_Neq: "!=",
	_Lss: "<",
	_Leq: "<=",
	_Gtr: ">",
	_Geq: ">=",

	_Add: "+",
	_Sub: "-",

	_Mul: "*",
	_Div: "/",
	_Rem: "%",

	_Not: "!",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",

	_Else:   "else",
	_For:    "for",
	_If:     "if",
	_In:     "in",
	_Return: "return",
	_While:  "while",

	_True:  "true",
	_False: "false",

	_Int:    "int",
	_Float:  "float",
	_Bool:   "bool",
	_String: "string",
	_Void:   "void",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: ||
//	2: &&
//	3: == != < <= > >=
//	4: + -
//	5: * / %
func (t Token) Precedence() int {
	switch t {
	case _OrOr:
		return 1
	case _AndAnd:
		return 2
	case _Eql, _Neq, _Lss, _Leq, _Gtr, _Geq:
		return 3
	case _Add, _Sub:
		return 4
	case _Mul, _Div, _Rem:
		return 5
	}
	return 0
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Else && t <= _Void
}

// IsOperator reports whether t is an operator token.
func (t Token) IsOperator() bool {
	return t >= _Assign && t <= _Not
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsVarType reports whether t names a declarable variable type.
func (t Token) IsVarType() bool {
	return t >= _Int && t <= _String
}

// IsReturnType reports whether t names a function result type.
func (t Token) IsReturnType() bool {
	return t.IsVarType() || t == _Void
}

// Type returns the type named by a type keyword, or types.Invalid.
func (t Token) Type() types.Type {
	switch t {
	case _Int:
		return types.Int
	case _Float:
		return types.Float
	case _Bool:
		return types.Bool
	case _String:
		return types.String
	case _Void:
		return types.Void
	}
	return types.Invalid
}

// Exported operator tokens, used as the operator tag of expression nodes.
const (
	OrOr   Token = _OrOr
	AndAnd Token = _AndAnd
	Eql    Token = _Eql
	Neq    Token = _Neq
	Lss    Token = _Lss
	Leq    Token = _Leq
	Gtr    Token = _Gtr
	Geq    Token = _Geq
	Add    Token = _Add
	Sub    Token = _Sub
	Mul    Token = _Mul
	Div    Token = _Div
	Rem    Token = _Rem
	Not    Token = _Not
	Assign Token = _Assign
)

// LitKind represents the kind of a literal token.
type LitKind uint8

const (
	IntLitKind    LitKind = iota // 123, 0x1F, 0o77, 0b1010
	FloatLitKind                 // 3.14, 1e10, 2.5e-3
	StringLitKind                // "hello", "line\n"
)

// litKindNames maps literal kinds to their string representation.
var litKindNames = [...]string{
	IntLitKind:    "int",
	FloatLitKind:  "float",
	StringLitKind: "string",
}

// String returns the string representation of the literal kind.
func (k LitKind) String() string {
	if k <= StringLitKind {
		return litKindNames[k]
	}
	return fmt.Sprintf("LitKind(%d)", k)
}

// Type returns the value type of a literal of kind k.
func (k LitKind) Type() types.Type {
	switch k {
	case IntLitKind:
		return types.Int
	case FloatLitKind:
		return types.Float
	case StringLitKind:
		return types.String
	}
	return types.Invalid
}

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"else":   _Else,
	"for":    _For,
	"if":     _If,
	"in":     _In,
	"return": _Return,
	"while":  _While,

	"true":  _True,
	"false": _False,

	"int":    _Int,
	"float":  _Float,
	"bool":   _Bool,
	"string": _String,
	"void":   _Void,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
