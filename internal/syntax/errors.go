package syntax

import (
	"errors"
	"fmt"

	"github.com/you-not-fish/mica/internal/types"
)

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	_               ErrorKind = iota
	Lexical                   // malformed token
	UnexpectedToken           // token of the wrong kind
	UnexpectedEOF             // input ended inside a construct
	BadLiteral                // literal out of range
	UnknownID                 // name not resolvable
	DuplicateID               // name already declared in the same scope
	InvalidType               // value type not assignable to the required type
	ArgCount                  // call arguments do not match the signature
	ReturnCount               // return values do not match the signature
	Unsupported               // recognized but unimplemented construct
	TooDeep                   // nesting exceeds the configured limit
)

var errorKindNames = [...]string{
	Lexical:         "lexical error",
	UnexpectedToken: "syntax error",
	UnexpectedEOF:   "unexpected end of input",
	BadLiteral:      "bad literal",
	UnknownID:       "unknown identifier",
	DuplicateID:     "duplicate identifier",
	InvalidType:     "invalid type",
	ArgCount:        "argument count",
	ReturnCount:     "return count",
	Unsupported:     "unsupported",
	TooDeep:         "nesting too deep",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Error is the single failure type produced by the parser. Only the fields
// relevant to Kind are set.
type Error struct {
	Pos  Pos
	Kind ErrorKind
	Msg  string

	Name     string     // UnknownID, DuplicateID, ArgCount
	Expected types.Type // InvalidType
	Actual   types.Type // InvalidType
	Want     int        // ArgCount, ReturnCount
	Got      int        // ArgCount, ReturnCount

	Err error // underlying cause, if any
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIncomplete reports whether err is a parse failure caused by input that
// ended before the current construct was closed.
func IsIncomplete(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == UnexpectedEOF
}

func errorf(pos Pos, kind ErrorKind, format string, args ...any) *Error {
	return &Error{Pos: pos, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func invalidType(pos Pos, actual, expected types.Type) *Error {
	e := errorf(pos, InvalidType, "cannot use value of type %s as %s", actual, expected)
	e.Actual = actual
	e.Expected = expected
	return e
}

func unknownID(pos Pos, name string, err error) *Error {
	e := errorf(pos, UnknownID, "undefined: %s", name)
	e.Name = name
	e.Err = err
	return e
}

func duplicateID(pos Pos, name string, err error) *Error {
	e := errorf(pos, DuplicateID, "%s redeclared in this scope", name)
	e.Name = name
	e.Err = err
	return e
}

// argCount reports a call with got arguments where want are required. When
// got exceeds want it is a lower bound: the rest of the list is not parsed.
func argCount(pos Pos, name string, want, got int) *Error {
	var e *Error
	if got > want {
		e = errorf(pos, ArgCount, "too many arguments in call to %s: want %d", name, want)
	} else {
		e = errorf(pos, ArgCount, "not enough arguments in call to %s: want %d, got %d", name, want, got)
	}
	e.Name = name
	e.Want = want
	e.Got = got
	return e
}

func returnCount(pos Pos, want, got int) *Error {
	var e *Error
	if got > want {
		e = errorf(pos, ReturnCount, "too many return values: want %d", want)
	} else {
		e = errorf(pos, ReturnCount, "not enough return values: want %d, got %d", want, got)
	}
	e.Want = want
	e.Got = got
	return e
}
