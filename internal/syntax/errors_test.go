package syntax

import (
	"errors"
	"fmt"
	"testing"

	"github.com/you-not-fish/mica/internal/types"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{Lexical, "lexical error"},
		{UnexpectedToken, "syntax error"},
		{UnexpectedEOF, "unexpected end of input"},
		{InvalidType, "invalid type"},
		{TooDeep, "nesting too deep"},
		{ErrorKind(0), "ErrorKind(0)"},
		{ErrorKind(200), "ErrorKind(200)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorFormat(t *testing.T) {
	e := invalidType(NewPos("a.mica", 3, 7), types.String, types.Int)
	if got, want := e.Error(), "a.mica:3:7: cannot use value of type string as int"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	e = argCount(NewPos("a.mica", 1, 1), "f", 2, 1)
	if got, want := e.Msg, "not enough arguments in call to f: want 2, got 1"; got != want {
		t.Errorf("Msg = %q, want %q", got, want)
	}
	e = argCount(NewPos("a.mica", 1, 1), "f", 2, 3)
	if got, want := e.Msg, "too many arguments in call to f: want 2"; got != want {
		t.Errorf("Msg = %q, want %q", got, want)
	}
	e = returnCount(NewPos("a.mica", 1, 1), 1, 0)
	if got, want := e.Msg, "not enough return values: want 1, got 0"; got != want {
		t.Errorf("Msg = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	e := unknownID(NewPos("", 1, 1), "x", types.ErrUnknownID)
	wrapped := fmt.Errorf("checking: %w", e)

	if !errors.Is(wrapped, types.ErrUnknownID) {
		t.Error("errors.Is through wrapping failed")
	}
	var pe *Error
	if !errors.As(wrapped, &pe) {
		t.Fatal("errors.As did not find *Error")
	}
	if pe.Name != "x" {
		t.Errorf("Name = %q, want x", pe.Name)
	}
	if IsIncomplete(wrapped) {
		t.Error("unknown identifier reported as incomplete")
	}
	if !IsIncomplete(fmt.Errorf("repl: %w", errorf(NoPos, UnexpectedEOF, "eof"))) {
		t.Error("wrapped UnexpectedEOF not reported as incomplete")
	}
}
