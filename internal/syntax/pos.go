package syntax

import "fmt"

// Pos is a source position. The zero value is an invalid position and
// is used by nodes the parser synthesizes without source text.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (runes from line start)
}

// NoPos is the invalid position.
var NoPos Pos

// NewPos creates a new Pos. Line and column numbers are 1-based.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String formats the position as "filename:line:col", "line:col" when the
// filename is empty, or "-" when the position is invalid.
func (p Pos) String() string {
	switch {
	case !p.IsValid():
		return "-"
	case p.filename != "":
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position refers to source text.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	return p.filename
}
