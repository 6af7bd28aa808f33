package syntax

import (
	"io"
	"unicode/utf8"
)

// source reads UTF-8 text one rune at a time and tracks the position of
// the current rune.
type source struct {
	buf  []byte // entire input
	offs int    // byte offset of the next rune in buf

	filename string
	line     uint32 // line of ch (1-based)
	col      uint32 // column of ch (1-based, in runes)

	ch rune // current rune, -1 at EOF

	errh func(line, col uint32, msg string)
}

// newSource reads all of src and positions the reader on the first rune.
// errh receives lexical errors; it may be nil.
func newSource(filename string, src io.Reader, errh func(line, col uint32, msg string)) *source {
	s := &source{
		filename: filename,
		line:     1,
		ch:       -1, // no rune yet; the first nextch moves col to 1
		errh:     errh,
	}

	var err error
	if s.buf, err = io.ReadAll(src); err != nil {
		s.error("error reading source: " + err.Error())
		return s
	}

	s.nextch()
	return s
}

// nextch advances to the next rune. The position always describes s.ch.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	if r == utf8.RuneError && width == 1 {
		s.error("invalid UTF-8 encoding")
	}
	s.ch = r
	s.offs += width
}

// pos returns the position of the current rune.
func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// error reports a lexical error at the current position.
func (s *source) error(msg string) {
	if s.errh != nil {
		s.errh(s.line, s.col, msg)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || 'a' <= lower(r) && lower(r) <= 'f'
}

func isOctalDigit(r rune) bool {
	return '0' <= r && r <= '7'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// lower maps ASCII upper-case letters to lower case; other runes that are
// compared against it stay distinguishable.
func lower(r rune) rune {
	return ('a' - 'A') | r
}

// isWhitespace reports whether r is skipped between tokens.
// '\n' is not whitespace: it is the statement terminator.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

// isOperatorStart reports whether r can start an operator or delimiter.
func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '&', '|', '<', '>', '=', '!',
		'(', ')', '{', '}', ',':
		return true
	}
	return false
}
