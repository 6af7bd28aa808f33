package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Scanner performs lexical analysis on Mica source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token   // token type
	lit    string  // token literal (identifier name, number, string content)
	kind   LitKind // literal kind (only valid when tok == _Literal)
	op     Token   // operator of _AssignOp and _IncOp
	tokPos Pos     // token start position

	// nlsemi is set while the current line holds a token that still needs a
	// terminator; at EOF it makes the scanner emit one synthetic newline.
	nlsemi bool

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
// The errh function is called for each lexical error; if nil, errors are silently ignored.
func NewScanner(filename string, src io.Reader, errh func(line, col uint32, msg string)) *Scanner {
	return &Scanner{source: *newSource(filename, src, errh)}
}

// Next advances to the next token.
func (s *Scanner) Next() {
redo:
	s.skipWhitespace()
	s.tokPos = s.pos()
	s.op = 0

	switch {
	case s.ch == '\n':
		s.nextch()
		s.tok = _Newline
		s.lit = "newline"
		s.nlsemi = false
		return

	case s.ch < 0:
		if s.nlsemi {
			s.tok = _Newline
			s.lit = "EOF"
			s.nlsemi = false
			return
		}
		s.tok = _EOF
		s.lit = ""
		return

	case isLetter(s.ch):
		s.scanIdent()

	case isDigit(s.ch):
		s.scanNumber()

	case s.ch == '"':
		s.scanString()

	case isOperatorStart(s.ch):
		if s.scanOperator() {
			// a comment was skipped
			goto redo
		}

	default:
		s.error(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
		goto redo
	}

	s.nlsemi = true
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal value.
func (s *Scanner) Literal() string {
	return s.lit
}

// LitKind returns the current literal's kind (only valid when Token() == _Literal).
func (s *Scanner) LitKind() LitKind {
	return s.kind
}

// Op returns the arithmetic operator of an assignment or increment
// operator token (only valid when Token() is _AssignOp or _IncOp).
func (s *Scanner) Op() Token {
	return s.op
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch) {
		s.nextch()
	}
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() {
	s.litBuf.Reset()
	for isLetter(s.ch) || isDigit(s.ch) {
		s.litBuf.WriteRune(s.ch)
		s.nextch()
	}
	s.lit = s.litBuf.String()
	s.tok = LookupKeyword(s.lit)
}

// scanNumber scans a number literal (integer or float).
func (s *Scanner) scanNumber() {
	s.litBuf.Reset()
	s.kind = IntLitKind
	s.tok = _Literal

	if s.ch == '0' {
		s.continueLit()
		switch lower(s.ch) {
		case 'x':
			s.continueLit()
			s.scanDigits(isHexDigit, "hex")
		case 'o':
			s.continueLit()
			s.scanDigits(isOctalDigit, "octal")
		case 'b':
			s.continueLit()
			s.scanDigits(isBinaryDigit, "binary")
			if isDigit(s.ch) {
				s.error("invalid binary digit")
			}
		default:
			s.scanDecimal()
		}
	} else {
		s.scanDecimal()
	}

	s.lit = s.litBuf.String()
}

// continueLit appends the current rune to the literal and advances.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
	s.nextch()
}

// scanDigits scans a non-empty run of digits accepted by valid.
func (s *Scanner) scanDigits(valid func(rune) bool, base string) {
	if !valid(s.ch) {
		s.error("invalid " + base + " digit")
		return
	}
	for valid(s.ch) {
		s.continueLit()
	}
}

// scanDecimal scans decimal digits and an optional fraction or exponent.
func (s *Scanner) scanDecimal() {
	for isDigit(s.ch) {
		s.continueLit()
	}

	if s.ch == '.' {
		s.kind = FloatLitKind
		s.continueLit()
		for isDigit(s.ch) {
			s.continueLit()
		}
	}

	if lower(s.ch) == 'e' {
		s.kind = FloatLitKind
		s.continueLit()
		if s.ch == '+' || s.ch == '-' {
			s.continueLit()
		}
		if !isDigit(s.ch) {
			s.error("exponent has no digits")
			return
		}
		for isDigit(s.ch) {
			s.continueLit()
		}
	}
}

// scanString scans a string literal.
// The resulting literal is the decoded string content (escape sequences are interpreted).
func (s *Scanner) scanString() {
	s.nextch() // skip opening "
	var b strings.Builder

	s.tok = _Literal
	s.kind = StringLitKind
	for {
		switch {
		case s.ch == '"':
			s.nextch()
			s.lit = b.String()
			return

		case s.ch == '\\':
			if r, ok := s.scanEscape(); ok {
				b.WriteRune(r)
			}

		case s.ch == '\n' || s.ch < 0:
			s.error("string not terminated")
			s.lit = b.String()
			return

		default:
			b.WriteRune(s.ch)
			s.nextch()
		}
	}
}

// scanEscape scans an escape sequence and returns the decoded rune.
func (s *Scanner) scanEscape() (rune, bool) {
	s.nextch() // skip \

	var r rune
	switch s.ch {
	case 'n':
		r = '\n'
	case 't':
		r = '\t'
	case 'r':
		r = '\r'
	case '\\':
		r = '\\'
	case '"':
		r = '"'
	case '0':
		r = 0
	case 'x':
		s.nextch()
		return s.scanHexEscape()
	default:
		s.error(fmt.Sprintf("unknown escape sequence: \\%c", s.ch))
		s.nextch()
		return 0, false
	}
	s.nextch()
	return r, true
}

// scanHexEscape scans the two digits of a \xNN escape sequence.
func (s *Scanner) scanHexEscape() (rune, bool) {
	var val rune
	for i := 0; i < 2; i++ {
		if !isHexDigit(s.ch) {
			s.error("invalid hex escape")
			return 0, false
		}
		d := lower(s.ch) - 'a' + 10
		if isDigit(s.ch) {
			d = s.ch - '0'
		}
		val = val*16 + d
		s.nextch()
	}
	return val, true
}

// scanOperator scans an operator or delimiter.
// Returns true if a comment was skipped (caller should rescan).
func (s *Scanner) scanOperator() bool {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		s.arith(_Add, '+')
	case '-':
		s.arith(_Sub, '-')
	case '*':
		s.arith(_Mul, 0)
	case '/':
		if s.ch == '/' {
			s.skipLineComment()
			return true
		}
		s.arith(_Div, 0)
	case '%':
		s.arith(_Rem, 0)
	case '&':
		if s.ch != '&' {
			s.error("unexpected character '&'; did you mean &&?")
		}
		s.nextch()
		s.set(_AndAnd, "&&")
	case '|':
		if s.ch != '|' {
			s.error("unexpected character '|'; did you mean ||?")
		}
		s.nextch()
		s.set(_OrOr, "||")
	case '<':
		s.cmp(_Lss, _Leq, "<")
	case '>':
		s.cmp(_Gtr, _Geq, ">")
	case '=':
		s.cmp(_Assign, _Eql, "=")
	case '!':
		s.cmp(_Not, _Neq, "!")
	case '(':
		s.set(_Lparen, "(")
	case ')':
		s.set(_Rparen, ")")
	case '{':
		s.set(_Lbrace, "{")
	case '}':
		s.set(_Rbrace, "}")
	case ',':
		s.set(_Comma, ",")
	}

	return false
}

func (s *Scanner) set(tok Token, lit string) {
	s.tok = tok
	s.lit = lit
}

// arith finishes an arithmetic operator that has already been consumed:
// op, op= or, when double is non-zero, opop.
func (s *Scanner) arith(op Token, double rune) {
	switch {
	case s.ch == '=':
		s.nextch()
		s.tok = _AssignOp
		s.op = op
		s.lit = op.String() + "="
	case double != 0 && s.ch == double:
		s.nextch()
		s.tok = _IncOp
		s.op = op
		s.lit = op.String() + op.String()
	default:
		s.set(op, op.String())
	}
}

// cmp finishes a one-character operator that has an "=" suffixed variant.
func (s *Scanner) cmp(single, withEq Token, lit string) {
	if s.ch == '=' {
		s.nextch()
		s.set(withEq, lit+"=")
		return
	}
	s.set(single, lit)
}

// skipLineComment skips a line comment up to, but not including, the newline.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
