package syntax

import (
	"strings"
	"testing"
)

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		tokens []Token
		lits   []string
	}{
		// Identifiers (a synthetic newline precedes EOF)
		{"ident", "foo", []Token{_Name, _Newline}, []string{"foo", "EOF"}},
		{"ident_underscore", "_bar", []Token{_Name, _Newline}, []string{"_bar", "EOF"}},
		{"ident_mixed", "foo123", []Token{_Name, _Newline}, []string{"foo123", "EOF"}},
		{"ident_caps", "FooBar", []Token{_Name, _Newline}, []string{"FooBar", "EOF"}},
		{"ident_not_keyword", "println", []Token{_Name, _Newline}, []string{"println", "EOF"}},

		// Integer literals
		{"int_dec", "123", []Token{_Literal, _Newline}, []string{"123", "EOF"}},
		{"int_zero", "0", []Token{_Literal, _Newline}, []string{"0", "EOF"}},
		{"int_hex_lower", "0x1f", []Token{_Literal, _Newline}, []string{"0x1f", "EOF"}},
		{"int_hex_upper", "0X1F", []Token{_Literal, _Newline}, []string{"0X1F", "EOF"}},
		{"int_oct", "0o77", []Token{_Literal, _Newline}, []string{"0o77", "EOF"}},
		{"int_bin", "0b1010", []Token{_Literal, _Newline}, []string{"0b1010", "EOF"}},
		{"int_leading_zero", "007", []Token{_Literal, _Newline}, []string{"007", "EOF"}},

		// Float literals
		{"float_simple", "3.14", []Token{_Literal, _Newline}, []string{"3.14", "EOF"}},
		{"float_no_frac", "3.", []Token{_Literal, _Newline}, []string{"3.", "EOF"}},
		{"float_exp", "1e10", []Token{_Literal, _Newline}, []string{"1e10", "EOF"}},
		{"float_exp_neg", "2.5e-3", []Token{_Literal, _Newline}, []string{"2.5e-3", "EOF"}},

		// String literals (decoded content)
		{"string_simple", `"hello"`, []Token{_Literal, _Newline}, []string{"hello", "EOF"}},
		{"string_empty", `""`, []Token{_Literal, _Newline}, []string{"", "EOF"}},
		{"string_escape_n", `"a\nb"`, []Token{_Literal, _Newline}, []string{"a\nb", "EOF"}},
		{"string_escape_quote", `"a\"b"`, []Token{_Literal, _Newline}, []string{"a\"b", "EOF"}},
		{"string_escape_hex", `"\x41\x42"`, []Token{_Literal, _Newline}, []string{"AB", "EOF"}},

		// Single-char operators
		{"op_add", "+", []Token{_Add, _Newline}, []string{"+", "EOF"}},
		{"op_sub", "-", []Token{_Sub, _Newline}, []string{"-", "EOF"}},
		{"op_mul", "*", []Token{_Mul, _Newline}, []string{"*", "EOF"}},
		{"op_div", "/", []Token{_Div, _Newline}, []string{"/", "EOF"}},
		{"op_rem", "%", []Token{_Rem, _Newline}, []string{"%", "EOF"}},
		{"op_not", "!", []Token{_Not, _Newline}, []string{"!", "EOF"}},
		{"op_lss", "<", []Token{_Lss, _Newline}, []string{"<", "EOF"}},
		{"op_gtr", ">", []Token{_Gtr, _Newline}, []string{">", "EOF"}},
		{"op_assign", "=", []Token{_Assign, _Newline}, []string{"=", "EOF"}},

		// Two-char operators
		{"op_andand", "&&", []Token{_AndAnd, _Newline}, []string{"&&", "EOF"}},
		{"op_oror", "||", []Token{_OrOr, _Newline}, []string{"||", "EOF"}},
		{"op_eql", "==", []Token{_Eql, _Newline}, []string{"==", "EOF"}},
		{"op_neq", "!=", []Token{_Neq, _Newline}, []string{"!=", "EOF"}},
		{"op_leq", "<=", []Token{_Leq, _Newline}, []string{"<=", "EOF"}},
		{"op_geq", ">=", []Token{_Geq, _Newline}, []string{">=", "EOF"}},
		{"op_add_assign", "+=", []Token{_AssignOp, _Newline}, []string{"+=", "EOF"}},
		{"op_rem_assign", "%=", []Token{_AssignOp, _Newline}, []string{"%=", "EOF"}},
		{"op_inc", "++", []Token{_IncOp, _Newline}, []string{"++", "EOF"}},
		{"op_dec", "--", []Token{_IncOp, _Newline}, []string{"--", "EOF"}},

		// Delimiters
		{"delim_parens", "()", []Token{_Lparen, _Rparen, _Newline}, []string{"(", ")", "EOF"}},
		{"delim_braces", "{}", []Token{_Lbrace, _Rbrace, _Newline}, []string{"{", "}", "EOF"}},
		{"delim_comma", ",", []Token{_Comma, _Newline}, []string{",", "EOF"}},

		// Keywords
		{"kw_if", "if", []Token{_If, _Newline}, []string{"if", "EOF"}},
		{"kw_else", "else", []Token{_Else, _Newline}, []string{"else", "EOF"}},
		{"kw_while", "while", []Token{_While, _Newline}, []string{"while", "EOF"}},
		{"kw_for", "for", []Token{_For, _Newline}, []string{"for", "EOF"}},
		{"kw_in", "in", []Token{_In, _Newline}, []string{"in", "EOF"}},
		{"kw_return", "return", []Token{_Return, _Newline}, []string{"return", "EOF"}},
		{"kw_true", "true", []Token{_True, _Newline}, []string{"true", "EOF"}},
		{"kw_int", "int", []Token{_Int, _Newline}, []string{"int", "EOF"}},
		{"kw_void", "void", []Token{_Void, _Newline}, []string{"void", "EOF"}},

		// Compound input
		{"decl", "int x = 1", []Token{_Int, _Name, _Assign, _Literal, _Newline}, []string{"int", "x", "=", "1", "EOF"}},
		{"call", "foo(a, 2)", []Token{_Name, _Lparen, _Name, _Comma, _Literal, _Rparen, _Newline}, []string{"foo", "(", "a", ",", "2", ")", "EOF"}},
		{"compound_assign", "x *= 2", []Token{_Name, _AssignOp, _Literal, _Newline}, []string{"x", "*=", "2", "EOF"}},
		{"postfix", "i++", []Token{_Name, _IncOp, _Newline}, []string{"i", "++", "EOF"}},
		{"minus_literal", "x-1", []Token{_Name, _Sub, _Literal, _Newline}, []string{"x", "-", "1", "EOF"}},
		{"logical", "a && b || c", []Token{_Name, _AndAnd, _Name, _OrOr, _Name, _Newline}, []string{"a", "&&", "b", "||", "c", "EOF"}},

		// Newlines
		{"newline_between", "a\nb", []Token{_Name, _Newline, _Name, _Newline}, []string{"a", "newline", "b", "EOF"}},
		{"newline_trailing", "a\n", []Token{_Name, _Newline}, []string{"a", "newline"}},
		{"newline_blank_lines", "a\n\nb", []Token{_Name, _Newline, _Newline, _Name, _Newline}, []string{"a", "newline", "newline", "b", "EOF"}},
		{"newline_crlf", "a\r\nb", []Token{_Name, _Newline, _Name, _Newline}, []string{"a", "newline", "b", "EOF"}},
		{"newline_only", "\n", []Token{_Newline}, []string{"newline"}},
		{"empty", "", nil, nil},

		// Comments
		{"comment_skip", "a // comment\nb", []Token{_Name, _Newline, _Name, _Newline}, []string{"a", "newline", "b", "EOF"}},
		{"comment_eof", "a // comment", []Token{_Name, _Newline}, []string{"a", "EOF"}},
		{"comment_only", "// comment", nil, nil},
		{"comment_div_assign", "x /= 2 // halve", []Token{_Name, _AssignOp, _Literal, _Newline}, []string{"x", "/=", "2", "EOF"}},

		// Whitespace handling
		{"whitespace_spaces", "  a  ", []Token{_Name, _Newline}, []string{"a", "EOF"}},
		{"whitespace_tabs", "\ta\t", []Token{_Name, _Newline}, []string{"a", "EOF"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			for i, wantTok := range tt.tokens {
				s.Next()
				if s.Token() != wantTok {
					t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
				}
				if tt.lits != nil && tt.lits[i] != "" {
					if s.Literal() != tt.lits[i] {
						t.Errorf("literal %d: got %q, want %q", i, s.Literal(), tt.lits[i])
					}
				}
			}
			s.Next()
			if !s.Token().IsEOF() {
				t.Errorf("expected EOF, got %v %q", s.Token(), s.Literal())
			}
		})
	}
}

func TestScanLitKind(t *testing.T) {
	tests := []struct {
		src  string
		kind LitKind
	}{
		{"123", IntLitKind},
		{"0x1F", IntLitKind},
		{"0o77", IntLitKind},
		{"0b1010", IntLitKind},
		{"3.14", FloatLitKind},
		{"1e10", FloatLitKind},
		{"2.5e-3", FloatLitKind},
		{`"hello"`, StringLitKind},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			s.Next()
			if s.Token() != _Literal {
				t.Fatalf("expected _Literal, got %v", s.Token())
			}
			if s.LitKind() != tt.kind {
				t.Errorf("LitKind = %v, want %v", s.LitKind(), tt.kind)
			}
		})
	}
}

func TestScanOp(t *testing.T) {
	tests := []struct {
		src string
		tok Token
		op  Token
	}{
		{"+=", _AssignOp, _Add},
		{"-=", _AssignOp, _Sub},
		{"*=", _AssignOp, _Mul},
		{"/=", _AssignOp, _Div},
		{"%=", _AssignOp, _Rem},
		{"++", _IncOp, _Add},
		{"--", _IncOp, _Sub},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := NewScanner("test", strings.NewReader(tt.src), nil)
			s.Next()
			if s.Token() != tt.tok {
				t.Fatalf("token = %v, want %v", s.Token(), tt.tok)
			}
			if s.Op() != tt.op {
				t.Errorf("Op() = %v, want %v", s.Op(), tt.op)
			}
			s.Next()
			if s.Op() != 0 {
				t.Errorf("Op() after %v = %v, want 0", s.Token(), s.Op())
			}
		})
	}
}

func TestPosition(t *testing.T) {
	src := `int add(int a, int b) {
    return a + b
}`

	expected := []struct {
		tok  Token
		line uint32
		col  uint32
	}{
		{_Int, 1, 1},
		{_Name, 1, 5},     // add
		{_Lparen, 1, 8},   // (
		{_Int, 1, 9},      // int
		{_Name, 1, 13},    // a
		{_Comma, 1, 14},   // ,
		{_Int, 1, 16},     // int
		{_Name, 1, 20},    // b
		{_Rparen, 1, 21},  // )
		{_Lbrace, 1, 23},  // {
		{_Newline, 1, 24}, // end of line 1
		{_Return, 2, 5},   // return
		{_Name, 2, 12},    // a
		{_Add, 2, 14},     // +
		{_Name, 2, 16},    // b
		{_Newline, 2, 17}, // end of line 2
		{_Rbrace, 3, 1},   // }
		{_Newline, 3, 2},  // synthetic at EOF
		{_EOF, 3, 2},
	}

	s := NewScanner("test.mica", strings.NewReader(src), nil)
	for i, exp := range expected {
		s.Next()
		pos := s.Pos()
		if s.Token() != exp.tok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), exp.tok)
		}
		if pos.Line() != exp.line || pos.Col() != exp.col {
			t.Errorf("token %d (%v): pos = %d:%d, want %d:%d",
				i, s.Token(), pos.Line(), pos.Col(), exp.line, exp.col)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"unterminated_string", `"hello`, "string not terminated"},
		{"string_newline", "\"hello\nworld\"", "string not terminated"},
		{"bad_escape", `"\q"`, "unknown escape sequence"},
		{"bad_hex_escape", `"\xGG"`, "invalid hex escape"},
		{"bad_hex_literal", "0xGG", "invalid hex digit"},
		{"bad_octal_literal", "0o99", "invalid octal digit"},
		{"bad_binary_literal", "0b123", "invalid binary digit"},
		{"empty_exponent", "1e", "exponent has no digits"},
		{"single_amp", "a & b", "did you mean &&"},
		{"single_bar", "a | b", "did you mean ||"},
		{"bad_char", "@", "unexpected character"},
		{"bad_char_hash", "#", "unexpected character"},
		{"bad_char_semi", ";", "unexpected character"},
		{"bad_char_bracket", "[", "unexpected character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errMsg string
			errh := func(line, col uint32, msg string) {
				if errMsg == "" { // capture first error only
					errMsg = msg
				}
			}
			s := NewScanner("test", strings.NewReader(tt.src), errh)
			for {
				s.Next()
				if s.Token().IsEOF() {
					break
				}
			}
			if errMsg == "" {
				t.Errorf("expected error containing %q, got no error", tt.wantErr)
			} else if !strings.Contains(errMsg, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, errMsg)
			}
		})
	}
}

func TestCompleteProgram(t *testing.T) {
	src := `// compute a few sums
int total = 0
float scale = 1.5

int add(int a, int b) {
    return a + b
}

void report(string msg) {
    if (total > 10) {
        total -= 1
    } else {
        total++
    }
}

for (int i = 0, i < 10, i++) {
    total += add(i, 2)
}
while (total > 0 && scale != 0.0) {
    total = total / 2
}
report("done")
`

	s := NewScanner("test.mica", strings.NewReader(src), func(line, col uint32, msg string) {
		t.Errorf("%d:%d: %s", line, col, msg)
	})
	tokenCount := 0
	for {
		s.Next()
		tokenCount++
		if s.Token().IsEOF() {
			break
		}
		if tokenCount > 1000 {
			t.Fatal("too many tokens, possible infinite loop")
		}
	}

	if tokenCount < 80 {
		t.Errorf("expected at least 80 tokens, got %d", tokenCount)
	}
}

func TestCommentsInCode(t *testing.T) {
	src := `// leading comment
int x = 1 // trailing
// standalone
x += 2
`

	expected := []Token{
		_Newline,
		_Int, _Name, _Assign, _Literal, _Newline,
		_Newline,
		_Name, _AssignOp, _Literal, _Newline,
		_EOF,
	}

	s := NewScanner("test.mica", strings.NewReader(src), nil)
	for i, wantTok := range expected {
		s.Next()
		if s.Token() != wantTok {
			t.Errorf("token %d: got %v, want %v", i, s.Token(), wantTok)
		}
	}
}

func FuzzScanner(f *testing.F) {
	seeds := []string{
		"int x = 1",
		"int f(int a) {\n return a\n}",
		`string s = "hello\nworld"`,
		"x += 0x1F + 0b1010",
		"if (a && b || c) {\n}",
		"for (int i = 0, i < 10, i++) {\n}",
		"while (x) {\n x--\n}",
		"// comment\nfoo()",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		errh := func(line, col uint32, msg string) {}
		s := NewScanner("fuzz", strings.NewReader(src), errh)
		for i := 0; i < 10000; i++ {
			s.Next()
			if s.Token().IsEOF() {
				break
			}
		}
	})
}
