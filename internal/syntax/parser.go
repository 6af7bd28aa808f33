package syntax

import (
	"io"
	"strconv"
	"strings"

	"github.com/you-not-fish/mica/internal/types"
)

// DefaultMaxDepth bounds block and expression nesting when Config.MaxDepth
// is not set.
const DefaultMaxDepth = 256

// Config holds parser limits. The zero value selects the defaults.
type Config struct {
	MaxDepth int // maximum nesting of blocks and expressions
}

// token is one buffered scanner token.
type token struct {
	tok  Token
	lit  string
	kind LitKind // valid when tok == _Literal
	op   Token   // valid when tok is _AssignOp or _IncOp
	pos  Pos
	err  *Error // valid when tok == _Error
}

// String describes the token for error messages.
func (t token) String() string {
	switch t.tok {
	case _Name:
		return "name " + t.lit
	case _Literal:
		if t.kind == StringLitKind {
			return "string literal " + strconv.Quote(t.lit)
		}
		return t.kind.String() + " literal " + t.lit
	case _Newline:
		return "newline"
	case _EOF:
		return "end of input"
	case _AssignOp, _IncOp:
		return t.lit
	}
	return t.tok.String()
}

// Parser performs syntax analysis, name resolution and type checking on
// Mica source code in a single pass. The first error aborts the parse.
type Parser struct {
	scanner *Scanner

	// Lookahead buffer; buf[0] is the current token.
	buf []token

	// lexErr holds a lexical error reported while scanning the token
	// that is being buffered.
	lexErr *Error

	maxDepth int
	depth    int

	scope *types.Scope // outermost scope of the last Parse
}

// NewParser creates a new Parser for the given source.
// conf may be nil.
func NewParser(filename string, src io.Reader, conf *Config) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	if conf != nil && conf.MaxDepth > 0 {
		p.maxDepth = conf.MaxDepth
	}
	p.scanner = NewScanner(filename, src, func(line, col uint32, msg string) {
		if p.lexErr == nil {
			p.lexErr = errorf(NewPos(filename, line, col), Lexical, "%s", msg)
		}
	})
	return p
}

// Parse parses src as a complete program.
func Parse(filename string, src io.Reader, conf *Config) (*Program, error) {
	return NewParser(filename, src, conf).Parse()
}

// Scope returns the outermost scope filled by the last call to Parse,
// or nil if Parse has not been called.
func (p *Parser) Scope() *types.Scope {
	return p.scope
}

// ----------------------------------------------------------------------------
// Token navigation

// fill makes sure at least k tokens are buffered. Once EOF is reached it
// is repeated for every further position.
func (p *Parser) fill(k int) {
	for len(p.buf) < k {
		if n := len(p.buf); n > 0 && p.buf[n-1].tok == _EOF {
			p.buf = append(p.buf, p.buf[n-1])
			continue
		}

		p.scanner.Next()
		t := token{
			tok:  p.scanner.Token(),
			lit:  p.scanner.Literal(),
			kind: p.scanner.LitKind(),
			op:   p.scanner.Op(),
			pos:  p.scanner.Pos(),
		}
		if p.lexErr != nil {
			t = token{tok: _Error, pos: p.lexErr.Pos, err: p.lexErr}
			p.lexErr = nil
		}
		p.buf = append(p.buf, t)
	}
}

// peek returns the kind of the k-th token ahead without consuming it;
// peek(1) is the current token.
func (p *Parser) peek(k int) Token {
	p.fill(k)
	return p.buf[k-1].tok
}

// cur returns the current token.
func (p *Parser) cur() token {
	p.fill(1)
	return p.buf[0]
}

// pos returns the position of the current token.
func (p *Parser) pos() Pos {
	return p.cur().pos
}

// next consumes the current token.
func (p *Parser) next() {
	p.fill(1)
	p.buf = p.buf[1:]
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.peek(1) == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if its kind is one of kinds.
// Otherwise it returns an UnexpectedToken, UnexpectedEOF or Lexical error.
func (p *Parser) want(kinds ...Token) (token, error) {
	t := p.cur()
	for _, k := range kinds {
		if t.tok == k {
			p.next()
			return t, nil
		}
	}
	return t, p.unexpected(t, expectedList(kinds))
}

// unexpected returns the error for finding t where what was required.
func (p *Parser) unexpected(t token, what string) error {
	switch t.tok {
	case _Error:
		return t.err
	case _EOF:
		return errorf(t.pos, UnexpectedEOF, "unexpected end of input, expected %s", what)
	}
	return errorf(t.pos, UnexpectedToken, "unexpected %s, expected %s", t, what)
}

func expectedList(kinds []Token) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		switch k {
		case _Name:
			names[i] = "name"
		case _Literal:
			names[i] = "literal"
		case _Newline:
			names[i] = "newline"
		case _AssignOp:
			names[i] = "op="
		case _IncOp:
			names[i] = "++ or --"
		default:
			names[i] = k.String()
		}
	}
	if len(names) > 2 {
		return "one of " + strings.Join(names, ", ")
	}
	return strings.Join(names, " or ")
}

// enter records one more level of nesting and fails once the configured
// limit is exceeded. Every successful enter is paired with leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return errorf(p.pos(), TooDeep, "nesting exceeds %d levels", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole input and returns the program, or the first error.
func (p *Parser) Parse() (*Program, error) {
	p.scope = types.NewScope(nil, "program")

	prog := &Program{}
	prog.pos = p.pos()
	for p.peek(1) != _EOF {
		s, err := p.stmt(p.scope, nil)
		if err != nil {
			return nil, err
		}
		if s != nil {
			prog.Stmts = append(prog.Stmts, s)
		}
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses one statement and its terminating newline. sig is the
// signature of the enclosing function, nil outside of functions. An empty
// statement yields a nil Stmt.
func (p *Parser) stmt(scope *types.Scope, sig *types.Signature) (Stmt, error) {
	var s Stmt
	var err error

	switch tok := p.peek(1); {
	case tok == _If:
		s, err = p.ifStmt(scope, sig)
	case tok.IsReturnType() && p.peek(3) == _Lparen:
		s, err = p.funcDecl(scope)
	case tok.IsVarType():
		s, err = p.declStmt(scope, true)
	case tok == _Name && p.peek(2) == _Lparen:
		s, err = p.callStmt(scope)
	case tok == _Name:
		s, err = p.assignStmt(scope)
	case tok == _While:
		s, err = p.whileStmt(scope, sig)
	case tok == _For:
		s, err = p.forStmt(scope, sig)
	case tok == _Return && sig != nil:
		s, err = p.returnStmt(scope, sig)
	default:
		_, err = p.want(_Newline)
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if _, err := p.want(_Newline); err != nil {
		return nil, err
	}
	return s, nil
}

// block parses { stmts... } against scope, which the caller opens.
func (p *Parser) block(scope *types.Scope, sig *types.Signature) (*Block, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	b := &Block{}
	b.pos = p.pos()
	if _, err := p.want(_Lbrace); err != nil {
		return nil, err
	}

	for tok := p.peek(1); tok != _Rbrace && tok != _EOF; tok = p.peek(1) {
		s, err := p.stmt(scope, sig)
		if err != nil {
			return nil, err
		}
		if s != nil {
			b.Stmts = append(b.Stmts, s)
		}
	}

	b.Rbrace = p.pos()
	if _, err := p.want(_Rbrace); err != nil {
		return nil, err
	}
	return b, nil
}

// declStmt parses: Type Name [= Value] or, if list is set, Type Name, Name, ...
func (p *Parser) declStmt(scope *types.Scope, list bool) (*DeclareStmt, error) {
	d := &DeclareStmt{}
	d.pos = p.pos()

	typ, err := p.varTypeLiteral()
	if err != nil {
		return nil, err
	}
	d.Type = typ

	name, err := p.declareVariable(scope, typ)
	if err != nil {
		return nil, err
	}
	d.Names = append(d.Names, name)

	switch p.peek(1) {
	case _Comma:
		if !list {
			break
		}
		for p.got(_Comma) {
			name, err := p.declareVariable(scope, typ)
			if err != nil {
				return nil, err
			}
			d.Names = append(d.Names, name)
		}

	case _Assign:
		p.next()
		if d.Value, err = p.value(scope, typ); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// assignStmt parses: Name = Value, Name op= Expr or Name opop.
// The compound forms are rewritten to Name = Name op Expr and
// Name = Name op 1.
func (p *Parser) assignStmt(scope *types.Scope) (*AssignStmt, error) {
	s := &AssignStmt{}
	s.pos = p.pos()

	target, err := p.variable(scope)
	if err != nil {
		return nil, err
	}
	s.Target = target

	t, err := p.want(_Assign, _AssignOp, _IncOp)
	if err != nil {
		return nil, err
	}

	if t.tok == _Assign {
		if s.Value, err = p.value(scope, target.Type()); err != nil {
			return nil, err
		}
		return s, nil
	}

	if !target.Type().IsNumeric() {
		e := invalidType(t.pos, target.Type(), types.Int)
		e.Msg = "invalid operation: operator " + t.lit + " not defined on " +
			target.Name + " (variable of type " + target.Type().String() + ")"
		return nil, e
	}

	var y Expr
	if t.tok == _AssignOp {
		if y, err = p.arithmetic(scope, target.Type()); err != nil {
			return nil, err
		}
	} else {
		one := &IntLit{Value: 1}
		one.pos = t.pos
		one.typ = types.Int
		y = one
	}

	x := &Ident{Name: target.Name}
	x.pos = target.pos
	x.typ = target.typ

	bin, err := binaryOp(target.pos, t.op, x, y)
	if err != nil {
		return nil, err
	}
	if !types.AssignableTo(bin.Type(), target.Type()) {
		return nil, invalidType(y.Pos(), bin.Type(), target.Type())
	}
	s.Value = bin
	return s, nil
}

// funcDecl parses: Result Name(Type Name, ...) { Body }
func (p *Parser) funcDecl(scope *types.Scope) (*FuncDecl, error) {
	d := &FuncDecl{}
	d.pos = p.pos()

	result, err := p.returnTypeLiteral()
	if err != nil {
		return nil, err
	}
	d.Result = result
	d.Sig = types.NewSignature(result)

	// The function is visible in its own body, so recursion resolves.
	if d.Name, err = p.declareFunction(scope, d.Sig); err != nil {
		return nil, err
	}

	if _, err := p.want(_Lparen); err != nil {
		return nil, err
	}

	inner := types.NewScope(scope, "function "+d.Name.Name)
	for p.peek(1) != _Rparen {
		if len(d.Params) > 0 {
			if _, err := p.want(_Comma); err != nil {
				return nil, err
			}
		}
		param, err := p.param(inner)
		if err != nil {
			return nil, err
		}
		d.Params = append(d.Params, param)
		d.Sig.Params = append(d.Sig.Params, param.Type)
	}
	p.next() // )

	if d.Body, err = p.block(inner, d.Sig); err != nil {
		return nil, err
	}
	return d, nil
}

// param parses: Type Name
func (p *Parser) param(scope *types.Scope) (*Param, error) {
	pa := &Param{}
	pa.pos = p.pos()

	typ, err := p.varTypeLiteral()
	if err != nil {
		return nil, err
	}
	pa.Type = typ

	if pa.Name, err = p.declareVariable(scope, typ); err != nil {
		return nil, err
	}
	return pa, nil
}

// callStmt parses a function call used as a statement.
func (p *Parser) callStmt(scope *types.Scope) (*CallStmt, error) {
	call, err := p.call(scope)
	if err != nil {
		return nil, err
	}
	s := &CallStmt{Call: call}
	s.pos = call.pos
	return s, nil
}

// call parses: Name(Args...). The callee's signature dictates the number
// of arguments and the type each one must be assignable to.
func (p *Parser) call(scope *types.Scope) (*CallExpr, error) {
	name, fn, err := p.function(scope)
	if err != nil {
		return nil, err
	}
	sig := fn.Signature()

	c := &CallExpr{Func: name}
	c.pos = name.pos
	c.typ = sig.Result()

	if _, err := p.want(_Lparen); err != nil {
		return nil, err
	}

	n := len(sig.Params)
	for i, typ := range sig.Params {
		if i > 0 && !p.argsEnd() {
			if _, err := p.want(_Comma); err != nil {
				return nil, err
			}
		}
		if p.argsEnd() {
			return nil, argCount(p.pos(), name.Name, n, i)
		}
		arg, err := p.value(scope, typ)
		if err != nil {
			return nil, err
		}
		c.Args = append(c.Args, arg)
	}

	switch p.peek(1) {
	case _Rparen, _Newline, _EOF, _Error:
	default:
		return nil, argCount(p.pos(), name.Name, n, n+1)
	}
	if _, err := p.want(_Rparen); err != nil {
		return nil, err
	}
	return c, nil
}

// argsEnd reports whether the argument list ends at the current token.
func (p *Parser) argsEnd() bool {
	tok := p.peek(1)
	return tok == _Rparen || tok == _Newline
}

// returnStmt parses: return [Value, ...], checking each value against the
// corresponding result of sig.
func (p *Parser) returnStmt(scope *types.Scope, sig *types.Signature) (*ReturnStmt, error) {
	s := &ReturnStmt{}
	s.pos = p.pos()
	p.next() // return

	n := len(sig.Results)
	for i := 0; p.peek(1) != _Newline && p.peek(1) != _EOF; i++ {
		if i > 0 {
			if _, err := p.want(_Comma); err != nil {
				return nil, err
			}
		}
		if i >= n {
			return nil, returnCount(p.pos(), n, i+1)
		}
		x, err := p.value(scope, sig.Results[i])
		if err != nil {
			return nil, err
		}
		s.Results = append(s.Results, x)
	}

	if len(s.Results) < n {
		return nil, returnCount(p.pos(), n, len(s.Results))
	}
	return s, nil
}

// ifStmt parses: if (Cond) { Then } [else if ... | else { Else }]
func (p *Parser) ifStmt(scope *types.Scope, sig *types.Signature) (*IfStmt, error) {
	s := &IfStmt{}
	s.pos = p.pos()
	p.next() // if

	var err error
	if s.Cond, err = p.parenCond(scope); err != nil {
		return nil, err
	}
	if s.Then, err = p.block(types.NewScope(scope, "if"), sig); err != nil {
		return nil, err
	}

	if !p.got(_Else) {
		return s, nil
	}
	if p.peek(1) == _If {
		elif, err := p.ifStmt(scope, sig)
		if err != nil {
			return nil, err
		}
		s.Else = elif
		return s, nil
	}
	els, err := p.block(types.NewScope(scope, "else"), sig)
	if err != nil {
		return nil, err
	}
	s.Else = els
	return s, nil
}

// whileStmt parses: while (Cond) { Body }
func (p *Parser) whileStmt(scope *types.Scope, sig *types.Signature) (*WhileStmt, error) {
	s := &WhileStmt{}
	s.pos = p.pos()
	p.next() // while

	var err error
	if s.Cond, err = p.parenCond(scope); err != nil {
		return nil, err
	}
	if s.Body, err = p.block(types.NewScope(scope, "while"), sig); err != nil {
		return nil, err
	}
	return s, nil
}

// forStmt parses: for ([Init], [Cond], [Post]) { Body }
// One scope spans the clauses and the body.
func (p *Parser) forStmt(scope *types.Scope, sig *types.Signature) (*ForStmt, error) {
	s := &ForStmt{}
	s.pos = p.pos()
	p.next() // for

	if _, err := p.want(_Lparen); err != nil {
		return nil, err
	}

	if p.peek(1).IsVarType() && p.peek(2) == _Name && p.peek(3) == _In {
		return nil, errorf(p.pos(), Unsupported, "for-in loops are not supported")
	}

	inner := types.NewScope(scope, "for")
	var err error

	if p.peek(1) != _Comma {
		if s.Init, err = p.declStmt(inner, false); err != nil {
			return nil, err
		}
	}
	if _, err := p.want(_Comma); err != nil {
		return nil, err
	}

	if p.peek(1) != _Comma {
		if s.Cond, err = p.boolean(inner); err != nil {
			return nil, err
		}
	}
	if _, err := p.want(_Comma); err != nil {
		return nil, err
	}

	if p.peek(1) != _Rparen {
		if s.Post, err = p.assignStmt(inner); err != nil {
			return nil, err
		}
	}
	if _, err := p.want(_Rparen); err != nil {
		return nil, err
	}

	if s.Body, err = p.block(inner, sig); err != nil {
		return nil, err
	}
	return s, nil
}

// parenCond parses: ( BoolExpr )
func (p *Parser) parenCond(scope *types.Scope) (Expr, error) {
	if _, err := p.want(_Lparen); err != nil {
		return nil, err
	}
	cond, err := p.boolean(scope)
	if err != nil {
		return nil, err
	}
	if _, err := p.want(_Rparen); err != nil {
		return nil, err
	}
	return cond, nil
}
