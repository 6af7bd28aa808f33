package syntax

import (
	"errors"
	"strconv"

	"github.com/you-not-fish/mica/internal/types"
)

// ----------------------------------------------------------------------------
// Type keywords

// varTypeLiteral consumes a declarable type keyword.
func (p *Parser) varTypeLiteral() (types.Type, error) {
	t, err := p.want(_Int, _Float, _Bool, _String)
	if err != nil {
		return types.Invalid, err
	}
	return t.tok.Type(), nil
}

// returnTypeLiteral consumes a declarable type keyword or void.
func (p *Parser) returnTypeLiteral() (types.Type, error) {
	t, err := p.want(_Int, _Float, _Bool, _String, _Void)
	if err != nil {
		return types.Invalid, err
	}
	return t.tok.Type(), nil
}

// ----------------------------------------------------------------------------
// Literals

func (p *Parser) trueFalseLiteral() (*BoolLit, error) {
	t, err := p.want(_True, _False)
	if err != nil {
		return nil, err
	}
	lit := &BoolLit{Value: t.tok == _True}
	lit.pos = t.pos
	lit.typ = types.Bool
	return lit, nil
}

func (p *Parser) stringLiteral() (*StringLit, error) {
	t, err := p.literal(StringLitKind)
	if err != nil {
		return nil, err
	}
	lit := &StringLit{Value: t.lit}
	lit.pos = t.pos
	lit.typ = types.String
	return lit, nil
}

func (p *Parser) intLiteral() (*IntLit, error) {
	t, err := p.literal(IntLitKind)
	if err != nil {
		return nil, err
	}

	digits, base := t.lit, 10
	if len(digits) > 1 && digits[0] == '0' {
		switch lower(rune(digits[1])) {
		case 'x':
			digits, base = digits[2:], 16
		case 'o':
			digits, base = digits[2:], 8
		case 'b':
			digits, base = digits[2:], 2
		}
	}

	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errorf(t.pos, BadLiteral, "integer literal %s overflows int", t.lit)
		}
		return nil, errorf(t.pos, BadLiteral, "malformed integer literal %s", t.lit)
	}

	lit := &IntLit{Value: v}
	lit.pos = t.pos
	lit.typ = types.Int
	return lit, nil
}

func (p *Parser) floatLiteral() (*FloatLit, error) {
	t, err := p.literal(FloatLitKind)
	if err != nil {
		return nil, err
	}

	v, err := strconv.ParseFloat(t.lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errorf(t.pos, BadLiteral, "float literal %s overflows float", t.lit)
		}
		return nil, errorf(t.pos, BadLiteral, "malformed float literal %s", t.lit)
	}

	lit := &FloatLit{Value: v}
	lit.pos = t.pos
	lit.typ = types.Float
	return lit, nil
}

// literal consumes a literal token of the given kind.
func (p *Parser) literal(kind LitKind) (token, error) {
	t := p.cur()
	if t.tok != _Literal || t.kind != kind {
		return t, p.unexpected(t, kind.String()+" literal")
	}
	p.next()
	return t, nil
}

// ----------------------------------------------------------------------------
// Names
//
// Each name production has a reference form, which resolves the name
// through the enclosing scopes, and a declaration form, which registers it
// in the current scope.

// variable parses a reference to a declared variable.
func (p *Parser) variable(scope *types.Scope) (*Ident, error) {
	t, err := p.want(_Name)
	if err != nil {
		return nil, err
	}
	v, err := scope.LookupVar(t.lit)
	if err != nil {
		return nil, unknownID(t.pos, t.lit, err)
	}

	id := &Ident{Name: t.lit}
	id.pos = t.pos
	id.typ = v.Type()
	return id, nil
}

// declareVariable parses a variable name and declares it in scope.
func (p *Parser) declareVariable(scope *types.Scope, typ types.Type) (*Ident, error) {
	t, err := p.want(_Name)
	if err != nil {
		return nil, err
	}
	if _, err := scope.DeclareVar(t.lit, typ); err != nil {
		return nil, duplicateID(t.pos, t.lit, err)
	}

	id := &Ident{Name: t.lit}
	id.pos = t.pos
	id.typ = typ
	return id, nil
}

// function parses a reference to a declared function.
func (p *Parser) function(scope *types.Scope) (*FuncName, *types.Func, error) {
	t, err := p.want(_Name)
	if err != nil {
		return nil, nil, err
	}
	fn, err := scope.LookupFunc(t.lit)
	if err != nil {
		e := unknownID(t.pos, t.lit, err)
		e.Msg = "undefined function: " + t.lit
		return nil, nil, e
	}

	name := &FuncName{Name: t.lit}
	name.pos = t.pos
	return name, fn, nil
}

// declareFunction parses a function name and declares it in scope with sig.
func (p *Parser) declareFunction(scope *types.Scope, sig *types.Signature) (*FuncName, error) {
	t, err := p.want(_Name)
	if err != nil {
		return nil, err
	}
	if _, err := scope.DeclareFunc(t.lit, sig); err != nil {
		e := duplicateID(t.pos, t.lit, err)
		e.Msg = "function " + t.lit + " redeclared in this scope"
		return nil, e
	}

	name := &FuncName{Name: t.lit}
	name.pos = t.pos
	return name, nil
}

// ----------------------------------------------------------------------------
// Values

// value parses the right-hand side of a declaration or assignment, a call
// argument or a return value, which must be assignable to want.
func (p *Parser) value(scope *types.Scope, want types.Type) (Expr, error) {
	pos := p.pos()
	x, err := p.expr(scope)
	if err != nil {
		return nil, err
	}
	if !types.AssignableTo(x.Type(), want) {
		return nil, invalidType(pos, x.Type(), want)
	}
	return x, nil
}
