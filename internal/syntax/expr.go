package syntax

import (
	"fmt"

	"github.com/you-not-fish/mica/internal/types"
)

// ----------------------------------------------------------------------------
// Expressions
//
// Every expression is typed as it is built. An operand whose type does not
// fit its operator fails the parse with an InvalidType error.

// expr parses an expression.
func (p *Parser) expr(scope *types.Scope) (Expr, error) {
	return p.binaryExpr(scope, 0)
}

// arithmetic parses an expression that must have a numeric type. hint is
// the numeric type reported as expected when it does not.
func (p *Parser) arithmetic(scope *types.Scope, hint types.Type) (Expr, error) {
	pos := p.pos()
	x, err := p.expr(scope)
	if err != nil {
		return nil, err
	}
	if !x.Type().IsNumeric() {
		return nil, invalidType(pos, x.Type(), hint)
	}
	return x, nil
}

// boolean parses an expression that must have type bool.
func (p *Parser) boolean(scope *types.Scope) (Expr, error) {
	pos := p.pos()
	x, err := p.expr(scope)
	if err != nil {
		return nil, err
	}
	if x.Type() != types.Bool {
		return nil, invalidType(pos, x.Type(), types.Bool)
	}
	return x, nil
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing; all binary operators are left associative.
func (p *Parser) binaryExpr(scope *types.Scope, prec int) (Expr, error) {
	x, err := p.unaryExpr(scope)
	if err != nil {
		return nil, err
	}

	for {
		t := p.cur()
		oprec := t.tok.Precedence()
		if oprec <= prec {
			return x, nil
		}
		p.next() // consume operator

		y, err := p.binaryExpr(scope, oprec)
		if err != nil {
			return nil, err
		}
		if x, err = binaryOp(x.Pos(), t.tok, x, y); err != nil {
			return nil, err
		}
	}
}

// unaryExpr parses: -X, !X or an operand.
func (p *Parser) unaryExpr(scope *types.Scope) (Expr, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	t := p.cur()
	if t.tok != _Sub && t.tok != _Not {
		return p.operand(scope)
	}
	p.next()

	x, err := p.unaryExpr(scope)
	if err != nil {
		return nil, err
	}

	u := &UnaryExpr{Op: t.tok, X: x}
	u.pos = t.pos
	switch {
	case t.tok == _Not && x.Type() == types.Bool:
		u.typ = types.Bool
	case t.tok == _Sub && x.Type().IsNumeric():
		u.typ = x.Type()
	case t.tok == _Not:
		return nil, badOperand(x.Pos(), t.tok, x.Type(), types.Bool)
	default:
		return nil, badOperand(x.Pos(), t.tok, x.Type(), types.Int)
	}
	return u, nil
}

// operand parses a literal, a variable, a call or a parenthesized expression.
func (p *Parser) operand(scope *types.Scope) (Expr, error) {
	var x Expr
	var err error

	switch t := p.cur(); t.tok {
	case _Literal:
		switch t.kind {
		case IntLitKind:
			x, err = p.intLiteral()
		case FloatLitKind:
			x, err = p.floatLiteral()
		default:
			x, err = p.stringLiteral()
		}

	case _True, _False:
		x, err = p.trueFalseLiteral()

	case _Name:
		if p.peek(2) == _Lparen {
			x, err = p.call(scope)
		} else {
			x, err = p.variable(scope)
		}

	case _Lparen:
		p.next()
		if x, err = p.expr(scope); err != nil {
			return nil, err
		}
		_, err = p.want(_Rparen)

	default:
		return nil, p.unexpected(t, "expression")
	}

	if err != nil {
		return nil, err
	}
	return x, nil
}

// binaryOp builds and types x op y.
func binaryOp(pos Pos, op Token, x, y Expr) (*BinaryExpr, error) {
	b := &BinaryExpr{Op: op, X: x, Y: y}
	b.pos = pos
	xt, yt := x.Type(), y.Type()

	switch op {
	case _OrOr, _AndAnd:
		if xt != types.Bool {
			return nil, badOperand(x.Pos(), op, xt, types.Bool)
		}
		if yt != types.Bool {
			return nil, badOperand(y.Pos(), op, yt, types.Bool)
		}
		b.typ = types.Bool

	case _Eql, _Neq:
		if !types.Comparable(xt, yt) {
			e := invalidType(y.Pos(), yt, xt)
			e.Msg = fmt.Sprintf("invalid operation: mismatched types %s and %s", xt, yt)
			return nil, e
		}
		b.typ = types.Bool

	case _Lss, _Leq, _Gtr, _Geq:
		if !xt.IsNumeric() {
			return nil, badOperand(x.Pos(), op, xt, numericHint(yt))
		}
		if !types.Ordered(xt, yt) {
			return nil, badOperand(y.Pos(), op, yt, numericHint(xt))
		}
		b.typ = types.Bool

	case _Rem:
		if xt != types.Int {
			return nil, badOperand(x.Pos(), op, xt, types.Int)
		}
		if yt != types.Int {
			return nil, badOperand(y.Pos(), op, yt, types.Int)
		}
		b.typ = types.Int

	default: // + - * /
		if !xt.IsNumeric() {
			return nil, badOperand(x.Pos(), op, xt, numericHint(yt))
		}
		if b.typ = types.BinaryResult(xt, yt); b.typ == types.Invalid {
			return nil, badOperand(y.Pos(), op, yt, numericHint(xt))
		}
	}

	return b, nil
}

// badOperand reports an operand of type actual where op needs expected.
func badOperand(pos Pos, op Token, actual, expected types.Type) *Error {
	e := invalidType(pos, actual, expected)
	e.Msg = fmt.Sprintf("invalid operation: operator %s not defined on %s (expected %s)", op, actual, expected)
	return e
}

// numericHint returns the numeric type an operand should have next to an
// operand of type other.
func numericHint(other types.Type) types.Type {
	if other == types.Float {
		return types.Float
	}
	return types.Int
}
