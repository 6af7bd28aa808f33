package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// nested prints label followed by node one level deeper.
func (p *printer) nested(label string, node Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(node)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *FuncDecl:
		p.printf("FunctionDeclaration %s %s\n", n.pos, n.Result)
		p.indent++
		p.printf("Name: %s\n", n.Name.Name)
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, pa := range n.Params {
				p.print(pa)
			}
			p.indent--
		}
		p.nested("Body", n.Body)
		p.indent--

	case *Param:
		p.printf("Parameter %s %s %s\n", n.pos, n.Type, n.Name.Name)

	case *DeclareStmt:
		p.printf("DeclareStatement %s %s\n", n.pos, n.Type)
		p.indent++
		for _, name := range n.Names {
			p.print(name)
		}
		if n.Value != nil {
			p.nested("Value", n.Value)
		}
		p.indent--

	case *AssignStmt:
		p.printf("AssignStatement %s =\n", n.pos)
		p.indent++
		p.print(n.Target)
		p.nested("Value", n.Value)
		p.indent--

	case *CallStmt:
		p.printf("CallStatement %s\n", n.pos)
		p.indent++
		p.print(n.Call)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStatement %s\n", n.pos)
		p.indent++
		for _, x := range n.Results {
			p.print(x)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStatement %s\n", n.pos)
		p.indent++
		p.nested("Cond", n.Cond)
		p.nested("Then", n.Then)
		if n.Else != nil {
			p.nested("Else", n.Else)
		}
		p.indent--

	case *WhileStmt:
		p.printf("WhileStatement %s\n", n.pos)
		p.indent++
		p.nested("Cond", n.Cond)
		p.nested("Body", n.Body)
		p.indent--

	case *ForStmt:
		p.printf("ForStatement %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.nested("Init", n.Init)
		}
		if n.Cond != nil {
			p.nested("Cond", n.Cond)
		}
		if n.Post != nil {
			p.nested("Post", n.Post)
		}
		p.nested("Body", n.Body)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpression %s %s %s\n", n.pos, n.Op, n.typ)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpression %s %s %s\n", n.pos, n.Op, n.typ)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("FunctionCall %s %s %s\n", n.pos, n.Func.Name, n.typ)
		p.indent++
		for _, a := range n.Args {
			p.print(a)
		}
		p.indent--

	case *Ident:
		p.printf("Identifier %s %s %s\n", n.pos, n.Name, n.typ)

	case *FuncName:
		p.printf("Function %s %s\n", n.pos, n.Name)

	case *IntLit:
		p.printf("IntLiteral %s %d\n", n.pos, n.Value)

	case *FloatLit:
		p.printf("FloatLiteral %s %g\n", n.pos, n.Value)

	case *StringLit:
		p.printf("StringLiteral %s %q\n", n.pos, n.Value)

	case *BoolLit:
		p.printf("TrueFalseLiteral %s %t\n", n.pos, n.Value)

	default:
		p.printf("<%T>\n", node)
	}
}

// ExprString returns a compact source-like rendering of x, with explicit
// parentheses around every binary and unary expression.
func ExprString(x Expr) string {
	switch x := x.(type) {
	case nil:
		return "<nil>"
	case *Ident:
		return x.Name
	case *IntLit:
		return fmt.Sprint(x.Value)
	case *FloatLit:
		return fmt.Sprint(x.Value)
	case *StringLit:
		return fmt.Sprintf("%q", x.Value)
	case *BoolLit:
		return fmt.Sprint(x.Value)
	case *UnaryExpr:
		return "(" + x.Op.String() + ExprString(x.X) + ")"
	case *BinaryExpr:
		return "(" + ExprString(x.X) + " " + x.Op.String() + " " + ExprString(x.Y) + ")"
	case *CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = ExprString(a)
		}
		return x.Func.Name + "(" + strings.Join(args, ", ") + ")"
	default:
		return fmt.Sprintf("<%T>", x)
	}
}
