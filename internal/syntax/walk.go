package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, visiting children in source
// order. If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Body, v)

	case *Param:
		Walk(n.Name, v)

	case *DeclareStmt:
		for _, name := range n.Names {
			Walk(name, v)
		}
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *AssignStmt:
		Walk(n.Target, v)
		Walk(n.Value, v)

	case *CallStmt:
		Walk(n.Call, v)

	case *ReturnStmt:
		for _, x := range n.Results {
			Walk(x, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Post != nil {
			Walk(n.Post, v)
		}
		Walk(n.Body, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Func, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: Ident, FuncName, IntLit, FloatLit, StringLit, BoolLit
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
