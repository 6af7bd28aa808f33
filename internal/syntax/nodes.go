package syntax

import "github.com/you-not-fish/mica/internal/types"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Statements. All nodes
// implement the Node interface. Expressions carry the type the parser
// resolved for them; nodes are never modified once their production returns.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos     // position of first character belonging to the node
	Kind() string // kind label, e.g. "DeclareStatement"
	aNode()       // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	Type() types.Type // resolved value type
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (*node) aNode()     {}

// expr is embedded in all expression nodes.
type expr struct {
	node
	typ types.Type
}

func (x *expr) Type() types.Type { return x.typ }
func (*expr) aExpr()             {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Program structure

// Program is the root of a parsed source file.
type Program struct {
	node
	Stmts []Stmt // top-level statements
}

// Block is a braced statement list: { Stmts... }
type Block struct {
	stmt
	Stmts  []Stmt
	Rbrace Pos // position of closing brace
}

// FuncDecl is a function declaration: Result Name(Params) { Body }
type FuncDecl struct {
	stmt
	Result types.Type // Void for functions without a result
	Name   *FuncName
	Params []*Param
	Body   *Block
	Sig    *types.Signature
}

// Param is a single function parameter: Type Name
type Param struct {
	node
	Type types.Type
	Name *Ident
}

// ----------------------------------------------------------------------------
// Statements

// DeclareStmt declares one or more variables of the same type:
// Type Name [= Value] or Type Name, Name, ...
type DeclareStmt struct {
	stmt
	Type  types.Type
	Names []*Ident
	Value Expr // initializer (nil if none; always nil for several names)
}

// AssignStmt is a plain assignment Target = Value. Compound assignments
// and increments are stored in this form with a BinaryExpr value.
type AssignStmt struct {
	stmt
	Target *Ident
	Value  Expr
}

// CallStmt is a function call used as a statement.
type CallStmt struct {
	stmt
	Call *CallExpr
}

// ReturnStmt is return [Results...]
type ReturnStmt struct {
	stmt
	Results []Expr
}

// IfStmt is if (Cond) Then [else Else]
type IfStmt struct {
	stmt
	Cond Expr
	Then *Block
	Else Stmt // nil, *IfStmt, or *Block
}

// WhileStmt is while (Cond) { Body }
type WhileStmt struct {
	stmt
	Cond Expr
	Body *Block
}

// ForStmt is for (Init, Cond, Post) { Body }; every clause may be nil.
type ForStmt struct {
	stmt
	Init *DeclareStmt
	Cond Expr
	Post *AssignStmt
	Body *Block
}

// ----------------------------------------------------------------------------
// Expressions

// BinaryExpr is X Op Y.
type BinaryExpr struct {
	expr
	Op Token
	X  Expr
	Y  Expr
}

// UnaryExpr is Op X.
type UnaryExpr struct {
	expr
	Op Token // Sub or Not
	X  Expr
}

// CallExpr is Func(Args...). Its type is the callee's unique result type.
type CallExpr struct {
	expr
	Func *FuncName
	Args []Expr
}

// Ident is a reference to, or the declaration of, a variable.
type Ident struct {
	expr
	Name string
}

// FuncName is a reference to, or the declaration of, a function.
type FuncName struct {
	node
	Name string
}

// IntLit is an integer literal.
type IntLit struct {
	expr
	Value int64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	expr
	Value float64
}

// StringLit is a string literal with escapes decoded.
type StringLit struct {
	expr
	Value string
}

// BoolLit is true or false.
type BoolLit struct {
	expr
	Value bool
}

// ----------------------------------------------------------------------------
// Kind labels

func (*Program) Kind() string     { return "Program" }
func (*Block) Kind() string       { return "Block" }
func (*FuncDecl) Kind() string    { return "FunctionDeclaration" }
func (*Param) Kind() string       { return "Parameter" }
func (*DeclareStmt) Kind() string { return "DeclareStatement" }
func (*AssignStmt) Kind() string  { return "AssignStatement" }
func (*CallStmt) Kind() string    { return "CallStatement" }
func (*ReturnStmt) Kind() string  { return "ReturnStatement" }
func (*IfStmt) Kind() string      { return "IfStatement" }
func (*WhileStmt) Kind() string   { return "WhileStatement" }
func (*ForStmt) Kind() string     { return "ForStatement" }
func (*BinaryExpr) Kind() string  { return "BinaryExpression" }
func (*UnaryExpr) Kind() string   { return "UnaryExpression" }
func (*CallExpr) Kind() string    { return "FunctionCall" }
func (*Ident) Kind() string       { return "Identifier" }
func (*FuncName) Kind() string    { return "Function" }
func (*IntLit) Kind() string      { return "IntLiteral" }
func (*FloatLit) Kind() string    { return "FloatLiteral" }
func (*StringLit) Kind() string   { return "StringLiteral" }
func (*BoolLit) Kind() string     { return "TrueFalseLiteral" }
