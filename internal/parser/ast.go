// Package parser builds the expression AST consumed by the evaluator.
package parser

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// BoolLit is a boolean literal: true, false.
type BoolLit struct {
	Value bool
}

// NullLit is the null literal.
type NullLit struct{}

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

// Ident is a bare name: x.
type Ident struct {
	Name string
}

// ArrayLit is an array literal: [1, 2, 3].
type ArrayLit struct {
	Elements []Expr
}

// Property is one key/value pair of an object literal. Identifier keys are
// carried as string literals.
type Property struct {
	Key   Expr
	Value Expr
}

// ObjectLit is an object literal: {a: 1, "b": 2}.
type ObjectLit struct {
	Properties []Property
}

// Binary is a strict binary expression: a + b.
type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

// Logical is a logical combinator: a && b, a || b, a ?? b.
type Logical struct {
	Op    string
	Left  Expr
	Right Expr
}

// Unary is a prefix expression: +x, -x, ~x, !x.
type Unary struct {
	Op      string
	Operand Expr
}

// Conditional is the ternary expression: test ? consequent : alternate.
type Conditional struct {
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

// Member is a static member access: a.b, a?.b. Optional marks the ?. form.
type Member struct {
	Object   Expr
	Property string
	Optional bool
}

// Index is a computed member access: a[b]. The parser accepts it so the
// evaluator can reject it with a precise diagnostic.
type Index struct {
	Object Expr
	Key    Expr
}

// Call is a call expression: f(a, b).
type Call struct {
	Callee Expr
	Args   []Expr
}

// Chain marks a member/call chain that contains at least one optional link.
type Chain struct {
	Expr Expr
}

func (*BoolLit) exprNode()     {}
func (*NullLit) exprNode()     {}
func (*NumberLit) exprNode()   {}
func (*StringLit) exprNode()   {}
func (*Ident) exprNode()       {}
func (*ArrayLit) exprNode()    {}
func (*ObjectLit) exprNode()   {}
func (*Binary) exprNode()      {}
func (*Logical) exprNode()     {}
func (*Unary) exprNode()       {}
func (*Conditional) exprNode() {}
func (*Member) exprNode()      {}
func (*Index) exprNode()       {}
func (*Call) exprNode()        {}
func (*Chain) exprNode()       {}

// Stmt is implemented by every statement node. The grammar only produces
// expression statements; the evaluator rejects anything else.
type Stmt interface {
	stmtNode()
}

// ExprStmt is a single expression used as a statement.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// Program is a parsed source text. A prologue of bare string-literal
// statements is recorded as directives and kept out of Body, matching the
// host language's directive rule.
type Program struct {
	Body       []Stmt
	Directives []string
}
