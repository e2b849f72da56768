package pyast

import (
	"fmt"
	"strconv"
	"strings"
)

// Span locates a node in the source text: 1-based line, 0-based rune columns.
// EndCol is one past the last column, so a single-character node has
// EndCol == Col+1.
type Span struct {
	Line   int
	Col    int
	EndCol int
}

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	Span() Span
	String() string
}

// NameExpr is a read of a plain name.
//
//	print(x)
//	      ^  NameExpr{Name: "x"}
type NameExpr struct {
	Name string
	Pos  Span
}

func (*NameExpr) exprNode()        {}
func (e *NameExpr) Span() Span     { return e.Pos }
func (e *NameExpr) String() string { return e.Name }

// AttributeExpr is a dotted access: Value.Attr
type AttributeExpr struct {
	Value Expr
	Attr  string
	Pos   Span
}

func (*AttributeExpr) exprNode()        {}
func (e *AttributeExpr) Span() Span     { return e.Pos }
func (e *AttributeExpr) String() string { return fmt.Sprintf("(%s.%s)", e.Value, e.Attr) }

// CallExpr is Func(Args...)
type CallExpr struct {
	Func Expr
	Args []Expr
	Pos  Span
}

func (*CallExpr) exprNode()    {}
func (e *CallExpr) Span() Span { return e.Pos }
func (e *CallExpr) String() string {
	return fmt.Sprintf("Call(%s, args=%v)", e.Func, e.Args)
}

// NumberLit is a numeric constant. All numerals, integer or float, are
// carried as float64.
type NumberLit struct {
	Value float64
	Pos   Span
}

func (*NumberLit) exprNode()        {}
func (e *NumberLit) Span() Span     { return e.Pos }
func (e *NumberLit) String() string { return strconv.FormatFloat(e.Value, 'g', -1, 64) }

// StringLit is a string constant with escapes already resolved. Adjacent
// literals are joined by the parser, so "a" "b" arrives as one node.
type StringLit struct {
	Value string
	Pos   Span
}

func (*StringLit) exprNode()        {}
func (e *StringLit) Span() Span     { return e.Pos }
func (e *StringLit) String() string { return fmt.Sprintf("%q", e.Value) }

// BoolLit is True or False.
type BoolLit struct {
	Value bool
	Pos   Span
}

func (*BoolLit) exprNode()    {}
func (e *BoolLit) Span() Span { return e.Pos }
func (e *BoolLit) String() string {
	if e.Value {
		return "True"
	}
	return "False"
}

// NoneLit is the None constant.
type NoneLit struct {
	Pos Span
}

func (*NoneLit) exprNode()        {}
func (e *NoneLit) Span() Span     { return e.Pos }
func (e *NoneLit) String() string { return "None" }

// UnaryExpr is Op Operand (e.g. -x, not x, ~x).
type UnaryExpr struct {
	Op      TokenType
	Operand Expr
	Pos     Span
}

func (*UnaryExpr) exprNode()        {}
func (e *UnaryExpr) Span() Span     { return e.Pos }
func (e *UnaryExpr) String() string { return fmt.Sprintf("(%s %s)", e.Op, e.Operand) }

// BinaryExpr is Left Op Right for arithmetic and bitwise operators.
type BinaryExpr struct {
	Op    TokenType
	Left  Expr
	Right Expr
	Pos   Span
}

func (*BinaryExpr) exprNode()    {}
func (e *BinaryExpr) Span() Span { return e.Pos }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// BoolOpExpr is a run of "and" or "or" over two or more operands. Successive
// uses of the same operator are flattened into one node, the way Python's
// grammar groups them: a or b or c has three Values.
type BoolOpExpr struct {
	Op     TokenType // AND or OR
	Values []Expr
	Pos    Span
}

func (*BoolOpExpr) exprNode()    {}
func (e *BoolOpExpr) Span() Span { return e.Pos }
func (e *BoolOpExpr) String() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = v.String()
	}
	return fmt.Sprintf("BoolOp(%s, [%s])", e.Op, strings.Join(parts, ", "))
}

// CompareExpr is a comparison chain: Left Ops[0] Comparators[0] Ops[1] ...
//
//	a < b <= c
//	^   ^    ^
//	|   |    Comparators[1]
//	|   Comparators[0]
//	Left           Ops = [LESS, LESS_EQ]
type CompareExpr struct {
	Left        Expr
	Ops         []TokenType
	Comparators []Expr
	Pos         Span
}

func (*CompareExpr) exprNode()    {}
func (e *CompareExpr) Span() Span { return e.Pos }
func (e *CompareExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(e.Left.String())
	for i, op := range e.Ops {
		fmt.Fprintf(&sb, " %s %s", op, e.Comparators[i])
	}
	sb.WriteString(")")
	return sb.String()
}

// ListExpr is a list display [a, b, c].
type ListExpr struct {
	Elts []Expr
	Pos  Span
}

func (*ListExpr) exprNode()        {}
func (e *ListExpr) Span() Span     { return e.Pos }
func (e *ListExpr) String() string { return fmt.Sprintf("List%v", e.Elts) }

// TupleExpr is a tuple display (a, b) or a bare a, b.
type TupleExpr struct {
	Elts []Expr
	Pos  Span
}

func (*TupleExpr) exprNode()        {}
func (e *TupleExpr) Span() Span     { return e.Pos }
func (e *TupleExpr) String() string { return fmt.Sprintf("Tuple%v", e.Elts) }

// SubscriptExpr is Value[Index].
type SubscriptExpr struct {
	Value Expr
	Index Expr
	Pos   Span
}

func (*SubscriptExpr) exprNode()        {}
func (e *SubscriptExpr) Span() Span     { return e.Pos }
func (e *SubscriptExpr) String() string { return fmt.Sprintf("(%s[%s])", e.Value, e.Index) }

//  Statement nodes

// Stmt is implemented by every top-level statement node.
type Stmt interface {
	stmtNode()
	Span() Span
	String() string
}

// ImportItem is one clause of an import statement: a dotted path and an
// optional "as" alias.
type ImportItem struct {
	Path  []string // dotted components, e.g. ["gocasio", "casio"]
	Alias string   // "" when there is no as-clause
	Pos   Span
}

func (it ImportItem) Dotted() string { return strings.Join(it.Path, ".") }

func (it ImportItem) String() string {
	if it.Alias != "" {
		return it.Dotted() + " as " + it.Alias
	}
	return it.Dotted()
}

// ImportStmt represents  import a.b, c as d
type ImportStmt struct {
	Items []ImportItem
	Pos   Span
}

func (*ImportStmt) stmtNode()    {}
func (s *ImportStmt) Span() Span { return s.Pos }
func (s *ImportStmt) String() string {
	return fmt.Sprintf("Import(%v)", s.Items)
}

// ImportFromStmt represents  from a.b import c, d as e
// Each item's Path holds a single name.
type ImportFromStmt struct {
	Module []string
	Items  []ImportItem
	Pos    Span
}

func (*ImportFromStmt) stmtNode()    {}
func (s *ImportFromStmt) Span() Span { return s.Pos }
func (s *ImportFromStmt) String() string {
	return fmt.Sprintf("ImportFrom(%s, %v)", strings.Join(s.Module, "."), s.Items)
}

// AssignStmt represents  Targets[0] = Targets[1] = ... = Value
// Plain  x = expr  has a single target.
type AssignStmt struct {
	Targets []Expr
	Value   Expr
	Pos     Span
}

func (*AssignStmt) stmtNode()    {}
func (s *AssignStmt) Span() Span { return s.Pos }
func (s *AssignStmt) String() string {
	return fmt.Sprintf("Assign(%v = %s)", s.Targets, s.Value)
}

// ExprStmt represents an expression evaluated for its side effects.
type ExprStmt struct {
	Expr Expr
	Pos  Span
}

func (*ExprStmt) stmtNode()        {}
func (s *ExprStmt) Span() Span     { return s.Pos }
func (s *ExprStmt) String() string { return fmt.Sprintf("ExprStmt(%s)", s.Expr) }

// Module is the root of a parsed source file.
type Module struct {
	Body []Stmt
}

func (m *Module) String() string {
	return fmt.Sprintf("Module(%d statements)", len(m.Body))
}
