package compiler

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gocasio/pkg/casio"
	"gocasio/pkg/pyast"
)

// maxMagnitude is the largest value the calculator can represent. Literals
// beyond it are clamped, keeping the sign.
const maxMagnitude = 9.999999999e99

// translator walks the parsed tree statement by statement, consulting the
// symbol table and the library registry, and appends one emitted byte line
// per effective statement to the context. The first error aborts the walk.
type translator struct {
	ctx *Context
	reg *Registry
	cfg Config
}

func (t *translator) emit(line string) {
	t.ctx.Lines = append(t.ctx.Lines, line)
}

func (t *translator) errorAt(kind ErrorKind, span pyast.Span, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		File:     t.ctx.Filename,
		Line:     span.Line,
		LineText: t.ctx.lineText(span.Line),
		Col:      span.Col,
		EndCol:   span.EndCol,
		Msg:      fmt.Sprintf(format, args...),
	}
}

func (t *translator) warn(span pyast.Span, format string, args ...any) {
	t.ctx.Warnings = append(t.ctx.Warnings, &Warning{
		File:   t.ctx.Filename,
		Line:   span.Line,
		Col:    span.Col,
		EndCol: span.EndCol,
		Msg:    fmt.Sprintf(format, args...),
	})
}

func (t *translator) statement(stmt pyast.Stmt) error {
	switch s := stmt.(type) {
	case *pyast.ImportStmt:
		return t.importStmt(s)
	case *pyast.ImportFromStmt:
		return t.importFromStmt(s)
	case *pyast.AssignStmt:
		return t.assignStmt(s)
	case *pyast.ExprStmt:
		return t.exprStmt(s)
	default:
		return t.errorAt(KindNotSupported, stmt.Span(), "unsupported statement kind %T", stmt)
	}
}

// importStmt handles "import a.b.c [as x]". Only paths inside the reserved
// package are checked; other imports are ignored so a source file can still
// run under a desktop interpreter.
func (t *translator) importStmt(s *pyast.ImportStmt) error {
	for _, item := range s.Items {
		path := ModulePath(item.Path)
		if t.reg.IsModule(path) {
			name := item.Alias
			if name == "" {
				name = item.Dotted()
			}
			t.ctx.Symbols.DefineAlias(name, path)
			continue
		}
		if path.First() == t.reg.Package().First() {
			return t.errorAt(KindImport, item.Pos, "%s is not a %s module", item.Dotted(), t.reg.Package()).
				help("Possible modules: %s", strings.Join(t.reg.ModuleNames(), ", "))
		}
	}
	return nil
}

// importFromStmt handles "from a.b import c [as x]". The module must name
// the package, the library or one of its modules; each imported name must
// be a child module or a function of it.
func (t *translator) importFromStmt(s *pyast.ImportFromStmt) error {
	module := ModulePath(s.Module)
	if module.First() != t.reg.Package().First() {
		return nil
	}
	if !t.reg.IsModule(module) {
		return t.errorAt(KindImport, s.Pos, "%s is not a %s module", module, t.reg.Package()).
			help("Possible modules: %s", strings.Join(t.reg.ModuleNames(), ", "))
	}
	for _, item := range s.Items {
		name := item.Path[0]
		full := module.Child(name)
		if children := t.reg.DirectChildren(module); children != nil {
			if !slices.Contains(children, name) {
				return t.errorAt(KindImport, item.Pos, "%s is not a module of %s", name, module).
					help("Possible modules: %s", strings.Join(children, ", "))
			}
		} else {
			funcs := t.reg.FunctionsOf(module)
			if !slices.Contains(funcs, name) {
				return t.errorAt(KindImport, item.Pos, "%s is not a function of %s", name, module).
					help("Possible functions: %s", strings.Join(funcs, ", "))
			}
		}
		alias := item.Alias
		if alias == "" {
			alias = name
		}
		t.ctx.Symbols.DefineAlias(alias, full)
	}
	return nil
}

// assignStmt evaluates the right side once, then binds each chained target
// to it. Storage slot writes emit one line per target.
func (t *translator) assignStmt(s *pyast.AssignStmt) error {
	value, err := t.expression(s.Value)
	if err != nil {
		return err
	}
	for _, target := range s.Targets {
		name, ok := target.(*pyast.NameExpr)
		if !ok {
			return t.errorAt(KindAssignment, target.Span(), "can't assign to this symbol")
		}
		switch v := value.(type) {
		case ModulePath:
			t.ctx.Symbols.DefineAlias(name.Name, v)
		case *CodeValue:
			if v.Type == TypeNull {
				return t.errorAt(KindAssignment, s.Value.Span(), "the right side does not return a value")
			}
			if v.Caps.PreventAssignment {
				return t.errorAt(KindAssignment, s.Value.Span(), "this value can't be stored in a variable")
			}
			sym, err := t.bind(name.Name, v, target.Span())
			if err != nil {
				return err
			}
			t.emit(v.Code + casio.Assign + sym.Slot)
		default:
			return t.errorAt(KindAssignment, s.Value.Span(), "can't assign a %T expression", v)
		}
	}
	return nil
}

// bind creates or overwrites the symbol for name. Rebinding to the same
// type keeps the existing storage slot in place; a type change allocates
// from the new pool and the old slot stays taken.
func (t *translator) bind(name string, v *CodeValue, span pyast.Span) (*Symbol, error) {
	if sym, ok := t.ctx.Symbols.Get(name); ok && sym.Ref == nil && sym.Type == v.Type {
		sym.Value = v.Code
		return sym, nil
	}
	sym, ok := t.ctx.Symbols.New(name, v.Type, v.Code)
	if !ok {
		return nil, t.errorAt(KindAllocation, span, "out of %s variables", v.Type)
	}
	return sym, nil
}

// exprStmt translates a bare expression statement. Only calls that do
// something on the calculator are kept; everything else is dropped with a
// warning.
func (t *translator) exprStmt(s *pyast.ExprStmt) error {
	res, err := t.expression(s.Expr)
	if err != nil {
		return err
	}
	if v, ok := res.(*CodeValue); ok {
		if _, isCall := s.Expr.(*pyast.CallExpr); isCall {
			if v.Caps.PreventExpression {
				return t.errorAt(KindOperation, s.Pos, "this call can't stand alone as a statement").
					help("assign the result to a variable")
			}
			if v.Caps.SideEffects {
				t.emit(v.Code)
				return nil
			}
		}
	}
	if !t.cfg.SuppressNoEffect {
		t.warn(s.Pos, "statement has no effect")
	}
	return nil
}

// expression translates any expression node to either a code value or a
// library reference.
func (t *translator) expression(expr pyast.Expr) (result, error) {
	switch e := expr.(type) {
	case *pyast.NameExpr:
		return t.nameExpr(e)
	case *pyast.AttributeExpr:
		return t.attributeExpr(e)
	case *pyast.CallExpr:
		return t.callExpr(e)
	case *pyast.NumberLit:
		return newValue(renderNumber(e.Value), TypeNumber, Caps{}), nil
	case *pyast.StringLit:
		return newValue(renderString(e.Value), TypeString, Caps{}), nil
	case *pyast.BoolLit:
		return nil, t.errorAt(KindNotSupported, e.Pos, "boolean literals are not supported").
			help("wrap a number in bool(...) to get a logical value")
	case *pyast.NoneLit:
		return nil, t.errorAt(KindNotSupported, e.Pos, "None is not supported")
	case *pyast.UnaryExpr:
		return t.unaryExpr(e)
	case *pyast.BinaryExpr:
		return t.binaryExpr(e)
	case *pyast.BoolOpExpr:
		return t.boolOpExpr(e)
	case *pyast.CompareExpr:
		return t.compareExpr(e)
	case *pyast.ListExpr:
		return nil, t.errorAt(KindNotSupported, e.Pos, "list expressions are not supported")
	case *pyast.TupleExpr:
		return nil, t.errorAt(KindNotSupported, e.Pos, "tuple expressions are not supported")
	case *pyast.SubscriptExpr:
		return nil, t.errorAt(KindNotSupported, e.Pos, "subscripts are not supported")
	default:
		return nil, t.errorAt(KindNotSupported, expr.Span(), "unsupported expression kind %T", expr)
	}
}

// eval translates expr and requires a computed value rather than a module
// reference.
func (t *translator) eval(expr pyast.Expr) (*CodeValue, error) {
	res, err := t.expression(expr)
	if err != nil {
		return nil, err
	}
	v, ok := res.(*CodeValue)
	if !ok {
		return nil, t.errorAt(KindOperation, expr.Span(), "%s is a module, not a value", res.(ModulePath))
	}
	return v, nil
}

func (t *translator) nameExpr(e *pyast.NameExpr) (result, error) {
	sym, ok := t.ctx.Symbols.Get(e.Name)
	if !ok {
		return nil, t.errorAt(KindName, e.Pos, "%s is not defined", e.Name)
	}
	if sym.Ref != nil {
		return sym.Ref, nil
	}
	return newValue(sym.Slot, sym.Type, Caps{}), nil
}

func (t *translator) attributeExpr(e *pyast.AttributeExpr) (result, error) {
	dotted, ok := flattenAttr(e)
	if !ok {
		return nil, t.errorAt(KindNotSupported, e.Pos, "attribute access on an expression is not supported")
	}
	ref := t.ctx.Symbols.LookupReference(dotted, t.reg)
	if ref == nil {
		return nil, t.errorAt(KindName, e.Pos, "%s is not defined", dotted)
	}
	return ref, nil
}

// flattenAttr rewrites a pure name.attr.attr chain as a dotted string. It
// fails for chains rooted in anything but a name.
func flattenAttr(e pyast.Expr) (string, bool) {
	switch n := e.(type) {
	case *pyast.NameExpr:
		return n.Name, true
	case *pyast.AttributeExpr:
		base, ok := flattenAttr(n.Value)
		if !ok {
			return "", false
		}
		return base + "." + n.Attr, true
	}
	return "", false
}

func (t *translator) callExpr(e *pyast.CallExpr) (result, error) {
	args, err := t.arguments(e)
	if err != nil {
		return nil, err
	}

	dotted, ok := flattenAttr(e.Func)
	if !ok {
		return nil, t.errorAt(KindNotSupported, e.Func.Span(), "calling this expression is not supported")
	}
	if ref := t.ctx.Symbols.LookupReference(dotted, t.reg); ref != nil {
		if t.reg.IsModule(ref) {
			return nil, t.errorAt(KindOperation, e.Pos, "%s is a module and can't be called", ref)
		}
		mod, fn, _ := t.reg.Function(ref)
		return t.libraryCall(e, mod, fn, args)
	}
	if name, isName := e.Func.(*pyast.NameExpr); isName {
		return t.builtinCall(e, name.Name, args)
	}
	return nil, t.errorAt(KindName, e.Func.Span(), "%s is not defined", dotted)
}

// arguments evaluates every call argument up front, rejecting values that
// can't be passed along.
func (t *translator) arguments(e *pyast.CallExpr) ([]*CodeValue, error) {
	args := make([]*CodeValue, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := t.eval(a)
		if err != nil {
			return nil, err
		}
		if v.Caps.PreventArgument {
			return nil, t.errorAt(KindOperation, a.Span(), "this value can't be used as an argument").
				help("assign it to a variable first")
		}
		args = append(args, v)
	}
	return args, nil
}

// builtinCall translates the supported Python builtins.
func (t *translator) builtinCall(e *pyast.CallExpr, name string, args []*CodeValue) (result, error) {
	switch name {
	case "abs":
		v, err := t.oneNumber(e, name, args)
		if err != nil {
			return nil, err
		}
		return newValue(casio.Absolute+v.Code, TypeNumber, v.Caps), nil
	case "int":
		v, err := t.oneNumber(e, name, args)
		if err != nil {
			return nil, err
		}
		return newValue(casio.Int+v.Code, TypeNumber, v.Caps), nil
	case "bool":
		v, err := t.oneNumber(e, name, args)
		if err != nil {
			return nil, err
		}
		caps := v.Caps
		caps.Boolean = true
		return newValue("("+v.Code+casio.NotEqual+"0)", TypeNumber, caps), nil
	case "print":
		if len(args) > 1 {
			return nil, t.errorAt(KindOperation, e.Pos, "print() takes at most 1 argument (%d given)", len(args))
		}
		code := ""
		if len(args) == 1 {
			code = args[0].Code
		}
		return newValue(code+casio.Disp, TypeNull, Caps{SideEffects: true}), nil
	case "len", "list", "max", "min", "range", "round", "sum":
		return nil, t.errorAt(KindNotImplemented, e.Pos, "%s() is not implemented yet", name)
	default:
		return nil, t.errorAt(KindNotSupported, e.Pos, "%s() is not a supported function", name).
			help("the %s library holds the calculator's native functions", t.reg.Library())
	}
}

// oneNumber enforces the one numeric argument shape shared by the builtins
// and the math module.
func (t *translator) oneNumber(e *pyast.CallExpr, name string, args []*CodeValue) (*CodeValue, error) {
	if len(args) != 1 {
		return nil, t.errorAt(KindOperation, e.Pos, "%s() takes exactly 1 argument (%d given)", name, len(args))
	}
	if args[0].Type != TypeNumber {
		return nil, t.errorAt(KindType, e.Args[0].Span(), "%s() expects a number, got %s", name, args[0].Type)
	}
	return args[0], nil
}

var mathTokens = map[string]string{
	"sin":   casio.Sin,
	"cos":   casio.Cos,
	"tan":   casio.Tan,
	"sqrt":  casio.SquareRoot,
	"log":   casio.Log,
	"ln":    casio.Ln,
	"floor": casio.Floor,
}

// libraryCall translates a resolved library function call. A function that
// is in the registry but has no arm here is reported as not implemented.
func (t *translator) libraryCall(e *pyast.CallExpr, mod ModulePath, fn string, args []*CodeValue) (result, error) {
	switch mod.Last() {
	case "input":
		switch fn {
		case "number_input", "string_input":
			if len(args) > 1 {
				return nil, t.errorAt(KindOperation, e.Pos, "%s() takes at most 1 argument (%d given)", fn, len(args))
			}
			prompt := ""
			if len(args) == 1 {
				if args[0].Type != TypeString {
					return nil, t.errorAt(KindType, e.Args[0].Span(), "%s() expects a string prompt, got %s", fn, args[0].Type)
				}
				prompt = args[0].Code
			}
			typ := TypeNumber
			if fn == "string_input" {
				typ = TypeString
			}
			caps := Caps{SideEffects: true, PreventExpression: true, PreventArgument: true}
			return newValue(prompt+"?", typ, caps), nil
		case "getkey":
			if len(args) != 0 {
				return nil, t.errorAt(KindOperation, e.Pos, "getkey() takes no arguments (%d given)", len(args))
			}
			return newValue(casio.Getkey, TypeNumber, Caps{SideEffects: true}), nil
		}
	case "math":
		if tok, ok := mathTokens[fn]; ok {
			v, err := t.oneNumber(e, fn, args)
			if err != nil {
				return nil, err
			}
			return newValue(tok+v.Code, TypeNumber, v.Caps), nil
		}
	}
	return nil, t.errorAt(KindNotImplemented, e.Pos, "%s is not implemented yet", mod.Child(fn))
}

func (t *translator) unaryExpr(e *pyast.UnaryExpr) (result, error) {
	if e.Op == pyast.TILDE {
		return nil, t.errorAt(KindNotSupported, e.Pos, "the ~ operator is not supported").
			help("bitwise operators have no calculator equivalent; use and/or/not")
	}
	v, err := t.eval(e.Operand)
	if err != nil {
		return nil, err
	}
	if v.Type != TypeNumber {
		return nil, t.errorAt(KindType, e.Operand.Span(), "expected a number, got %s", v.Type)
	}
	switch e.Op {
	case pyast.MINUS:
		return newValue(casio.Negative+v.Code, TypeNumber, v.Caps), nil
	case pyast.PLUS:
		return v, nil
	case pyast.NOT:
		caps := v.Caps
		caps.Boolean = true
		return newValue(casio.Not+v.Code, TypeNumber, caps), nil
	default:
		return nil, t.errorAt(KindNotSupported, e.Pos, "unsupported unary operator %s", opSpelling(e.Op))
	}
}

func (t *translator) binaryExpr(e *pyast.BinaryExpr) (result, error) {
	left, err := t.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.eval(e.Right)
	if err != nil {
		return nil, err
	}
	if left.Type != right.Type {
		return nil, t.errorAt(KindType, e.Pos, "type mismatch: %s and %s", left.Type, right.Type)
	}
	caps := left.Caps.and(right.Caps)

	// ^ is logical xor when both sides are known booleans; there is no
	// bitwise form on the calculator.
	if e.Op == pyast.CARET {
		if left.Caps.Boolean && right.Caps.Boolean {
			caps.Boolean = true
			return newValue("("+left.Code+casio.Xor+right.Code+")", TypeNumber, caps), nil
		}
		return nil, t.errorAt(KindNotSupported, e.Pos, "bitwise xor is not supported").
			help("wrap both operands in bool(...) for a logical xor")
	}

	if left.Type != TypeNumber {
		return nil, t.errorAt(KindType, e.Pos, "%s values do not support %s", left.Type, opSpelling(e.Op))
	}

	var tok string
	switch e.Op {
	case pyast.PLUS:
		tok = casio.Add
	case pyast.MINUS:
		tok = casio.Subtract
	case pyast.STAR:
		tok = casio.Multiply
	case pyast.SLASH:
		tok = casio.Divide
	case pyast.DOUBLESTAR:
		tok = casio.Power
	case pyast.PERCENT:
		return newValue(casio.Mod+left.Code+","+right.Code+")", TypeNumber, caps), nil
	case pyast.DOUBLESLASH:
		return newValue(casio.Floor+"("+left.Code+casio.Divide+right.Code+")", TypeNumber, caps), nil
	case pyast.AMP, pyast.PIPE, pyast.SHL, pyast.SHR:
		return nil, t.errorAt(KindNotSupported, e.Pos, "the %s operator is not supported", opSpelling(e.Op)).
			help("bitwise operators have no calculator equivalent; use and/or/not")
	default:
		return nil, t.errorAt(KindNotSupported, e.Pos, "unsupported binary operator %s", opSpelling(e.Op))
	}
	return newValue("("+left.Code+tok+right.Code+")", TypeNumber, caps), nil
}

// boolOpExpr translates an and/or chain. Every operand must be a number;
// the chain renders as one parenthesized run.
func (t *translator) boolOpExpr(e *pyast.BoolOpExpr) (result, error) {
	tok := casio.And
	if e.Op == pyast.OR {
		tok = casio.Or
	}
	var caps Caps
	parts := make([]string, 0, len(e.Values))
	for i, operand := range e.Values {
		v, err := t.eval(operand)
		if err != nil {
			return nil, err
		}
		if v.Type != TypeNumber {
			return nil, t.errorAt(KindType, operand.Span(), "type mismatch: %s and %s", TypeNumber, v.Type)
		}
		if i == 0 {
			caps = v.Caps
		} else {
			caps = caps.and(v.Caps)
		}
		parts = append(parts, v.Code)
	}
	caps.Boolean = true
	return newValue("("+strings.Join(parts, tok)+")", TypeNumber, caps), nil
}

// compareExpr translates a comparison chain as one parenthesized run, the
// way the calculator evaluates consecutive relational operators.
func (t *translator) compareExpr(e *pyast.CompareExpr) (result, error) {
	left, err := t.eval(e.Left)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(left.Code)
	caps := left.Caps
	prev := left
	for i, op := range e.Ops {
		right, err := t.eval(e.Comparators[i])
		if err != nil {
			return nil, err
		}
		if prev.Type != right.Type {
			return nil, t.errorAt(KindType, e.Comparators[i].Span(), "type mismatch: %s and %s", prev.Type, right.Type)
		}
		if right.Type != TypeNumber {
			return nil, t.errorAt(KindType, e.Comparators[i].Span(), "%s values can't be compared", right.Type)
		}
		tok, ok := compareToken(op)
		if !ok {
			return nil, t.errorAt(KindNotSupported, e.Pos, "the %s comparison is not supported", opSpelling(op))
		}
		sb.WriteString(tok)
		sb.WriteString(right.Code)
		caps = caps.and(right.Caps)
		prev = right
	}
	sb.WriteString(")")
	caps.Boolean = true
	return newValue(sb.String(), TypeNumber, caps), nil
}

func compareToken(op pyast.TokenType) (string, bool) {
	switch op {
	case pyast.EQUALS:
		return "=", true
	case pyast.NOT_EQ:
		return casio.NotEqual, true
	case pyast.LESS:
		return "<", true
	case pyast.GREATER:
		return ">", true
	case pyast.LESS_EQ:
		return casio.LessEqual, true
	case pyast.GREATER_EQ:
		return casio.GreaterEqual, true
	}
	return "", false
}

// opSpelling returns the source spelling of an operator token for error
// messages.
func opSpelling(op pyast.TokenType) string {
	switch op {
	case pyast.PLUS:
		return "+"
	case pyast.MINUS:
		return "-"
	case pyast.STAR:
		return "*"
	case pyast.SLASH:
		return "/"
	case pyast.DOUBLESLASH:
		return "//"
	case pyast.DOUBLESTAR:
		return "**"
	case pyast.PERCENT:
		return "%"
	case pyast.CARET:
		return "^"
	case pyast.AMP:
		return "&"
	case pyast.PIPE:
		return "|"
	case pyast.SHL:
		return "<<"
	case pyast.SHR:
		return ">>"
	case pyast.TILDE:
		return "~"
	case pyast.LESS:
		return "<"
	case pyast.GREATER:
		return ">"
	case pyast.LESS_EQ:
		return "<="
	case pyast.GREATER_EQ:
		return ">="
	case pyast.EQUALS:
		return "=="
	case pyast.NOT_EQ:
		return "!="
	case pyast.AND:
		return "and"
	case pyast.OR:
		return "or"
	case pyast.NOT:
		return "not"
	}
	return op.String()
}

// renderNumber formats a literal the way the calculator's numerals read:
// shortest decimal form, the exponent marker byte in place of e notation,
// the value clamped to the representable magnitude.
func renderNumber(v float64) string {
	if v > maxMagnitude {
		v = maxMagnitude
	}
	if v < -maxMagnitude {
		v = -maxMagnitude
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	s = strings.ReplaceAll(s, "e+", casio.Exp)
	s = strings.ReplaceAll(s, "e-", casio.Exp+"-")
	return s
}

// renderString quotes text for the calculator: backslashes and double
// quotes are escaped, everything else passes through byte for byte.
func renderString(s string) string {
	escaped := strings.ReplaceAll(s, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
