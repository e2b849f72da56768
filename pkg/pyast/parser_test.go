package pyast

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) *Module {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	mod, err := Parse(tokens, src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return mod
}

func parseError(t *testing.T, src, wantSubstr string) {
	t.Helper()
	tokens, err := Lex(src)
	if err == nil {
		_, err = Parse(tokens, src)
	}
	if err == nil {
		t.Fatalf("Parse succeeded, expected an error containing %q", wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Errorf("error %q does not contain %q", err, wantSubstr)
	}
}

// exprString parses a single expression statement and dumps its tree.
func exprString(t *testing.T, src string) string {
	t.Helper()
	mod := mustParse(t, src)
	if len(mod.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(mod.Body))
	}
	stmt, ok := mod.Body[0].(*ExprStmt)
	if !ok {
		t.Fatalf("got %T, want *ExprStmt", mod.Body[0])
	}
	return stmt.Expr.String()
}

func TestParsePrecedence(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 PLUS (2 STAR 3))"},
		{"(1 + 2) * 3", "((1 PLUS 2) STAR 3)"},
		{"1 - 2 - 3", "((1 MINUS 2) MINUS 3)"},
		{"2 ** 3 ** 2", "(2 DOUBLESTAR (3 DOUBLESTAR 2))"},
		{"-2 ** 2", "(MINUS (2 DOUBLESTAR 2))"},
		{"2 ** -1", "(2 DOUBLESTAR (MINUS 1))"},
		{"7 // 2 % 3", "((7 DOUBLESLASH 2) PERCENT 3)"},
		{"1 < 2 + 3", "(1 LESS (2 PLUS 3))"},
		{"1 < 2 < 3", "(1 LESS 2 LESS 3)"},
		{"not 1 == 2", "(NOT (1 EQUALS 2))"},
		{"1 and 2 or 3", "BoolOp(OR, [BoolOp(AND, [1, 2]), 3])"},
		{"1 or 2 or 3", "BoolOp(OR, [1, 2, 3])"},
		{"1 | 2 ^ 3 & 4", "(1 PIPE (2 CARET (3 AMP 4)))"},
		{"1 << 2 + 3", "(1 SHL (2 PLUS 3))"},
		{"-x", "(MINUS x)"},
		{"~x", "(TILDE x)"},
		{"a.b.c", "((a.b).c)"},
		{"x[0]", "(x[0])"},
		{`"a" "b"`, `"ab"`},
	}
	for _, c := range cases {
		if got := exprString(t, c.src); got != c.want {
			t.Errorf("%s:\n  got  %s\n  want %s", c.src, got, c.want)
		}
	}
}

func TestParseCalls(t *testing.T) {
	mod := mustParse(t, "f(1, x + 2)\n")
	stmt := mod.Body[0].(*ExprStmt)
	call, ok := stmt.Expr.(*CallExpr)
	if !ok {
		t.Fatalf("got %T, want *CallExpr", stmt.Expr)
	}
	if name, ok := call.Func.(*NameExpr); !ok || name.Name != "f" {
		t.Errorf("callee: got %s", call.Func)
	}
	if len(call.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(call.Args))
	}
	if call.Args[1].String() != "(x PLUS 2)" {
		t.Errorf("second arg: got %s", call.Args[1])
	}

	// trailing comma is allowed
	mod = mustParse(t, "f(1,)\n")
	call = mod.Body[0].(*ExprStmt).Expr.(*CallExpr)
	if len(call.Args) != 1 {
		t.Errorf("trailing comma: got %d args, want 1", len(call.Args))
	}
}

func TestParseAssignments(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		mod := mustParse(t, "x = 1 + 2\n")
		assign, ok := mod.Body[0].(*AssignStmt)
		if !ok {
			t.Fatalf("got %T, want *AssignStmt", mod.Body[0])
		}
		if len(assign.Targets) != 1 {
			t.Fatalf("got %d targets, want 1", len(assign.Targets))
		}
		if name := assign.Targets[0].(*NameExpr); name.Name != "x" {
			t.Errorf("target: got %s", name.Name)
		}
		if assign.Value.String() != "(1 PLUS 2)" {
			t.Errorf("value: got %s", assign.Value)
		}
	})

	t.Run("Chained", func(t *testing.T) {
		mod := mustParse(t, "x = y = 5\n")
		assign := mod.Body[0].(*AssignStmt)
		if len(assign.Targets) != 2 {
			t.Fatalf("got %d targets, want 2", len(assign.Targets))
		}
	})

	t.Run("TupleTarget", func(t *testing.T) {
		mod := mustParse(t, "a, b = 1, 2\n")
		assign := mod.Body[0].(*AssignStmt)
		if _, ok := assign.Targets[0].(*TupleExpr); !ok {
			t.Errorf("target: got %T, want *TupleExpr", assign.Targets[0])
		}
		if _, ok := assign.Value.(*TupleExpr); !ok {
			t.Errorf("value: got %T, want *TupleExpr", assign.Value)
		}
	})

	t.Run("Rejections", func(t *testing.T) {
		parseError(t, "f() = 1\n", "cannot assign to function call")
		parseError(t, "x + 1 = 2\n", "cannot assign to this expression")
		parseError(t, "x += 1\n", `augmented assignment ("+=") is not supported`)
		parseError(t, "x := 1\n", "assignment expressions are not supported")
	})
}

func TestParseImports(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		mod := mustParse(t, "import gocasio.casio as c, sys\n")
		imp, ok := mod.Body[0].(*ImportStmt)
		if !ok {
			t.Fatalf("got %T, want *ImportStmt", mod.Body[0])
		}
		if len(imp.Items) != 2 {
			t.Fatalf("got %d items, want 2", len(imp.Items))
		}
		if imp.Items[0].Dotted() != "gocasio.casio" || imp.Items[0].Alias != "c" {
			t.Errorf("first item: got %s", imp.Items[0])
		}
		if imp.Items[1].Dotted() != "sys" || imp.Items[1].Alias != "" {
			t.Errorf("second item: got %s", imp.Items[1])
		}
	})

	t.Run("From", func(t *testing.T) {
		mod := mustParse(t, "from gocasio.casio import input, math as m\n")
		imp := mod.Body[0].(*ImportFromStmt)
		if strings.Join(imp.Module, ".") != "gocasio.casio" {
			t.Errorf("module: got %v", imp.Module)
		}
		if len(imp.Items) != 2 || imp.Items[1].Alias != "m" {
			t.Errorf("items: got %v", imp.Items)
		}
	})

	t.Run("FromParenthesized", func(t *testing.T) {
		mod := mustParse(t, "from gocasio.casio import (input,\n    math)\n")
		imp := mod.Body[0].(*ImportFromStmt)
		if len(imp.Items) != 2 {
			t.Errorf("items: got %v", imp.Items)
		}
	})

	t.Run("FromStar", func(t *testing.T) {
		mod := mustParse(t, "from gocasio.casio import *\n")
		imp := mod.Body[0].(*ImportFromStmt)
		if len(imp.Items) != 1 || imp.Items[0].Dotted() != "*" {
			t.Errorf("items: got %v", imp.Items)
		}
	})

	t.Run("Rejections", func(t *testing.T) {
		parseError(t, "from . import x\n", "relative imports are not supported")
		parseError(t, "from a as b import c\n", `expected "import" after the module name`)
		parseError(t, "from a import ()\n", "expected at least one name to import")
	})
}

func TestParseStatementSeparators(t *testing.T) {
	mod := mustParse(t, "x = 1; y = 2\n\n\nz = 3")
	if len(mod.Body) != 3 {
		t.Errorf("got %d statements, want 3", len(mod.Body))
	}
}

func TestParseNumberValues(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"42", 42},
		{".5", 0.5},
		{"0x10", 16},
		{"0o17", 15},
		{"0b101", 5},
		{"2.5e2", 250},
	}
	for _, c := range cases {
		mod := mustParse(t, c.src+"\n")
		num, ok := mod.Body[0].(*ExprStmt).Expr.(*NumberLit)
		if !ok {
			t.Fatalf("%s: got %T, want *NumberLit", c.src, mod.Body[0].(*ExprStmt).Expr)
		}
		if num.Value != c.want {
			t.Errorf("%s: got %g, want %g", c.src, num.Value, c.want)
		}
	}
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"if x:\n", `"if" statements are not supported`},
		{"while 1:\n", `"while" statements are not supported`},
		{"def f():\n", `"def" statements are not supported`},
		{"del x\n", `"del" statements are not supported`},
		{"@dec\n", "decorators are not supported"},
		{"x = 1 if y else 2\n", "conditional expressions are not supported"},
		{"x = [i for i in y]\n", "comprehensions are not supported"},
		{"x = (i for i in y)\n", "comprehensions are not supported"},
		{"x = {1: 2}\n", "dict and set literals are not supported"},
		{"x = y[1:2]\n", "slices are not supported"},
		{"f(a=1)\n", "keyword arguments are not supported"},
		{"f(*args)\n", "argument unpacking is not supported"},
		{"f(**kw)\n", "argument unpacking is not supported"},
		{"x = y in z\n", `the "in" operator is not supported`},
		{"x = y is z\n", `the "is" operator is not supported`},
		{"x = y not in z\n", `the "not in" operator is not supported`},
		{"x = y @ z\n", "matrix multiplication is not supported"},
		{"x = (1\n", "expected RPAREN"},
		{"x = )\n", "unexpected RPAREN"},
	}
	for _, c := range cases {
		parseError(t, c.src, c.want)
	}
}

func TestParseErrorShowsSourceLine(t *testing.T) {
	tokens, err := Lex("x = 1\ny = )\n")
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	_, err = Parse(tokens, "x = 1\ny = )\n")
	if err == nil {
		t.Fatalf("Parse succeeded, expected an error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "line 2:") {
		t.Errorf("error should carry the line number, got %q", msg)
	}
	if !strings.Contains(msg, "|> y = )") {
		t.Errorf("error should quote the source line, got %q", msg)
	}
}
