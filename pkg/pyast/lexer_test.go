package pyast

import (
	"strings"
	"testing"
)

func mustLex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Lex(src)
	if err != nil {
		t.Fatalf("Lex failed: %v", err)
	}
	return tokens
}

func lexError(t *testing.T, src, wantSubstr string) {
	t.Helper()
	_, err := Lex(src)
	if err == nil {
		t.Fatalf("Lex succeeded, expected an error containing %q", wantSubstr)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Errorf("error %q does not contain %q", err, wantSubstr)
	}
}

func checkTypes(t *testing.T, tokens []Token, want []TokenType) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d: got %s (%q), want %s", i, tokens[i].Type, tokens[i].Lexeme, tt)
		}
	}
}

func TestLexAssignment(t *testing.T) {
	tokens := mustLex(t, "x = 3.5\n")
	checkTypes(t, tokens, []TokenType{IDENTIFIER, ASSIGN, NUMBER, NEWLINE, EOF})
	if tokens[0].Lexeme != "x" || tokens[2].Lexeme != "3.5" {
		t.Errorf("lexemes: got %q and %q", tokens[0].Lexeme, tokens[2].Lexeme)
	}
	if tokens[0].Col != 0 || tokens[0].EndCol != 1 {
		t.Errorf("x span: got %d..%d", tokens[0].Col, tokens[0].EndCol)
	}
	if tokens[2].Col != 4 || tokens[2].EndCol != 7 {
		t.Errorf("3.5 span: got %d..%d", tokens[2].Col, tokens[2].EndCol)
	}
	if tokens[2].Line != 1 {
		t.Errorf("line: got %d", tokens[2].Line)
	}
}

func TestLexNumbers(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"10.", "10."},
		{"1e10", "1e10"},
		{"1E+5", "1E+5"},
		{"2.5e-3", "2.5e-3"},
		{"0x1F", "0x1F"},
		{"0o17", "0o17"},
		{"0b101", "0b101"},
		{"1_000_000", "1000000"},
	}
	for _, c := range cases {
		tokens := mustLex(t, c.src)
		if tokens[0].Type != NUMBER || tokens[0].Lexeme != c.want {
			t.Errorf("%q: got %s (%q), want NUMBER (%q)", c.src, tokens[0].Type, tokens[0].Lexeme, c.want)
		}
	}

	// an e with no digits after it is not an exponent
	tokens := mustLex(t, "2e")
	checkTypes(t, tokens, []TokenType{NUMBER, IDENTIFIER, EOF})
}

func TestLexStrings(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"say \"hi\""`, `say "hi"`},
		{`'it\'s'`, "it's"},
		{`"back\\slash"`, `back\slash`},
		{`"\x41\x42"`, "AB"},
		{`u"legacy"`, "legacy"},
	}
	for _, c := range cases {
		tokens := mustLex(t, c.src)
		if tokens[0].Type != STRING || tokens[0].Lexeme != c.want {
			t.Errorf("%s: got %s (%q), want STRING (%q)", c.src, tokens[0].Type, tokens[0].Lexeme, c.want)
		}
	}
}

func TestLexStringErrors(t *testing.T) {
	lexError(t, `"open`, "unterminated string literal")
	lexError(t, "\"open\nx = 1", "unterminated string literal")
	lexError(t, `"""doc"""`, "triple-quoted strings are not supported")
	lexError(t, `"bad \q escape"`, `unknown escape sequence \q`)
	lexError(t, `"bad \x4 escape"`, `invalid \x escape`)
	lexError(t, `f"value {x}"`, "f-prefixed string literals are not supported")
	lexError(t, `b"bytes"`, "b-prefixed string literals are not supported")
	lexError(t, `r"raw"`, "r-prefixed string literals are not supported")
}

func TestLexKeywords(t *testing.T) {
	tokens := mustLex(t, "import from as and or not True False None")
	checkTypes(t, tokens, []TokenType{
		IMPORT, FROM, AS, AND, OR, NOT, TRUE, FALSE, NONE, EOF,
	})

	tokens = mustLex(t, "while")
	if tokens[0].Type != RESERVED || tokens[0].Lexeme != "while" {
		t.Errorf("while: got %s (%q)", tokens[0].Type, tokens[0].Lexeme)
	}

	// keywords are identifiers when part of a longer name
	tokens = mustLex(t, "import_this")
	if tokens[0].Type != IDENTIFIER {
		t.Errorf("import_this: got %s", tokens[0].Type)
	}
}

func TestLexOperators(t *testing.T) {
	tokens := mustLex(t, "+ - * ** / // % < > <= >= == != << >> & | ^ ~ @")
	checkTypes(t, tokens, []TokenType{
		PLUS, MINUS, STAR, DOUBLESTAR, SLASH, DOUBLESLASH, PERCENT,
		LESS, GREATER, LESS_EQ, GREATER_EQ, EQUALS, NOT_EQ,
		SHL, SHR, AMP, PIPE, CARET, TILDE, AT, EOF,
	})
}

func TestLexAugmentedAssign(t *testing.T) {
	for _, op := range []string{"+=", "-=", "*=", "/=", "//=", "**=", "%=", "&=", "|=", "^=", "<<=", ">>=", "@="} {
		tokens := mustLex(t, "x "+op+" 1")
		if tokens[1].Type != AUG_ASSIGN || tokens[1].Lexeme != op {
			t.Errorf("%s: got %s (%q)", op, tokens[1].Type, tokens[1].Lexeme)
		}
	}

	tokens := mustLex(t, "x := 1")
	if tokens[1].Type != WALRUS {
		t.Errorf(":=: got %s", tokens[1].Type)
	}
}

func TestLexCommentsAndJoining(t *testing.T) {
	t.Run("Comments", func(t *testing.T) {
		tokens := mustLex(t, "x = 1 # the answer\ny = 2\n")
		checkTypes(t, tokens, []TokenType{
			IDENTIFIER, ASSIGN, NUMBER, NEWLINE,
			IDENTIFIER, ASSIGN, NUMBER, NEWLINE, EOF,
		})
	})

	t.Run("ExplicitJoin", func(t *testing.T) {
		tokens := mustLex(t, "x = 1 + \\\n2\n")
		checkTypes(t, tokens, []TokenType{
			IDENTIFIER, ASSIGN, NUMBER, PLUS, NUMBER, NEWLINE, EOF,
		})
	})

	t.Run("BracketJoin", func(t *testing.T) {
		tokens := mustLex(t, "f(1,\n2)\n")
		checkTypes(t, tokens, []TokenType{
			IDENTIFIER, LPAREN, NUMBER, COMMA, NUMBER, RPAREN, NEWLINE, EOF,
		})
	})
}

func TestLexIndentRejected(t *testing.T) {
	lexError(t, "  x = 1\n", "unexpected indent")
	lexError(t, "x = 1\n\ty = 2\n", "unexpected indent")

	// continuation lines inside brackets may be indented
	mustLex(t, "f(1,\n    2)\n")
}

func TestLexUnexpectedCharacters(t *testing.T) {
	lexError(t, "x = $1", "unexpected character")
	lexError(t, "x = !y", "unexpected character")
}
