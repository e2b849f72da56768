package pyast

import (
	"fmt"
	"strings"
	"unicode"
)

// keywords maps reserved words to their TokenType. Words the grammar has no
// use for map to RESERVED so the parser can reject them by name.
var keywords = map[string]TokenType{
	"import": IMPORT,
	"from":   FROM,
	"as":     AS,
	"and":    AND,
	"or":     OR,
	"not":    NOT,
	"True":   TRUE,
	"False":  FALSE,
	"None":   NONE,

	"assert":   RESERVED,
	"async":    RESERVED,
	"await":    RESERVED,
	"break":    RESERVED,
	"class":    RESERVED,
	"continue": RESERVED,
	"def":      RESERVED,
	"del":      RESERVED,
	"elif":     RESERVED,
	"else":     RESERVED,
	"except":   RESERVED,
	"finally":  RESERVED,
	"for":      RESERVED,
	"global":   RESERVED,
	"if":       RESERVED,
	"in":       RESERVED,
	"is":       RESERVED,
	"lambda":   RESERVED,
	"nonlocal": RESERVED,
	"pass":     RESERVED,
	"raise":    RESERVED,
	"return":   RESERVED,
	"try":      RESERVED,
	"while":    RESERVED,
	"with":     RESERVED,
	"yield":    RESERVED,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 0-based rune column

	depth       int  // open ( [ { nesting; newlines inside brackets are joined
	atLineStart bool // true until the first real token of a logical line
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, atLineStart: true}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune at the given offset from the current position.
func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return r
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// scanIdent collects a full identifier or keyword token.
func (l *Lexer) scanIdent() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col, EndCol: l.col}
}

// stringPrefixes are the identifier spellings Python treats as string
// prefixes when immediately followed by a quote.
func isStringPrefix(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for _, r := range s {
		switch r {
		case 'b', 'B', 'f', 'F', 'r', 'R', 'u', 'U':
		default:
			return false
		}
	}
	return true
}

// scanNumber collects a numeric literal: decimal integers and floats with an
// optional exponent, leading-dot floats, and 0x/0o/0b prefixed integers.
// Underscore digit separators are accepted and dropped from the lexeme.
func (l *Lexer) scanNumber() (Token, error) {
	line, col := l.line, l.col
	start := l.pos

	digits := func(valid func(rune) bool) int {
		n := 0
		for l.pos < len(l.src) && (valid(l.peek()) || l.peek() == '_') {
			if valid(l.peek()) {
				n++
			}
			l.advance()
		}
		return n
	}

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.advance()
		l.advance()
		if digits(isHexDigit) == 0 {
			return Token{}, fmt.Errorf("invalid hex literal on line %d", line)
		}
	} else if l.peek() == '0' && (l.peekAt(1) == 'o' || l.peekAt(1) == 'O') {
		l.advance()
		l.advance()
		if digits(func(r rune) bool { return r >= '0' && r <= '7' }) == 0 {
			return Token{}, fmt.Errorf("invalid octal literal on line %d", line)
		}
	} else if l.peek() == '0' && (l.peekAt(1) == 'b' || l.peekAt(1) == 'B') {
		l.advance()
		l.advance()
		if digits(func(r rune) bool { return r == '0' || r == '1' }) == 0 {
			return Token{}, fmt.Errorf("invalid binary literal on line %d", line)
		}
	} else {
		digits(isDigit)
		if l.peek() == '.' {
			l.advance()
			digits(isDigit)
		}
		// an exponent only counts when digits follow it
		if l.peek() == 'e' || l.peek() == 'E' {
			next := l.peekAt(1)
			if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(2))) {
				l.advance()
				if l.peek() == '+' || l.peek() == '-' {
					l.advance()
				}
				digits(isDigit)
			}
		}
	}

	lexeme := strings.ReplaceAll(string(l.src[start:l.pos]), "_", "")
	return Token{Type: NUMBER, Lexeme: lexeme, Line: line, Col: col, EndCol: l.col}, nil
}

// scanString collects a string literal delimited by quote. Escapes are
// resolved into the token's Lexeme.
func (l *Lexer) scanString(quote rune) (Token, error) {
	line, col := l.line, l.col
	l.advance() // consume opening quote

	if l.peek() == quote && l.peekAt(1) == quote {
		return Token{}, fmt.Errorf("triple-quoted strings are not supported on line %d", line)
	}

	var val []rune
	for {
		if l.pos >= len(l.src) || l.peek() == '\n' {
			return Token{}, fmt.Errorf("unterminated string literal on line %d", line)
		}
		r := l.peek()
		if r == quote {
			break
		}
		if r == '\\' {
			l.advance()
			esc := l.peek()
			switch esc {
			case 'n':
				val = append(val, '\n')
			case 't':
				val = append(val, '\t')
			case 'r':
				val = append(val, '\r')
			case '0':
				val = append(val, 0)
			case '\\':
				val = append(val, '\\')
			case '\'':
				val = append(val, '\'')
			case '"':
				val = append(val, '"')
			case 'x':
				hi, lo := l.peekAt(1), l.peekAt(2)
				if !isHexDigit(hi) || !isHexDigit(lo) {
					return Token{}, fmt.Errorf("invalid \\x escape on line %d", line)
				}
				l.advance()
				l.advance()
				val = append(val, rune(hexVal(hi)<<4|hexVal(lo)))
			default:
				return Token{}, fmt.Errorf("unknown escape sequence \\%c on line %d", esc, line)
			}
			l.advance()
			continue
		}
		val = append(val, r)
		l.advance()
	}
	l.advance() // consume closing quote

	return Token{Type: STRING, Lexeme: string(val), Line: line, Col: col, EndCol: l.col}, nil
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// nextToken skips whitespace, comments and joined lines, then returns the
// next Token.
func (l *Lexer) nextToken() (Token, error) {
	for {
		for l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r' {
			l.advance()
		}
		if l.peek() == '\\' && (l.peekAt(1) == '\n' || (l.peekAt(1) == '\r' && l.peekAt(2) == '\n')) {
			// explicit line joining
			l.advance()
			if l.peek() == '\r' {
				l.advance()
			}
			l.advance()
			continue
		}
		if l.peek() == '#' {
			for l.pos < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
			continue
		}
		if l.peek() == '\n' {
			if l.depth > 0 {
				// implicit line joining inside brackets
				l.advance()
				continue
			}
			tok := Token{Type: NEWLINE, Lexeme: "\n", Line: l.line, Col: l.col, EndCol: l.col + 1}
			l.advance()
			l.atLineStart = true
			return tok, nil
		}
		break
	}

	if l.pos >= len(l.src) {
		return Token{Type: EOF, Line: l.line, Col: l.col, EndCol: l.col}, nil
	}

	// there are no block statements in this subset, so an indented logical
	// line can never be valid
	if l.atLineStart && l.depth == 0 && l.col > 0 {
		return Token{}, fmt.Errorf("unexpected indent on line %d", l.line)
	}
	l.atLineStart = false

	ch := l.peek()

	if isIdentStart(ch) {
		tok := l.scanIdent()
		if next := l.peek(); (next == '"' || next == '\'') && isStringPrefix(tok.Lexeme) {
			prefix := strings.ToLower(tok.Lexeme)
			if prefix == "u" {
				// the u prefix is a no-op in Python 3
				return l.scanString(next)
			}
			return Token{}, fmt.Errorf("%s-prefixed string literals are not supported on line %d", prefix, tok.Line)
		}
		return tok, nil
	}
	if isDigit(ch) || (ch == '.' && isDigit(l.peekAt(1))) {
		return l.scanNumber()
	}
	if ch == '"' || ch == '\'' {
		return l.scanString(ch)
	}

	line, col := l.line, l.col
	l.advance() // consume the character before the switch
	tok := func(tt TokenType, lexeme string) Token {
		return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col, EndCol: l.col}
	}
	aug := func(op string) Token { return tok(AUG_ASSIGN, op) }

	switch ch {
	case '(':
		l.depth++
		return tok(LPAREN, "("), nil
	case ')':
		if l.depth > 0 {
			l.depth--
		}
		return tok(RPAREN, ")"), nil
	case '[':
		l.depth++
		return tok(LBRACKET, "["), nil
	case ']':
		if l.depth > 0 {
			l.depth--
		}
		return tok(RBRACKET, "]"), nil
	case '{':
		l.depth++
		return tok(LBRACE, "{"), nil
	case '}':
		if l.depth > 0 {
			l.depth--
		}
		return tok(RBRACE, "}"), nil
	case ',':
		return tok(COMMA, ","), nil
	case '.':
		return tok(DOT, "."), nil
	case ';':
		return tok(SEMICOLON, ";"), nil
	case ':':
		if l.peek() == '=' {
			l.advance()
			return tok(WALRUS, ":="), nil
		}
		return tok(COLON, ":"), nil

	case '+':
		if l.peek() == '=' {
			l.advance()
			return aug("+="), nil
		}
		return tok(PLUS, "+"), nil
	case '-':
		if l.peek() == '=' {
			l.advance()
			return aug("-="), nil
		}
		return tok(MINUS, "-"), nil
	case '*':
		if l.peek() == '*' {
			l.advance()
			if l.peek() == '=' {
				l.advance()
				return aug("**="), nil
			}
			return tok(DOUBLESTAR, "**"), nil
		}
		if l.peek() == '=' {
			l.advance()
			return aug("*="), nil
		}
		return tok(STAR, "*"), nil
	case '/':
		if l.peek() == '/' {
			l.advance()
			if l.peek() == '=' {
				l.advance()
				return aug("//="), nil
			}
			return tok(DOUBLESLASH, "//"), nil
		}
		if l.peek() == '=' {
			l.advance()
			return aug("/="), nil
		}
		return tok(SLASH, "/"), nil
	case '%':
		if l.peek() == '=' {
			l.advance()
			return aug("%="), nil
		}
		return tok(PERCENT, "%"), nil
	case '@':
		if l.peek() == '=' {
			l.advance()
			return aug("@="), nil
		}
		return tok(AT, "@"), nil
	case '&':
		if l.peek() == '=' {
			l.advance()
			return aug("&="), nil
		}
		return tok(AMP, "&"), nil
	case '|':
		if l.peek() == '=' {
			l.advance()
			return aug("|="), nil
		}
		return tok(PIPE, "|"), nil
	case '^':
		if l.peek() == '=' {
			l.advance()
			return aug("^="), nil
		}
		return tok(CARET, "^"), nil
	case '~':
		return tok(TILDE, "~"), nil
	case '<':
		if l.peek() == '=' {
			l.advance()
			return tok(LESS_EQ, "<="), nil
		}
		if l.peek() == '<' {
			l.advance()
			if l.peek() == '=' {
				l.advance()
				return aug("<<="), nil
			}
			return tok(SHL, "<<"), nil
		}
		return tok(LESS, "<"), nil
	case '>':
		if l.peek() == '=' {
			l.advance()
			return tok(GREATER_EQ, ">="), nil
		}
		if l.peek() == '>' {
			l.advance()
			if l.peek() == '=' {
				l.advance()
				return aug(">>="), nil
			}
			return tok(SHR, ">>"), nil
		}
		return tok(GREATER, ">"), nil
	case '=':
		if l.peek() == '=' { // lookahead: distinguish = vs ==
			l.advance()
			return tok(EQUALS, "=="), nil
		}
		return tok(ASSIGN, "="), nil
	case '!':
		if l.peek() == '=' {
			l.advance()
			return tok(NOT_EQ, "!="), nil
		}
		return Token{}, fmt.Errorf("unexpected character %q on line %d", ch, line)
	default:
		return Token{}, fmt.Errorf("unexpected character %q on line %d", ch, line)
	}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first illegal character, bad literal or
// indented line.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
