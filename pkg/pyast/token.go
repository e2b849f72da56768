package pyast

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF     TokenType = iota // sentinel: end of input
	NEWLINE                  // logical end of statement

	// Literals
	IDENTIFIER // variable / attribute / function name
	NUMBER     // numeric literal, including float and 0x/0o/0b forms
	STRING     // string literal '...' or "..."

	// Keywords the grammar uses
	IMPORT // "import"
	FROM   // "from"
	AS     // "as"
	AND    // "and"
	OR     // "or"
	NOT    // "not"
	TRUE   // "True"
	FALSE  // "False"
	NONE   // "None"

	// Any other reserved word (if, def, while, ...). The lexeme is kept so
	// the parser can name the keyword in its error.
	RESERVED

	// Paired delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }

	// Punctuation
	COMMA     // ,
	DOT       // .
	COLON     // :
	SEMICOLON // ;

	// Assignment  (order matters: ASSIGN before EQUALS)
	ASSIGN     // =
	AUG_ASSIGN // += -= *= /= //= %= **= &= |= ^= <<= >>=
	WALRUS     // :=

	// Arithmetic operators
	PLUS        // +
	MINUS       // -
	STAR        // *
	DOUBLESTAR  // **
	SLASH       // /
	DOUBLESLASH // //
	PERCENT     // %
	AT          // @ (decorator or matrix multiply, both rejected later)

	// Bitwise operators
	AMP   // &
	PIPE  // |
	CARET // ^
	TILDE // ~
	SHL   // <<
	SHR   // >>

	// Comparison
	LESS       // <
	GREATER    // >
	LESS_EQ    // <=
	GREATER_EQ // >=
	EQUALS     // ==
	NOT_EQ     // !=
)

var tokenNames = [...]string{
	EOF:         "EOF",
	NEWLINE:     "NEWLINE",
	IDENTIFIER:  "IDENTIFIER",
	NUMBER:      "NUMBER",
	STRING:      "STRING",
	IMPORT:      "IMPORT",
	FROM:        "FROM",
	AS:          "AS",
	AND:         "AND",
	OR:          "OR",
	NOT:         "NOT",
	TRUE:        "TRUE",
	FALSE:       "FALSE",
	NONE:        "NONE",
	RESERVED:    "RESERVED",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LBRACKET:    "LBRACKET",
	RBRACKET:    "RBRACKET",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	COMMA:       "COMMA",
	DOT:         "DOT",
	COLON:       "COLON",
	SEMICOLON:   "SEMICOLON",
	ASSIGN:      "ASSIGN",
	AUG_ASSIGN:  "AUG_ASSIGN",
	WALRUS:      "WALRUS",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	DOUBLESTAR:  "DOUBLESTAR",
	SLASH:       "SLASH",
	DOUBLESLASH: "DOUBLESLASH",
	PERCENT:     "PERCENT",
	AT:          "AT",
	AMP:         "AMP",
	PIPE:        "PIPE",
	CARET:       "CARET",
	TILDE:       "TILDE",
	SHL:         "SHL",
	SHR:         "SHR",
	LESS:        "LESS",
	GREATER:     "GREATER",
	LESS_EQ:     "LESS_EQ",
	GREATER_EQ:  "GREATER_EQ",
	EQUALS:      "EQUALS",
	NOT_EQ:      "NOT_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched (escapes resolved for STRING)
	Line   int    // 1-based source line
	Col    int    // 0-based rune column of the first character
	EndCol int    // column one past the last character
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d col %d", t.Type, t.Lexeme, t.Line, t.Col)
}
