package pyast

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar (the statement subset the calculator target can express):
//
//	module     = (statement (NEWLINE | ";"))* EOF
//	statement  = import | importFrom | assignment | exprStmt
//	import     = "import" dottedName ("as" NAME)? ("," dottedName ("as" NAME)?)*
//	importFrom = "from" dottedName "import" ("*" | names | "(" names ")")
//	assignment = exprList ("=" exprList)+
//	exprStmt   = exprList
//	exprList   = expression ("," expression)* (",")?
//	expression = boolOr
//	boolOr     = boolAnd ("or" boolAnd)*
//	boolAnd    = boolNot ("and" boolNot)*
//	boolNot    = "not" boolNot | comparison
//	comparison = bitOr (("<"|">"|"<="|">="|"=="|"!=") bitOr)*
//	bitOr      = bitXor ("|" bitXor)*
//	bitXor     = bitAnd ("^" bitAnd)*
//	bitAnd     = shift ("&" shift)*
//	shift      = additive (("<<"|">>") additive)*
//	additive   = multiplicative (("+"|"-") multiplicative)*
//	multiplicative = unary (("*"|"/"|"//"|"%") unary)*
//	unary      = ("+"|"-"|"~") unary | power
//	power      = postfix ("**" unary)?
//	postfix    = primary ("." NAME | "(" args ")" | "[" expression "]")*
//	primary    = NUMBER | STRING+ | "True" | "False" | "None" | NAME
//	           | "(" expression ("," expression)* ")" | "[" exprList "]"
//
// Reserved statement keywords (if, def, while, ...) and constructs the
// target can't express (f-strings, comprehensions, slices, dicts) are
// rejected with errors naming the construct.
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// Parse tokenizes nothing itself; it builds the module AST from the token
// slice produced by Lex.
func Parse(tokens []Token, rawSource string) (*Module, error) {
	return NewParser(tokens, rawSource).parseModule()
}

// fmtError wraps an error message with the source line where the token appears.
func (p *Parser) fmtError(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return fmt.Errorf("line %d: %s\n  |> %s", tok.Line, msg, snippet)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// peekNext returns the token immediately after the current one.
func (p *Parser) peekNext() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos+1]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.fmtError(tok, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

func tokSpan(t Token) Span {
	return Span{Line: t.Line, Col: t.Col, EndCol: t.EndCol}
}

// binSpan covers two expressions: the left one's start to the right one's end.
func binSpan(l, r Expr) Span {
	return Span{Line: l.Span().Line, Col: l.Span().Col, EndCol: r.Span().EndCol}
}

func (p *Parser) skipSeparators() {
	for p.peek().Type == NEWLINE || p.peek().Type == SEMICOLON {
		p.advance()
	}
}

func (p *Parser) expectEndOfStatement() error {
	tok := p.peek()
	switch tok.Type {
	case NEWLINE, SEMICOLON:
		p.advance()
		return nil
	case EOF:
		return nil
	default:
		return p.fmtError(tok, "expected end of statement, got %s (%q)", tok.Type, tok.Lexeme)
	}
}

func (p *Parser) parseModule() (*Module, error) {
	mod := &Module{}
	p.skipSeparators()
	for p.peek().Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		mod.Body = append(mod.Body, stmt)
		p.skipSeparators()
	}
	return mod, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	switch tok := p.peek(); tok.Type {
	case IMPORT:
		return p.parseImport()
	case FROM:
		return p.parseImportFrom()
	case RESERVED:
		return nil, p.fmtError(tok, "%q statements are not supported", tok.Lexeme)
	case AT:
		return nil, p.fmtError(tok, "decorators are not supported")
	default:
		return p.parseExprOrAssign()
	}
}

// parseImportItem reads one dotted name with an optional "as" alias. When
// dotted is false only a single name is accepted (the from-import form).
func (p *Parser) parseImportItem(dotted bool) (ImportItem, error) {
	first, err := p.expect(IDENTIFIER)
	if err != nil {
		return ImportItem{}, err
	}
	path := []string{first.Lexeme}
	end := first
	for dotted && p.peek().Type == DOT {
		p.advance()
		name, err := p.expect(IDENTIFIER)
		if err != nil {
			return ImportItem{}, err
		}
		path = append(path, name.Lexeme)
		end = name
	}
	alias := ""
	if p.peek().Type == AS {
		p.advance()
		name, err := p.expect(IDENTIFIER)
		if err != nil {
			return ImportItem{}, err
		}
		alias = name.Lexeme
		end = name
	}
	return ImportItem{
		Path:  path,
		Alias: alias,
		Pos:   Span{Line: first.Line, Col: first.Col, EndCol: end.EndCol},
	}, nil
}

func (p *Parser) parseImport() (Stmt, error) {
	kw := p.advance()
	var items []ImportItem
	for {
		item, err := p.parseImportItem(true)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.peek().Type != COMMA {
			break
		}
		p.advance()
	}
	stmt := &ImportStmt{
		Items: items,
		Pos:   Span{Line: kw.Line, Col: kw.Col, EndCol: items[len(items)-1].Pos.EndCol},
	}
	return stmt, p.expectEndOfStatement()
}

func (p *Parser) parseImportFrom() (Stmt, error) {
	kw := p.advance()
	if p.peek().Type == DOT {
		return nil, p.fmtError(p.peek(), "relative imports are not supported")
	}
	modItem, err := p.parseImportItem(true)
	if err != nil {
		return nil, err
	}
	if modItem.Alias != "" {
		return nil, p.fmtError(p.peek(), `expected "import" after the module name`)
	}
	if _, err := p.expect(IMPORT); err != nil {
		return nil, err
	}

	var items []ImportItem
	end := modItem.Pos.EndCol
	switch p.peek().Type {
	case STAR:
		star := p.advance()
		items = append(items, ImportItem{Path: []string{"*"}, Pos: tokSpan(star)})
		end = star.EndCol
	case LPAREN:
		p.advance()
		for p.peek().Type != RPAREN {
			item, err := p.parseImportItem(false)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
		rp, err := p.expect(RPAREN)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, p.fmtError(rp, "expected at least one name to import")
		}
		end = rp.EndCol
	default:
		for {
			item, err := p.parseImportItem(false)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			end = item.Pos.EndCol
			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
	}

	stmt := &ImportFromStmt{
		Module: modItem.Path,
		Items:  items,
		Pos:    Span{Line: kw.Line, Col: kw.Col, EndCol: end},
	}
	return stmt, p.expectEndOfStatement()
}

func (p *Parser) parseExprOrAssign() (Stmt, error) {
	first, err := p.parseExprList()
	if err != nil {
		return nil, err
	}

	var targets []Expr
	expr := first
	for p.peek().Type == ASSIGN {
		eq := p.advance()
		switch expr.(type) {
		case *NameExpr, *AttributeExpr, *SubscriptExpr, *TupleExpr, *ListExpr:
		case *CallExpr:
			return nil, p.fmtError(eq, "cannot assign to function call")
		default:
			return nil, p.fmtError(eq, "cannot assign to this expression")
		}
		targets = append(targets, expr)
		expr, err = p.parseExprList()
		if err != nil {
			return nil, err
		}
	}

	switch tok := p.peek(); tok.Type {
	case AUG_ASSIGN:
		return nil, p.fmtError(tok, "augmented assignment (%q) is not supported", tok.Lexeme)
	case WALRUS:
		return nil, p.fmtError(tok, "assignment expressions are not supported")
	}

	var stmt Stmt
	if len(targets) > 0 {
		stmt = &AssignStmt{
			Targets: targets,
			Value:   expr,
			Pos:     binSpan(targets[0], expr),
		}
	} else {
		stmt = &ExprStmt{Expr: expr, Pos: expr.Span()}
	}
	return stmt, p.expectEndOfStatement()
}

// startsExpression reports whether tok can begin an expression. Used to
// permit a trailing comma in a bare tuple.
func startsExpression(tok Token) bool {
	switch tok.Type {
	case NUMBER, STRING, IDENTIFIER, TRUE, FALSE, NONE,
		LPAREN, LBRACKET, LBRACE, NOT, PLUS, MINUS, TILDE, RESERVED:
		return true
	}
	return false
}

// parseExprList parses expression ("," expression)*. Two or more expressions
// make a bare tuple, as in  a, b = 1, 2.
func (p *Parser) parseExprList() (Expr, error) {
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != COMMA {
		return first, nil
	}
	elts := []Expr{first}
	last := first.Span()
	for p.peek().Type == COMMA {
		comma := p.advance()
		last.EndCol = comma.EndCol
		if !startsExpression(p.peek()) {
			break
		}
		e, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		last = e.Span()
	}
	return &TupleExpr{
		Elts: elts,
		Pos:  Span{Line: first.Span().Line, Col: first.Span().Col, EndCol: last.EndCol},
	}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	expr, err := p.parseBoolOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type == RESERVED && tok.Lexeme == "if" {
		return nil, p.fmtError(tok, "conditional expressions are not supported")
	}
	return expr, nil
}

// parseBoolOr handles "or", flattening a run into one node.
func (p *Parser) parseBoolOr() (Expr, error) {
	expr, err := p.parseBoolAnd()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != OR {
		return expr, nil
	}
	values := []Expr{expr}
	for p.peek().Type == OR {
		p.advance()
		right, err := p.parseBoolAnd()
		if err != nil {
			return nil, err
		}
		values = append(values, right)
	}
	return &BoolOpExpr{Op: OR, Values: values, Pos: binSpan(values[0], values[len(values)-1])}, nil
}

// parseBoolAnd handles "and", flattening a run into one node.
func (p *Parser) parseBoolAnd() (Expr, error) {
	expr, err := p.parseBoolNot()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != AND {
		return expr, nil
	}
	values := []Expr{expr}
	for p.peek().Type == AND {
		p.advance()
		right, err := p.parseBoolNot()
		if err != nil {
			return nil, err
		}
		values = append(values, right)
	}
	return &BoolOpExpr{Op: AND, Values: values, Pos: binSpan(values[0], values[len(values)-1])}, nil
}

// parseBoolNot handles "not". It binds looser than comparison, so
// not a == b negates the whole comparison.
func (p *Parser) parseBoolNot() (Expr, error) {
	if tok := p.peek(); tok.Type == NOT {
		p.advance()
		operand, err := p.parseBoolNot()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:      NOT,
			Operand: operand,
			Pos:     Span{Line: tok.Line, Col: tok.Col, EndCol: operand.Span().EndCol},
		}, nil
	}
	return p.parseComparison()
}

func isCompareOp(tt TokenType) bool {
	switch tt {
	case LESS, GREATER, LESS_EQ, GREATER_EQ, EQUALS, NOT_EQ:
		return true
	}
	return false
}

// parseComparison handles chained comparisons: a < b <= c is one node with
// two operators, matching Python's grammar.
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	var ops []TokenType
	var comparators []Expr
	for {
		tok := p.peek()
		if tok.Type == RESERVED && (tok.Lexeme == "in" || tok.Lexeme == "is") {
			return nil, p.fmtError(tok, "the %q operator is not supported", tok.Lexeme)
		}
		if tok.Type == NOT && p.peekNext().Type == RESERVED && p.peekNext().Lexeme == "in" {
			return nil, p.fmtError(tok, `the "not in" operator is not supported`)
		}
		if !isCompareOp(tok.Type) {
			break
		}
		p.advance()
		right, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		ops = append(ops, tok.Type)
		comparators = append(comparators, right)
	}
	if len(ops) == 0 {
		return left, nil
	}
	return &CompareExpr{
		Left:        left,
		Ops:         ops,
		Comparators: comparators,
		Pos:         binSpan(left, comparators[len(comparators)-1]),
	}, nil
}

// parseBitOr handles |
func (p *Parser) parseBitOr() (Expr, error) {
	expr, err := p.parseBitXor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PIPE {
		op := p.advance().Type
		right, err := p.parseBitXor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Pos: binSpan(expr, right)}
	}
	return expr, nil
}

// parseBitXor handles ^
func (p *Parser) parseBitXor() (Expr, error) {
	expr, err := p.parseBitAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == CARET {
		op := p.advance().Type
		right, err := p.parseBitAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Pos: binSpan(expr, right)}
	}
	return expr, nil
}

// parseBitAnd handles &
func (p *Parser) parseBitAnd() (Expr, error) {
	expr, err := p.parseShift()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == AMP {
		op := p.advance().Type
		right, err := p.parseShift()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Pos: binSpan(expr, right)}
	}
	return expr, nil
}

// parseShift handles << and >>
func (p *Parser) parseShift() (Expr, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == SHL || p.peek().Type == SHR {
		op := p.advance().Type
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Pos: binSpan(expr, right)}
	}
	return expr, nil
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance().Type
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Op: op, Left: expr, Right: right, Pos: binSpan(expr, right)}
	}
	return expr, nil
}

// parseMultiplicative handles * / // and %
func (p *Parser) parseMultiplicative() (Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch tok := p.peek(); tok.Type {
		case STAR, SLASH, DOUBLESLASH, PERCENT:
			p.advance()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			expr = &BinaryExpr{Op: tok.Type, Left: expr, Right: right, Pos: binSpan(expr, right)}
		case AT:
			return nil, p.fmtError(tok, "matrix multiplication is not supported")
		default:
			return expr, nil
		}
	}
}

// parseUnary handles prefix + - and ~. Power binds tighter, so -2**2 parses
// as -(2**2).
func (p *Parser) parseUnary() (Expr, error) {
	if tok := p.peek(); tok.Type == PLUS || tok.Type == MINUS || tok.Type == TILDE {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{
			Op:      tok.Type,
			Operand: operand,
			Pos:     Span{Line: tok.Line, Col: tok.Col, EndCol: operand.Span().EndCol},
		}, nil
	}
	return p.parsePower()
}

// parsePower handles **, right-associative: 2**3**2 is 2**(3**2).
func (p *Parser) parsePower() (Expr, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != DOUBLESTAR {
		return left, nil
	}
	p.advance()
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: DOUBLESTAR, Left: left, Right: right, Pos: binSpan(left, right)}, nil
}

// parsePostfix handles attribute access, calls and subscripts.
func (p *Parser) parsePostfix() (Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case DOT:
			p.advance()
			name, err := p.expect(IDENTIFIER)
			if err != nil {
				return nil, err
			}
			expr = &AttributeExpr{
				Value: expr,
				Attr:  name.Lexeme,
				Pos:   Span{Line: expr.Span().Line, Col: expr.Span().Col, EndCol: name.EndCol},
			}
		case LPAREN:
			p.advance()
			args, rp, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &CallExpr{
				Func: expr,
				Args: args,
				Pos:  Span{Line: expr.Span().Line, Col: expr.Span().Col, EndCol: rp.EndCol},
			}
		case LBRACKET:
			p.advance()
			if p.peek().Type == COLON {
				return nil, p.fmtError(p.peek(), "slices are not supported")
			}
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if p.peek().Type == COLON {
				return nil, p.fmtError(p.peek(), "slices are not supported")
			}
			rb, err := p.expect(RBRACKET)
			if err != nil {
				return nil, err
			}
			expr = &SubscriptExpr{
				Value: expr,
				Index: index,
				Pos:   Span{Line: expr.Span().Line, Col: expr.Span().Col, EndCol: rb.EndCol},
			}
		default:
			return expr, nil
		}
	}
}

// parseCallArgs reads a positional argument list up to the closing paren.
func (p *Parser) parseCallArgs() ([]Expr, Token, error) {
	var args []Expr
	for p.peek().Type != RPAREN {
		if tok := p.peek(); tok.Type == STAR || tok.Type == DOUBLESTAR {
			return nil, Token{}, p.fmtError(tok, "argument unpacking is not supported")
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, Token{}, err
		}
		if tok := p.peek(); tok.Type == ASSIGN {
			return nil, Token{}, p.fmtError(tok, "keyword arguments are not supported")
		}
		args = append(args, arg)
		if p.peek().Type != COMMA {
			break
		}
		p.advance()
	}
	rp, err := p.expect(RPAREN)
	if err != nil {
		return nil, Token{}, err
	}
	return args, rp, nil
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch tok := p.peek(); tok.Type {
	case NUMBER:
		p.advance()
		v, err := parseNumberLexeme(tok.Lexeme)
		if err != nil {
			return nil, p.fmtError(tok, "invalid number literal %q", tok.Lexeme)
		}
		return &NumberLit{Value: v, Pos: tokSpan(tok)}, nil

	case STRING:
		p.advance()
		val := tok.Lexeme
		end := tok
		// adjacent string literals concatenate: "a" "b" is "ab"
		for p.peek().Type == STRING {
			next := p.advance()
			val += next.Lexeme
			end = next
		}
		return &StringLit{
			Value: val,
			Pos:   Span{Line: tok.Line, Col: tok.Col, EndCol: end.EndCol},
		}, nil

	case TRUE:
		p.advance()
		return &BoolLit{Value: true, Pos: tokSpan(tok)}, nil
	case FALSE:
		p.advance()
		return &BoolLit{Value: false, Pos: tokSpan(tok)}, nil
	case NONE:
		p.advance()
		return &NoneLit{Pos: tokSpan(tok)}, nil

	case IDENTIFIER:
		p.advance()
		return &NameExpr{Name: tok.Lexeme, Pos: tokSpan(tok)}, nil

	case LPAREN:
		lp := p.advance()
		if p.peek().Type == RPAREN {
			rp := p.advance()
			return &TupleExpr{Pos: Span{Line: lp.Line, Col: lp.Col, EndCol: rp.EndCol}}, nil
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		switch next := p.peek(); next.Type {
		case WALRUS:
			return nil, p.fmtError(next, "assignment expressions are not supported")
		case RESERVED:
			if next.Lexeme == "for" {
				return nil, p.fmtError(next, "comprehensions are not supported")
			}
		case COMMA:
			elts := []Expr{inner}
			for p.peek().Type == COMMA {
				p.advance()
				if p.peek().Type == RPAREN {
					break
				}
				e, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				elts = append(elts, e)
			}
			rp, err := p.expect(RPAREN)
			if err != nil {
				return nil, err
			}
			return &TupleExpr{Elts: elts, Pos: Span{Line: lp.Line, Col: lp.Col, EndCol: rp.EndCol}}, nil
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		// grouping parens keep the inner node's span
		return inner, nil

	case LBRACKET:
		lb := p.advance()
		var elts []Expr
		for p.peek().Type != RBRACKET {
			e, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if next := p.peek(); next.Type == RESERVED && next.Lexeme == "for" {
				return nil, p.fmtError(next, "comprehensions are not supported")
			}
			elts = append(elts, e)
			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
		rb, err := p.expect(RBRACKET)
		if err != nil {
			return nil, err
		}
		return &ListExpr{Elts: elts, Pos: Span{Line: lb.Line, Col: lb.Col, EndCol: rb.EndCol}}, nil

	case LBRACE:
		return nil, p.fmtError(tok, "dict and set literals are not supported")

	case RESERVED:
		return nil, p.fmtError(tok, "%q is not supported in expressions", tok.Lexeme)

	default:
		return nil, p.fmtError(tok, "unexpected %s (%q) in expression", tok.Type, tok.Lexeme)
	}
}

// parseNumberLexeme converts a NUMBER lexeme to float64. A decimal literal
// too large for float64 overflows to infinity rather than failing, matching
// how the translator later clamps out-of-range values.
func parseNumberLexeme(lexeme string) (float64, error) {
	if len(lexeme) > 2 {
		var base int
		switch lexeme[:2] {
		case "0x", "0X":
			base = 16
		case "0o", "0O":
			base = 8
		case "0b", "0B":
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(lexeme[2:], base, 64)
			if err != nil {
				return 0, err
			}
			return float64(u), nil
		}
	}
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}
