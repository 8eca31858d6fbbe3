// Package parser implements the recursive-descent, single-token-
// lookahead parser described in SPEC_FULL.md §4.1: a precedence-
// climbing expression grammar (comma, ternary, assignment, logical
// short-circuit, equality/comparison/arithmetic, call) over a
// statement/declaration grammar that desugars `for` into `while`.
package parser

import (
	"golox/internal/ast"
	"golox/internal/loxerr"
	"golox/internal/token"
)

const maxArgs = 255

// Parser consumes a flat token slice and builds a Program.
type Parser struct {
	tokens []token.Token
	idx    int
}

// New returns a Parser over tokens (which must end in an EOF token).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and returns the program, or
// the first grammar error encountered. Parsing halts at the first
// error per SPEC_FULL.md's error model.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if loxErr, ok := r.(*loxerr.Error); ok {
				prog, err = nil, loxErr
				return
			}
			panic(r)
		}
	}()

	program := &ast.Program{}
	for !p.atEnd() {
		program.Stmts = append(program.Stmts, p.declaration())
	}
	return program, nil
}

// --- declarations & statements ---

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(token.Fun):
		return p.funDecl()
	case p.match(token.Var):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) funDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect function name.")
	p.consume(token.LeftParen, "Expect '(' after function name.")

	var params []token.Token
	if !p.check(token.RightParen) {
		params = append(params, p.consume(token.Identifier, "Expect parameter name."))
		for p.match(token.Comma) {
			if len(params) >= maxArgs {
				p.error("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")

	p.consume(token.LeftBrace, "Expect '{' before function body.")
	body := p.blockStmts()

	return &ast.Fun{Name: name, Params: params, Body: body}
}

func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")

	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")

	return &ast.Var{Name: name, Init: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.Break):
		return p.breakStmt()
	case p.match(token.LeftBrace):
		return &ast.Block{Stmts: p.blockStmts()}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) printStmt() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.Print{Expr: expr}
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var expr ast.Expr
	if !p.check(token.Semicolon) {
		expr = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Expr: expr}
}

func (p *Parser) breakStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.Semicolon, "Expect ';' after 'break'.")
	return &ast.Break{Keyword: keyword}
}

func (p *Parser) ifStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.Else) {
		els = p.statement()
	}
	return &ast.If{Cond: cond, Then: then, Else: els}
}

func (p *Parser) whileStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RightParen, "Expect ')' after while condition.")

	if p.match(token.Semicolon) {
		return &ast.While{Cond: cond}
	}
	return &ast.While{Cond: cond, Body: p.statement()}
}

// forStmt desugars `for(init; cond; inc) body` into the canonical
// Block([init?, While(cond-or-true, Block([body?, ExprStmt(inc)?]))])
// form described in SPEC_FULL.md / spec.md §4.1.
func (p *Parser) forStmt() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Var):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var inc ast.Expr
	if !p.check(token.RightParen) {
		inc = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	var body ast.Stmt
	if !p.match(token.Semicolon) {
		body = p.statement()
	}

	return desugarFor(init, cond, inc, body)
}

func desugarFor(init ast.Stmt, cond ast.Expr, inc ast.Expr, body ast.Stmt) ast.Stmt {
	var whileBody ast.Stmt
	switch {
	case body != nil && inc != nil:
		whileBody = &ast.Block{Stmts: []ast.Stmt{body, &ast.ExprStmt{Expr: inc}}}
	case body != nil:
		whileBody = &ast.Block{Stmts: []ast.Stmt{body}}
	case inc != nil:
		whileBody = &ast.Block{Stmts: []ast.Stmt{&ast.ExprStmt{Expr: inc}}}
	}

	if cond == nil {
		cond = &ast.Literal{Value: true}
	}
	loop := ast.Stmt(&ast.While{Cond: cond, Body: whileBody})

	if init != nil {
		loop = &ast.Block{Stmts: []ast.Stmt{init, loop}}
	}
	return loop
}

func (p *Parser) blockStmts() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return stmts
}

// --- expressions ---

func (p *Parser) expression() ast.Expr {
	return p.comma()
}

func (p *Parser) comma() ast.Expr {
	expr := p.ternary()

	if p.check(token.Comma) {
		items := []ast.Expr{expr}
		for p.match(token.Comma) {
			items = append(items, p.ternary())
		}
		return &ast.Comma{Items: items}
	}
	return expr
}

func (p *Parser) ternary() ast.Expr {
	expr := p.assignment()

	if p.match(token.Question) {
		then := p.expression()
		p.consume(token.Colon, "Expect ':' after ternary 'then' branch.")
		els := p.expression()
		expr = &ast.Ternary{Cond: expr, Then: then, Else: els}
	}
	return expr
}

func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.Equal) {
		value := p.assignment()

		v, ok := expr.(*ast.Variable)
		if !ok {
			p.error("Invalid assignment target.")
		}
		return &ast.Assign{Name: v.Name, Value: value}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ast.Logic{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logic{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Plus, token.Minus) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Star, token.Slash) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Op: op, Left: expr, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		return &ast.Unary{Op: op, Operand: p.unary()}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

// finishCall implements the "argument parsing policy" from
// SPEC_FULL.md: a single expression is parsed inside the parens, and
// if it comes back as a Comma node its elements become the argument
// list (the comma operator is unwrapped at call boundaries).
func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr

	if !p.check(token.RightParen) {
		expr := p.expression()
		if comma, ok := expr.(*ast.Comma); ok {
			args = comma.Items
		} else {
			args = []ast.Expr{expr}
		}
	}
	if len(args) > maxArgs {
		p.error("Can't have more than 255 arguments.")
	}

	paren := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.LeftParen):
		inner := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Group{Inner: inner}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	default:
		p.error("Expect expression.")
		panic("unreachable")
	}
}

// --- helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind token.Kind, msg string) token.Token {
	if !p.check(kind) {
		p.error(msg)
	}
	tok := p.current()
	p.advance()
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return !p.atEnd() && p.current().Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if !p.atEnd() {
		p.idx++
	}
	return tok
}

func (p *Parser) atEnd() bool { return p.current().Kind == token.EOF }

func (p *Parser) current() token.Token { return p.tokens[p.idx] }

func (p *Parser) previous() token.Token {
	if p.idx > 0 {
		return p.tokens[p.idx-1]
	}
	return p.current()
}

func (p *Parser) error(msg string) {
	tok := p.current()
	where := "end"
	if tok.Kind != token.EOF {
		where = "'" + tok.Lexeme + "'"
	}
	panic(loxerr.NewError(loxerr.ParseError, tok.Line, "Error at %s: %s", where, msg))
}
