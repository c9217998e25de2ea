// Package parser builds the statement forest the interpreter core
// consumes, from the token stream produced by internal/lexer. It is a
// small recursive-descent parser with precedence climbing for
// expressions (precedence table below).
package parser

import (
	"fmt"
	"strconv"

	"github.com/maximvlas/flsgo/internal/ast"
	"github.com/maximvlas/flsgo/internal/lexer"
	"github.com/maximvlas/flsgo/pkg/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	OR          // or
	AND         // and
	EQUALITY    // == !=
	COMPARISON  // < <= > >=
	TERM        // + -
	FACTOR      // * /
	UNARY       // ! -
	CALL        // function(args)
)

var precedences = map[token.Type]int{
	token.OR:            OR,
	token.AND:           AND,
	token.EQUAL_EQUAL:   EQUALITY,
	token.BANG_EQUAL:    EQUALITY,
	token.LESS:          COMPARISON,
	token.LESS_EQUAL:    COMPARISON,
	token.GREATER:       COMPARISON,
	token.GREATER_EQUAL: COMPARISON,
	token.PLUS:          TERM,
	token.MINUS:         TERM,
	token.STAR:          FACTOR,
	token.SLASH:         FACTOR,
}

const maxArguments = 255

// Parser consumes a token stream and produces a []ast.Stmt.
type Parser struct {
	tokens []token.Token
	pos    int
	errors []string
}

// New tokenizes the entire output of l and returns a ready-to-use Parser.
// Lexical errors surface through the same Errors() slice as parse errors,
// since both are compile errors from the runtime core's point of view
// and ParseProgram's nil-on-error contract covers both.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{tokens: l.ScanTokens()}
	p.errors = append(p.errors, l.Errors()...)
	return p
}

// NewFromTokens builds a Parser directly from an already-scanned token
// stream; useful for tests that want to hand-construct token sequences.
func NewFromTokens(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns the parse errors accumulated while parsing.
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseProgram parses the entire token stream into a statement list. It
// returns nil if any parse error occurred; a nil statement list is the
// signal that tells the interpreter core to report a compile error.
func (p *Parser) ParseProgram() []ast.Stmt {
	statements := []ast.Stmt{}
	for !p.check(token.EOF) {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if len(p.errors) > 0 {
		return nil
	}
	return statements
}

// --- token cursor helpers ---

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) prev() token.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) check(t token.Type) bool {
	return p.cur().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.check(token.EOF) {
		p.pos++
	}
	return p.prev()
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAt(p.cur(), message)
	return p.cur()
}

func (p *Parser) errorAt(tok token.Token, message string) {
	if tok.Type == token.EOF {
		p.errors = append(p.errors, fmt.Sprintf("[line %d] Error at end: %s", tok.Line, message))
	} else {
		p.errors = append(p.errors, fmt.Sprintf("[line %d] Error at '%s': %s", tok.Line, tok.Lexeme, message))
	}
}

// synchronize discards tokens until a likely statement boundary, so one
// parse error doesn't cascade into a wall of spurious followups.
func (p *Parser) synchronize() {
	p.advance()
	for !p.check(token.EOF) {
		if p.prev().Type == token.SEMICOLON {
			return
		}
		switch p.cur().Type {
		case token.FUN, token.VAR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// --- statements ---

func (p *Parser) declaration() ast.Stmt {
	var stmt ast.Stmt
	switch {
	case p.match(token.FUN):
		stmt = p.functionDeclaration()
	case p.match(token.VAR):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.errors) > 0 {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) functionDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect function name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after function name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArguments {
				p.errorAt(p.cur(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(token.LEFT_BRACE, "Expect '{' before function body.")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: &ast.Block{Statements: body}}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LEFT_BRACE):
		return &ast.Block{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.check(token.EOF) {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Expr: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.prev()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// --- expressions (precedence climbing) ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.parseBinary(LOWEST)

	if p.match(token.EQUAL) {
		equals := p.prev()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.unary()

	for {
		prec, ok := precedences[p.cur().Type]
		if !ok || prec <= minPrec {
			break
		}
		operator := p.advance()
		right := p.parseBinary(prec)

		switch operator.Type {
		case token.AND, token.OR:
			left = &ast.Logical{Left: left, Operator: operator, Right: right}
		default:
			left = &ast.Binary{Left: left, Operator: operator, Right: right}
		}
	}
	return left
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		operator := p.prev()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArguments {
				p.errorAt(p.cur(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Value: nil}
	case p.match(token.NUMBER):
		n, _ := strconv.ParseFloat(p.prev().Lexeme, 64)
		return &ast.Literal{Value: n}
	case p.match(token.STRING):
		return &ast.Literal{Value: p.prev().Lexeme}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.prev()}
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	}

	p.errorAt(p.cur(), "Expect expression.")
	p.advance()
	return &ast.Literal{Value: nil}
}
