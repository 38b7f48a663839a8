package parser

import (
	"io"

	"github.com/letung3105/mlang/internal/ast"
	"github.com/letung3105/mlang/internal/lexer"
	"github.com/letung3105/mlang/internal/token"
)

// operators accepted by each binary layer, loosest first
var (
	assignmentOps     = []token.Op{token.Assign, token.AddAssign, token.SubAssign, token.MulAssign, token.DivAssign}
	equalityOps       = []token.Op{token.Equal, token.NotEqual}
	comparisonOps     = []token.Op{token.Less, token.LessEqual, token.Greater, token.GreaterEqual}
	additiveOps       = []token.Op{token.Add, token.Sub}
	multiplicativeOps = []token.Op{token.Mul, token.Div}
)

// Parser composes the syntax tree from a stream of tokens following the
// grammar described in the package documentation. A parser reads its source
// once, it is not restartable.
type Parser struct {
	tokens *stream
}

// New creates a parser reading from source
func New(source TokenSource) *Parser {
	return &Parser{&stream{source: source}}
}

// ParseExpression parses one expression and requires the token stream to
// end right after it
func ParseExpression(source string) (ast.Expr, error) {
	return New(lexer.New(source)).ParseExpression()
}

// ParseFile parses every expression in source
func ParseFile(source string) ([]ast.Expr, error) {
	return New(lexer.New(source)).ParseFile()
}

// ParseExpression parses one expression, trailing tokens are an error
func (parser *Parser) ParseExpression() (ast.Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	tok, err := parser.tokens.peek()
	switch {
	case err == io.EOF:
		return expr, nil
	case err != nil:
		return nil, err
	default:
		return nil, &UnexpectedTokenError{tok}
	}
}

// ParseFile parses expressions until the token stream ends. Semicolons
// between top-level expressions are skipped.
func (parser *Parser) ParseFile() ([]ast.Expr, error) {
	exprs := make([]ast.Expr, 0)
	for {
		tok, err := parser.tokens.peek()
		if err == io.EOF {
			return exprs, nil
		}
		if err != nil {
			return nil, err
		}
		if tok.IsOp(token.Semicolon) {
			parser.tokens.next()
			continue
		}
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}

// expression --> assignment ;
func (parser *Parser) expression() (ast.Expr, error) {
	return parser.assignment()
}

// assignment --> equality ( ( "=" | "+=" | "-=" | "*=" | "/=" ) assignment )? ;
func (parser *Parser) assignment() (ast.Expr, error) {
	return parser.binary(assignmentOps, parser.equality)
}

// equality --> comparison ( ( "==" | "!=" ) equality )? ;
func (parser *Parser) equality() (ast.Expr, error) {
	return parser.binary(equalityOps, parser.comparison)
}

// comparison --> additive ( ( "<" | "<=" | ">" | ">=" ) comparison )? ;
func (parser *Parser) comparison() (ast.Expr, error) {
	return parser.binary(comparisonOps, parser.additive)
}

// additive --> multiplicative ( ( "+" | "-" ) additive )? ;
func (parser *Parser) additive() (ast.Expr, error) {
	return parser.binary(additiveOps, parser.multiplicative)
}

// multiplicative --> call ( ( "*" | "/" ) multiplicative )? ;
func (parser *Parser) multiplicative() (ast.Expr, error) {
	return parser.binary(multiplicativeOps, parser.call)
}

// binary parses the left operand with sub. If it is followed by one of ops,
// the right operand is parsed at the same layer, which makes the chain
// right-associative.
func (parser *Parser) binary(ops []token.Op, sub func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := sub()
	if err != nil {
		return nil, err
	}
	op, matched, err := parser.match(ops...)
	if err != nil {
		return nil, err
	}
	if !matched {
		return left, nil
	}
	right, err := parser.binary(ops, sub)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpr(left, op, right), nil
}

// call --> unary ( "(" args? ")" )* ;
func (parser *Parser) call() (ast.Expr, error) {
	expr, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for {
		_, matched, err := parser.match(token.LeftParen)
		if err != nil {
			return nil, err
		}
		if !matched {
			return expr, nil
		}
		args, err := parser.arguments()
		if err != nil {
			return nil, err
		}
		expr = ast.NewCallExpr(expr, args)
	}
}

// args --> expr ( "," expr )* ;
//
// The opening parenthesis has been consumed, the closing one is consumed here.
func (parser *Parser) arguments() ([]ast.Expr, error) {
	args := make([]ast.Expr, 0)
	if _, matched, err := parser.match(token.RightParen); err != nil || matched {
		if err != nil {
			return nil, err
		}
		return args, nil
	}
	for {
		arg, err := parser.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, err := parser.advance()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsOp(token.Comma):
		case tok.IsOp(token.RightParen):
			return args, nil
		default:
			return nil, &TokenMismatchError{token.NewOp(token.RightParen), tok}
		}
	}
}

// unary --> ( "-" | "!" ) primary
//         | primary ;
func (parser *Parser) unary() (ast.Expr, error) {
	tok, err := parser.tokens.peek()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if err == io.EOF || tok.Kind != token.Operator || !tok.Op.IsPrefix() {
		return parser.primary()
	}
	parser.tokens.next()

	operand, err := parser.primary()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpr(tok.Op, operand), nil
}

// primary --> IDENT | NUMBER | STRING
//           | "(" expr ")" | "{" body "}"
//           | binding | function | extern | "return" ;
func (parser *Parser) primary() (ast.Expr, error) {
	tok, err := parser.advance()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Identifier:
		return ast.NewIdentifierExpr(tok.Text), nil
	case token.Immediate:
		return ast.NewImmediateExpr(tok.Imm, tok.Text), nil
	case token.KeywordKind:
		switch tok.Keyword {
		case token.Let:
			return parser.binding()
		case token.Fn:
			return parser.function()
		case token.Extern:
			return parser.extern()
		case token.Return:
			return ast.NewReturnExpr(), nil
		}
	case token.Operator:
		switch tok.Op {
		case token.LeftParen:
			return parser.group()
		case token.LeftBrace:
			body, err := parser.body()
			if err != nil {
				return nil, err
			}
			return ast.NewScopeExpr(body), nil
		}
	}
	return nil, &UnexpectedTokenError{tok}
}

// group --> "(" expr ")" ;
//
// The grouped expression is returned as is, parentheses leave no node.
func (parser *Parser) group() (ast.Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(token.RightParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// binding --> "let" IDENT "=" expr ;
func (parser *Parser) binding() (ast.Expr, error) {
	name, err := parser.advance()
	if err != nil {
		return nil, err
	}
	if name.Kind != token.Identifier {
		return nil, &UnexpectedTokenError{name}
	}
	if err := parser.consume(token.Assign); err != nil {
		return nil, err
	}
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return ast.NewBindingExpr(name.Text, value), nil
}

// function --> "fn" IDENT "(" params? ")" "{" body "}" ;
func (parser *Parser) function() (ast.Expr, error) {
	name, params, err := parser.prototype()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(token.LeftBrace); err != nil {
		return nil, err
	}
	body, err := parser.body()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionExpr(name, params, body), nil
}

// extern --> "extern" "fn" IDENT "(" params? ")" ;
func (parser *Parser) extern() (ast.Expr, error) {
	tok, err := parser.advance()
	if err != nil {
		return nil, err
	}
	if !tok.IsKeyword(token.Fn) {
		return nil, &TokenMismatchError{token.NewKeyword(token.Fn), tok}
	}
	name, params, err := parser.prototype()
	if err != nil {
		return nil, err
	}
	return ast.NewExternExpr(name, params), nil
}

// prototype parses the name and the parameter list of a function, the "fn"
// keyword has been consumed
func (parser *Parser) prototype() (string, []string, error) {
	name, err := parser.advance()
	if err != nil {
		return "", nil, err
	}
	if name.Kind != token.Identifier {
		return "", nil, &FunctionNameError{name}
	}
	if err := parser.consume(token.LeftParen); err != nil {
		return "", nil, err
	}
	params, err := parser.parameters()
	if err != nil {
		return "", nil, err
	}
	return name.Text, params, nil
}

// params --> IDENT ( "," IDENT )* ;
//
// The closing parenthesis is consumed here.
func (parser *Parser) parameters() ([]string, error) {
	params := make([]string, 0)
	tok, err := parser.advance()
	if err != nil {
		return nil, err
	}
	if tok.IsOp(token.RightParen) {
		return params, nil
	}
	for {
		if tok.Kind != token.Identifier {
			return nil, &UnexpectedTokenError{tok}
		}
		params = append(params, tok.Text)

		if tok, err = parser.advance(); err != nil {
			return nil, err
		}
		switch {
		case tok.IsOp(token.RightParen):
			return params, nil
		case !tok.IsOp(token.Comma):
			return nil, &TokenMismatchError{token.NewOp(token.RightParen), tok}
		}
		if tok, err = parser.advance(); err != nil {
			return nil, err
		}
	}
}

// body --> ( expr ( ";" expr )* ";"? )? "}" ;
//
// The opening brace has been consumed, the closing one is consumed here.
func (parser *Parser) body() ([]ast.Expr, error) {
	body := make([]ast.Expr, 0)
	for {
		_, matched, err := parser.match(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if matched {
			return body, nil
		}

		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		body = append(body, expr)

		tok, err := parser.advance()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.IsOp(token.RightBrace):
			return body, nil
		case !tok.IsOp(token.Semicolon):
			return nil, &TokenMismatchError{token.NewOp(token.Semicolon), tok}
		}
	}
}

// match consumes the next token if it is one of ops. Reaching the end of the
// stream is not an error here, the token is simply not matched.
func (parser *Parser) match(ops ...token.Op) (token.Op, bool, error) {
	tok, err := parser.tokens.peek()
	if err == io.EOF {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if tok.Kind != token.Operator {
		return "", false, nil
	}
	for _, op := range ops {
		if tok.Op == op {
			parser.tokens.next()
			return op, true, nil
		}
	}
	return "", false, nil
}

// consume requires the next token to be op
func (parser *Parser) consume(op token.Op) error {
	tok, err := parser.advance()
	if err != nil {
		return err
	}
	if !tok.IsOp(op) {
		return &TokenMismatchError{token.NewOp(op), tok}
	}
	return nil
}

// advance consumes the next token, the end of the stream is ErrUnexpectedEOF
func (parser *Parser) advance() (token.Token, error) {
	tok, err := parser.tokens.next()
	if err == io.EOF {
		return tok, ErrUnexpectedEOF
	}
	return tok, err
}
