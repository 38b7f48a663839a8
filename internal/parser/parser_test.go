package parser

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letung3105/mlang/internal/ast"
	"github.com/letung3105/mlang/internal/lexer"
	"github.com/letung3105/mlang/internal/token"
)

func ident(name string) ast.Expr {
	return ast.NewIdentifierExpr(name)
}

func integer(text string) ast.Expr {
	return ast.NewImmediateExpr(token.Integer, text)
}

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		src  string
		expr ast.Expr
	}{
		{"x", ident("x")},
		{"💀", ident("💀")},
		{"12", integer("12")},
		{"3.14", ast.NewImmediateExpr(token.Float, "3.14")},
		{`"a string"`, ast.NewImmediateExpr(token.String, "a string")},
		{"(12)", integer("12")},
		{"((x))", ident("x")},
		{"return", ast.NewReturnExpr()},
		{"{}", ast.NewScopeExpr([]ast.Expr{})},
		{"{ x }", ast.NewScopeExpr([]ast.Expr{ident("x")})},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := ParseExpression(tc.src)
		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParseStructure(t *testing.T) {
	testCases := []struct {
		src  string
		expr ast.Expr
	}{
		{"1 + 2",
			ast.NewBinaryExpr(integer("1"), token.Add, integer("2"))},
		{"1 - 2 - 3",
			ast.NewBinaryExpr(
				integer("1"),
				token.Sub,
				ast.NewBinaryExpr(integer("2"), token.Sub, integer("3")))},
		{"-x",
			ast.NewUnaryExpr(token.Sub, ident("x"))},
		{"f(1, 2)",
			ast.NewCallExpr(ident("f"), []ast.Expr{integer("1"), integer("2")})},
		{"f()",
			ast.NewCallExpr(ident("f"), []ast.Expr{})},
		{"let x = 1",
			ast.NewBindingExpr("x", integer("1"))},
		{"fn add(a, b) { a + b }",
			ast.NewFunctionExpr("add", []string{"a", "b"}, []ast.Expr{
				ast.NewBinaryExpr(ident("a"), token.Add, ident("b")),
			})},
		{"fn nop() {}",
			ast.NewFunctionExpr("nop", []string{}, []ast.Expr{})},
		{"extern fn sin(x)",
			ast.NewExternExpr("sin", []string{"x"})},
		{"extern fn now()",
			ast.NewExternExpr("now", []string{})},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := ParseExpression(tc.src)
		assert.NoError(err, tc.src)
		assert.Equal(tc.expr, expr, tc.src)
	}
}

func TestParsePrecedence(t *testing.T) {
	testCases := []struct {
		src  string
		sexp string
	}{
		// right-associative chains
		{"1 - 2 - 3", "(- 1 (- 2 3))"},
		{"8 / 4 / 2", "(/ 8 (/ 4 2))"},
		{"a = b = 1", "(= a (= b 1))"},
		{"a += b -= 1", "(+= a (-= b 1))"},
		// grouping overrides the chain
		{"(1 - 2) - 3", "(- (- 1 2) 3)"},
		// layers
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"x = 1 + 2", "(= x (+ 1 2))"},
		{"x *= y / 2", "(*= x (/ y 2))"},
		{"a == b < c + 1", "(== a (< b (+ c 1)))"},
		{"a != b", "(!= a b)"},
		{"a <= b == c >= d", "(== (<= a b) (>= c d))"},
		{"x = a > b", "(= x (> a b))"},
		// unary and calls
		{"-1 + 2", "(+ (- 1) 2)"},
		{"!x == y", "(== (! x) y)"},
		{"-(1 + 2)", "(- (+ 1 2))"},
		{"-f(x)", "(call (- f) x)"},
		{"f(1)(2)", "(call (call f 1) 2)"},
		{"f(g(1), 2 * 3)", "(call f (call g 1) (* 2 3))"},
		{"f(x = 1)", "(call f (= x 1))"},
		{"2 * f(x)", "(* 2 (call f x))"},
		{"(f)(x)", "(call f x)"},
		// declarations and blocks
		{"let x = y = 1", "(let x (= y 1))"},
		{"let s = \"hi\"", `(let s "hi")`},
		{"fn f(a) { let b = a * 2; return; }", "(fn f (a) (let b (* a 2)) (return))"},
		{"{ let x = 1; { x } }", "(scope (let x 1) (scope x))"},
		{"{ 1; 2; 3 }", "(scope 1 2 3)"},
		{"extern fn pow(x, y)", "(extern pow (x y))"},
		{"fn f() {} + 1", "(+ (fn f ()) 1)"},
	}

	assert := assert.New(t)
	printer := &ast.Printer{}
	for _, tc := range testCases {
		expr, err := ParseExpression(tc.src)
		if assert.NoError(err, tc.src) {
			assert.Equal(tc.sexp, printer.Print(expr), tc.src)
		}
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"", ErrUnexpectedEOF},
		{"(1 + 2", ErrUnexpectedEOF},
		{"1 +", ErrUnexpectedEOF},
		{"f(1,", ErrUnexpectedEOF},
		{"{ 1;", ErrUnexpectedEOF},
		{"let x =", ErrUnexpectedEOF},
		{"fn f(a", ErrUnexpectedEOF},
		{"1 + 2 )", &UnexpectedTokenError{token.NewOp(token.RightParen)}},
		{")", &UnexpectedTokenError{token.NewOp(token.RightParen)}},
		{"1 2", &UnexpectedTokenError{token.NewInteger("2")}},
		{"--1", &UnexpectedTokenError{token.NewOp(token.Sub)}},
		{"!-x", &UnexpectedTokenError{token.NewOp(token.Sub)}},
		{"+1", &UnexpectedTokenError{token.NewOp(token.Add)}},
		{"-", ErrUnexpectedEOF},
		{"f(1,)", &UnexpectedTokenError{token.NewOp(token.RightParen)}},
		{"{ ; }", &UnexpectedTokenError{token.NewOp(token.Semicolon)}},
		{"[1]", &UnexpectedTokenError{token.NewOp(token.LeftBracket)}},
		{"let 1 = 2", &UnexpectedTokenError{token.NewInteger("1")}},
		{"fn f(1) {}", &UnexpectedTokenError{token.NewInteger("1")}},
		{"let x 1", &TokenMismatchError{token.NewOp(token.Assign), token.NewInteger("1")}},
		{"(1 2)", &TokenMismatchError{token.NewOp(token.RightParen), token.NewInteger("2")}},
		{"f(1 2)", &TokenMismatchError{token.NewOp(token.RightParen), token.NewInteger("2")}},
		{"fn f(a b) {}", &TokenMismatchError{token.NewOp(token.RightParen), token.NewIdentifier("b")}},
		{"fn f() a", &TokenMismatchError{token.NewOp(token.LeftBrace), token.NewIdentifier("a")}},
		{"fn f { }", &TokenMismatchError{token.NewOp(token.LeftParen), token.NewOp(token.LeftBrace)}},
		{"fn f() { a b }", &TokenMismatchError{token.NewOp(token.Semicolon), token.NewIdentifier("b")}},
		{"extern sin(x)", &TokenMismatchError{token.NewKeyword(token.Fn), token.NewIdentifier("sin")}},
		{"fn 1() {}", &FunctionNameError{token.NewInteger("1")}},
		{"fn let() {}", &FunctionNameError{token.NewKeyword(token.Let)}},
		{"extern fn (x)", &FunctionNameError{token.NewOp(token.LeftParen)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		expr, err := ParseExpression(tc.src)
		assert.Nil(expr, tc.src)
		assert.Equal(tc.err, err, tc.src)
		assert.True(errors.Is(err, ErrParse), tc.src)
	}
}

func TestParseLexErrorPassesThrough(t *testing.T) {
	testCases := []struct {
		src string
		err error
	}{
		{"1 + 2..3", &lexer.InvalidNumberError{Text: "2..3"}},
		{"1 @", &lexer.InvalidOperatorError{Text: "@"}},
		{"(@)", &lexer.InvalidOperatorError{Text: "@"}},
		{"x = @;", &lexer.InvalidOperatorError{Text: "@"}},
		{"f(1, @)", &lexer.InvalidOperatorError{Text: "@"}},
		{"let s = \"open", &lexer.UnterminatedStringError{Text: "\"open"}},
		{"x \x00", &lexer.UnexpectedCharError{Char: '\x00'}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, lexErr := lexer.Tokenize(tc.src)
		_, err := ParseExpression(tc.src)

		assert.Equal(tc.err, err, tc.src)
		assert.Equal(lexErr, err, tc.src)
		assert.True(errors.Is(err, lexer.ErrLex), tc.src)
		assert.False(errors.Is(err, ErrParse), tc.src)
	}
}

func TestParseFile(t *testing.T) {
	testCases := []struct {
		src   string
		sexps []string
	}{
		{"", []string{}},
		{";;", []string{}},
		{"x", []string{"x"}},
		{"let x = 1; x + 1;", []string{"(let x 1)", "(+ x 1)"}},
		{
			"extern fn sin(x);\nfn twice(a) { a * 2 };\ntwice(sin(1))",
			[]string{"(extern sin (x))", "(fn twice (a) (* a 2))", "(call twice (call sin 1))"},
		},
		{"1 2 3", []string{"1", "2", "3"}},
	}

	assert := assert.New(t)
	printer := &ast.Printer{}
	for _, tc := range testCases {
		exprs, err := ParseFile(tc.src)
		if !assert.NoError(err, tc.src) {
			continue
		}
		sexps := make([]string, 0, len(exprs))
		for _, expr := range exprs {
			sexps = append(sexps, printer.Print(expr))
		}
		assert.Equal(tc.sexps, sexps, tc.src)
	}
}

func TestParseFileStopsAtFirstError(t *testing.T) {
	assert := assert.New(t)

	exprs, err := ParseFile("let x = 1; let = 2; x")
	assert.Nil(exprs)
	assert.Equal(&UnexpectedTokenError{token.NewOp(token.Assign)}, err)

	exprs, err = ParseFile("let x = 1; 1.2.3")
	assert.Nil(exprs)
	assert.Equal(&lexer.InvalidNumberError{Text: "1.2.3"}, err)
}

func TestParseFromTokens(t *testing.T) {
	assert := assert.New(t)
	toks := []token.Token{
		token.NewIdentifier("x"),
		token.NewOp(token.Assign),
		token.NewInteger("1"),
		token.NewOp(token.Add),
		token.NewIdentifier("y"),
	}

	expr, err := New(FromTokens(toks)).ParseExpression()
	require.NoError(t, err)
	assert.Equal(
		ast.NewBinaryExpr(
			ident("x"),
			token.Assign,
			ast.NewBinaryExpr(integer("1"), token.Add, ident("y"))),
		expr)
}

func TestStreamKeepsEndOfInput(t *testing.T) {
	assert := assert.New(t)
	s := &stream{source: FromTokens([]token.Token{token.NewIdentifier("a")})}

	tok, err := s.peek()
	assert.NoError(err)
	assert.Equal(token.NewIdentifier("a"), tok)
	tok, err = s.next()
	assert.NoError(err)
	assert.Equal(token.NewIdentifier("a"), tok)

	for i := 0; i < 3; i++ {
		_, err = s.next()
		assert.Equal(io.EOF, err)
		_, err = s.peek()
		assert.Equal(io.EOF, err)
	}
}

func TestStreamHandsOutLexErrorOnce(t *testing.T) {
	assert := assert.New(t)
	s := &stream{source: lexer.New("@ a")}

	_, err := s.peek()
	assert.Equal(&lexer.InvalidOperatorError{Text: "@"}, err)
	_, err = s.next()
	assert.Equal(&lexer.InvalidOperatorError{Text: "@"}, err)
	_, err = s.next()
	assert.Equal(io.EOF, err)
}
