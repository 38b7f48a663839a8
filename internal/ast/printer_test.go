package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letung3105/mlang/internal/token"
)

func num(text string) *ImmediateExpr {
	return NewImmediateExpr(token.Integer, text)
}

func ident(name string) *IdentifierExpr {
	return NewIdentifierExpr(name)
}

func TestPrinter(t *testing.T) {
	testCases := []struct {
		expr Expr
		out  string
	}{
		{ident("x"), "x"},
		{num("42"), "42"},
		{NewImmediateExpr(token.Float, "4.2"), "4.2"},
		{NewImmediateExpr(token.String, "hi there"), `"hi there"`},
		{NewUnaryExpr(token.Sub, num("1")), "(- 1)"},
		{NewUnaryExpr(token.Bang, ident("ok")), "(! ok)"},
		{
			NewBinaryExpr(num("1"), token.Add, NewBinaryExpr(num("2"), token.Mul, num("3"))),
			"(+ 1 (* 2 3))",
		},
		{NewCallExpr(ident("f"), nil), "(call f)"},
		{NewCallExpr(ident("f"), []Expr{num("1"), ident("y")}), "(call f 1 y)"},
		{
			NewCallExpr(NewCallExpr(ident("f"), []Expr{num("1")}), []Expr{num("2")}),
			"(call (call f 1) 2)",
		},
		{NewBindingExpr("x", num("1")), "(let x 1)"},
		{NewFunctionExpr("main", nil, nil), "(fn main ())"},
		{
			NewFunctionExpr("add", []string{"a", "b"}, []Expr{
				NewBinaryExpr(ident("a"), token.Add, ident("b")),
				NewReturnExpr(),
			}),
			"(fn add (a b) (+ a b) (return))",
		},
		{NewExternExpr("sin", []string{"x"}), "(extern sin (x))"},
		{NewScopeExpr(nil), "(scope)"},
		{NewScopeExpr([]Expr{num("1"), num("2")}), "(scope 1 2)"},
		{NewReturnExpr(), "(return)"},
	}

	assert := assert.New(t)
	printer := &Printer{}
	for _, tc := range testCases {
		assert.Equal(tc.out, printer.Print(tc.expr))
	}
}
