package ast

import (
	"fmt"
	"strings"
)

// Printer renders expressions as s-expressions
type Printer struct{}

func (printer *Printer) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *Printer) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return expr.Name, nil
}

func (printer *Printer) VisitImmediateExpr(expr *ImmediateExpr) (interface{}, error) {
	if expr.Kind.IsNumber() {
		return expr.Text, nil
	}
	return fmt.Sprintf("%q", expr.Text), nil
}

func (printer *Printer) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(string(expr.Op), expr.Operand), nil
}

func (printer *Printer) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(string(expr.Op), expr.Left, expr.Right), nil
}

func (printer *Printer) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return printer.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...), nil
}

func (printer *Printer) VisitBindingExpr(expr *BindingExpr) (interface{}, error) {
	return printer.parenthesize("let "+expr.Name, expr.Value), nil
}

func (printer *Printer) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	head := fmt.Sprintf("fn %s (%s)", expr.Name, strings.Join(expr.Params, " "))
	return printer.parenthesize(head, expr.Body...), nil
}

func (printer *Printer) VisitExternExpr(expr *ExternExpr) (interface{}, error) {
	return fmt.Sprintf("(extern %s (%s))", expr.Name, strings.Join(expr.Params, " ")), nil
}

func (printer *Printer) VisitScopeExpr(expr *ScopeExpr) (interface{}, error) {
	return printer.parenthesize("scope", expr.Body...), nil
}

func (printer *Printer) VisitReturnExpr(expr *ReturnExpr) (interface{}, error) {
	return "(return)", nil
}

func (printer *Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteString(" ")
		b.WriteString(printer.Print(expr))
	}
	b.WriteString(")")
	return b.String()
}
