// Package ast defines the expression tree produced by the parser. Every node
// owns its children, the tree has no shared nodes and no back edges.
package ast

//go:generate go run ../cmd/astgen -out expr.go
