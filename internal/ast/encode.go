package ast

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// EncodeYAML writes exprs to w as a YAML sequence, one mapping per node keyed
// by the node's kind
func EncodeYAML(w io.Writer, exprs ...Expr) error {
	doc, err := yamlSeq(&yamlBuilder{}, exprs)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode expressions: %w", err)
	}
	return enc.Close()
}

// yamlBuilder turns every node into a *yaml.Node
type yamlBuilder struct{}

func (b *yamlBuilder) VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error) {
	return yamlTagged("identifier", yamlStr(expr.Name)), nil
}

func (b *yamlBuilder) VisitImmediateExpr(expr *ImmediateExpr) (interface{}, error) {
	return yamlTagged("immediate", yamlMap(
		"kind", yamlStr(expr.Kind.String()),
		"text", yamlStr(expr.Text),
	)), nil
}

func (b *yamlBuilder) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	operand, err := yamlExpr(b, expr.Operand)
	if err != nil {
		return nil, err
	}
	return yamlTagged("unary", yamlMap(
		"op", yamlStr(string(expr.Op)),
		"operand", operand,
	)), nil
}

func (b *yamlBuilder) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	left, err := yamlExpr(b, expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := yamlExpr(b, expr.Right)
	if err != nil {
		return nil, err
	}
	return yamlTagged("binary", yamlMap(
		"op", yamlStr(string(expr.Op)),
		"left", left,
		"right", right,
	)), nil
}

func (b *yamlBuilder) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := yamlExpr(b, expr.Callee)
	if err != nil {
		return nil, err
	}
	args, err := yamlSeq(b, expr.Args)
	if err != nil {
		return nil, err
	}
	return yamlTagged("call", yamlMap("callee", callee, "args", args)), nil
}

func (b *yamlBuilder) VisitBindingExpr(expr *BindingExpr) (interface{}, error) {
	value, err := yamlExpr(b, expr.Value)
	if err != nil {
		return nil, err
	}
	return yamlTagged("binding", yamlMap("name", yamlStr(expr.Name), "value", value)), nil
}

func (b *yamlBuilder) VisitFunctionExpr(expr *FunctionExpr) (interface{}, error) {
	body, err := yamlSeq(b, expr.Body)
	if err != nil {
		return nil, err
	}
	return yamlTagged("function", yamlMap(
		"name", yamlStr(expr.Name),
		"params", yamlStrs(expr.Params),
		"body", body,
	)), nil
}

func (b *yamlBuilder) VisitExternExpr(expr *ExternExpr) (interface{}, error) {
	return yamlTagged("extern", yamlMap(
		"name", yamlStr(expr.Name),
		"params", yamlStrs(expr.Params),
	)), nil
}

func (b *yamlBuilder) VisitScopeExpr(expr *ScopeExpr) (interface{}, error) {
	body, err := yamlSeq(b, expr.Body)
	if err != nil {
		return nil, err
	}
	return yamlTagged("scope", body), nil
}

func (b *yamlBuilder) VisitReturnExpr(expr *ReturnExpr) (interface{}, error) {
	return yamlTagged("return", yamlMap()), nil
}

func yamlExpr(b *yamlBuilder, expr Expr) (*yaml.Node, error) {
	v, err := expr.Accept(b)
	if err != nil {
		return nil, err
	}
	node, ok := v.(*yaml.Node)
	if !ok {
		return nil, fmt.Errorf("unexpected yaml value %T", v)
	}
	return node, nil
}

func yamlSeq(b *yamlBuilder, exprs []Expr) (*yaml.Node, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, expr := range exprs {
		node, err := yamlExpr(b, expr)
		if err != nil {
			return nil, err
		}
		seq.Content = append(seq.Content, node)
	}
	return seq, nil
}

// yamlMap builds a mapping from alternating keys and values
func yamlMap(kv ...interface{}) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i := 0; i+1 < len(kv); i += 2 {
		m.Content = append(m.Content, yamlStr(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return m
}

func yamlTagged(kind string, value *yaml.Node) *yaml.Node {
	return yamlMap(kind, value)
}

func yamlStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlStrs(ss []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, s := range ss {
		seq.Content = append(seq.Content, yamlStr(s))
	}
	return seq
}
