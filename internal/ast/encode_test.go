package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/letung3105/mlang/internal/token"
)

type M = map[string]interface{}
type L = []interface{}

func decodeYAML(t *testing.T, exprs ...Expr) L {
	var out strings.Builder
	require.NoError(t, EncodeYAML(&out, exprs...))

	var doc L
	require.NoError(t, yaml.Unmarshal([]byte(out.String()), &doc))
	return doc
}

func TestEncodeYAMLBinary(t *testing.T) {
	expr := NewBinaryExpr(num("1"), token.Sub, NewUnaryExpr(token.Sub, ident("x")))

	assert.Equal(t, L{
		M{"binary": M{
			"op":   "-",
			"left": M{"immediate": M{"kind": "int", "text": "1"}},
			"right": M{"unary": M{
				"op":      "-",
				"operand": M{"identifier": "x"},
			}},
		}},
	}, decodeYAML(t, expr))
}

func TestEncodeYAMLDeclarations(t *testing.T) {
	exprs := []Expr{
		NewExternExpr("put", []string{"c"}),
		NewFunctionExpr("main", nil, []Expr{
			NewBindingExpr("s", NewImmediateExpr(token.String, "hi")),
			NewCallExpr(ident("put"), []Expr{ident("s")}),
			NewReturnExpr(),
		}),
		NewScopeExpr(nil),
	}

	assert.Equal(t, L{
		M{"extern": M{"name": "put", "params": L{"c"}}},
		M{"function": M{
			"name":   "main",
			"params": L{},
			"body": L{
				M{"binding": M{
					"name":  "s",
					"value": M{"immediate": M{"kind": "string", "text": "hi"}},
				}},
				M{"call": M{
					"callee": M{"identifier": "put"},
					"args":   L{M{"identifier": "s"}},
				}},
				M{"return": M{}},
			},
		}},
		M{"scope": L{}},
	}, decodeYAML(t, exprs...))
}

func TestEncodeYAMLKeepsLiteralText(t *testing.T) {
	var out strings.Builder
	require.NoError(t, EncodeYAML(&out, NewImmediateExpr(token.Float, "007.50")))
	assert.Contains(t, out.String(), "007.50")

	doc := decodeYAML(t, NewImmediateExpr(token.Float, "007.50"))
	assert.Equal(t, L{M{"immediate": M{"kind": "float", "text": "007.50"}}}, doc)
}

func TestEncodeYAMLEmpty(t *testing.T) {
	var out strings.Builder
	require.NoError(t, EncodeYAML(&out))
	assert.Equal(t, "[]\n", out.String())
}
