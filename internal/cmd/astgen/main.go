package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"
)

// Each entry is "Name: Field Type, Field Type". The node's type name is the
// entry name suffixed with the base name.
var expressionTypes = []string{
	"Identifier: Name string",
	"Immediate: Kind token.ImmediateKind, Text string",
	"Unary: Op token.Op, Operand Expr",
	"Binary: Left Expr, Op token.Op, Right Expr",
	// Callee is any expression, not only identifiers
	"Call: Callee Expr, Args []Expr",
	"Binding: Name string, Value Expr",
	"Function: Name string, Params []string, Body []Expr",
	"Extern: Name string, Params []string",
	"Scope: Body []Expr",
	"Return:",
}

const tokenImport = "github.com/letung3105/mlang/internal/token"

func main() {
	out := flag.String("out", "", "output file, stdout if empty")
	pkg := flag.String("pkg", "ast", "package name of the generated file")
	flag.Parse()

	src, err := generate(*pkg, "Expr", expressionTypes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// generate returns the gofmt-ed source declaring the base interface, its
// visitor and one struct per type
func generate(pkg string, baseName string, types []string) ([]byte, error) {
	var buf bytes.Buffer
	defineAst(&buf, pkg, baseName, types)
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func defineAst(writer io.Writer, pkg string, baseName string, types []string) {
	fmt.Fprintf(writer, "// Code generated by astgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(writer, "package %s\n\n", pkg)
	if strings.Contains(strings.Join(types, ""), "token.") {
		fmt.Fprintf(writer, "import %q\n\n", tokenImport)
	}

	fmt.Fprintf(writer, "// %s is a node of the syntax tree\n", baseName)
	fmt.Fprintf(writer, "type %s interface {\n", baseName)
	fmt.Fprintf(writer, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(writer, "}\n\n")

	defineVisitor(writer, baseName, types)

	for _, t := range types {
		typeName, fields := splitType(t)
		defineType(writer, baseName, typeName, fields)
	}
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "// %sVisitor is implemented by passes over the tree\n", baseName)
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName, _ := splitType(t)
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fields []string,
) {
	// Struct definition
	if len(fields) == 0 {
		fmt.Fprintf(writer, "type %s%s struct{}\n\n", typeName, baseName)
	} else {
		fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
		for _, f := range fields {
			fmt.Fprintf(writer, "\t%s\n", f)
		}
		fmt.Fprintf(writer, "}\n\n")
	}

	// Constructor
	var params, names []string
	for _, f := range fields {
		parts := strings.Fields(f)
		name := lowerFirst(parts[0])
		params = append(params, name+" "+parts[1])
		names = append(names, name)
	}
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(params, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(names, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}

// splitType breaks "Name: A T, B U" into "Name" and ["A T", "B U"]
func splitType(t string) (string, []string) {
	parts := strings.SplitN(t, ":", 2)
	typeName := strings.TrimSpace(parts[0])
	var fields []string
	if len(parts) == 2 {
		for _, f := range strings.Split(parts[1], ",") {
			if field := strings.TrimSpace(f); field != "" {
				fields = append(fields, field)
			}
		}
	}
	return typeName, fields
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
