package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/letung3105/mlang/internal/ast"
	"github.com/letung3105/mlang/internal/config"
	"github.com/letung3105/mlang/internal/parser"
)

func newParseCmd(a *app) *cobra.Command {
	parseCmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of a file",
		Long: `Parse every expression of a file and print its tree, either as
s-expressions (one per line) or as a YAML document. Standard input is read
when the file is omitted or "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}
	parseCmd.Flags().StringVarP(&a.format, "format", "f", "", "output format: sexpr or yaml (default from config)")
	parseCmd.Flags().BoolVarP(&a.single, "expr", "e", false, "parse exactly one expression")
	return parseCmd
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}
	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	var exprs []ast.Expr
	if a.single {
		var expr ast.Expr
		expr, err = parser.ParseExpression(src)
		exprs = []ast.Expr{expr}
	} else {
		exprs, err = parser.ParseFile(src)
	}
	if err != nil {
		return a.fail(err)
	}
	a.logger.Debug("parsed", "input", name, "expressions", len(exprs))
	return render(cmd.OutOrStdout(), format, exprs)
}

// outputFormat prefers the --format flag over the configured format
func (a *app) outputFormat() (string, error) {
	format := a.format
	if format == "" {
		format = a.config.Output.Format
	}
	switch format {
	case config.FormatSexpr, config.FormatYAML:
		return format, nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

func render(w io.Writer, format string, exprs []ast.Expr) error {
	if format == config.FormatYAML {
		return ast.EncodeYAML(w, exprs...)
	}
	printer := &ast.Printer{}
	for _, expr := range exprs {
		fmt.Fprintln(w, printer.Print(expr))
	}
	return nil
}
