package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letung3105/mlang/internal/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a file",
		Long: `Print one token per line. Standard input is read when the file is
omitted or "-". Tokens are printed up to the first lexical error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runTokens,
	}
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count := 0
	for tok, err := range lexer.New(src).All() {
		if err != nil {
			return a.fail(err)
		}
		fmt.Fprintln(out, tok.String())
		count++
	}
	a.logger.Debug("tokenized", "input", name, "tokens", count)
	return nil
}
