package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/letung3105/mlang/internal/lexer"
	"github.com/letung3105/mlang/internal/parser"
)

// lineReader is the part of *liner.State used by the prompt loop
type lineReader interface {
	Prompt(prompt string) (string, error)
}

func newREPLCmd(a *app) *cobra.Command {
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively",
		Long: `Read expressions line by line and print their trees. An incomplete
input asks for a continuation line, an empty continuation line submits it.
Type :quit or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: a.runREPL,
	}
	replCmd.Flags().StringVarP(&a.format, "format", "f", "", "output format: sexpr or yaml (default from config)")
	return replCmd
}

func (a *app) runREPL(cmd *cobra.Command, args []string) error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := a.config.HistoryFile()
	if f, err := os.Open(history); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		f, err := os.Create(history)
		if err != nil {
			a.logger.Debug("history not saved", "path", history, "err", err)
			return
		}
		defer f.Close()
		if _, err := ln.WriteHistory(f); err != nil {
			a.logger.Debug("history not saved", "path", history, "err", err)
		}
	}()

	a.repl(ln, cmd.OutOrStdout(), format, func(entry string) {
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
	})
	return nil
}

// repl parses every entry read from lines and prints the trees to out. Errors
// are reported and the loop goes on.
func (a *app) repl(lines lineReader, out io.Writer, format string, remember func(string)) {
	for {
		src, ok := readEntry(lines, a.config.REPL.Prompt, a.config.REPL.ContinuationPrompt)
		if !ok {
			fmt.Fprintln(out)
			return
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit", ":q":
			return
		}
		remember(src)

		exprs, err := parser.ParseFile(src)
		if err == nil {
			err = render(out, format, exprs)
		}
		if err != nil {
			a.reporter.Report(err)
		}
		a.reporter.Reset()
	}
}

// readEntry reads lines until they form a complete input. It reports false
// once the input is exhausted.
func readEntry(lines lineReader, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := lines.Prompt(p)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			// aborted, the pending lines are dropped
			return "", true
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !incomplete(b.String()) {
			return b.String(), true
		}
	}
}

// incomplete reports whether src could become valid with more lines
func incomplete(src string) bool {
	_, err := parser.ParseFile(src)
	var unterminated *lexer.UnterminatedStringError
	return errors.Is(err, parser.ErrUnexpectedEOF) || errors.As(err, &unterminated)
}
