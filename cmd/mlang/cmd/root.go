// Package cmd holds the cobra commands of the mlang tool.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/letung3105/mlang/internal/config"
	"github.com/letung3105/mlang/internal/report"
)

// app carries the state shared by the commands
type app struct {
	cfgFile string
	verbose bool
	format  string
	single  bool

	config   *config.Config
	logger   *slog.Logger
	reporter report.Reporter
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "mlang",
		Short: "mlang - lexer and parser of the mlang language",
		Long: `mlang turns source text into tokens and expression trees.

Without a subcommand an interactive prompt is started.

Commands:
  tokens  - print the token stream of a file
  parse   - print the syntax tree of a file
  repl    - parse interactively`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runREPL,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $MLANG_CONFIG, ./mlang.toml, ~/.config/mlang/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.AddCommand(newTokensCmd(a), newParseCmd(a), newREPLCmd(a))
	return rootCmd, a
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	return run(newRootCmd())
}

// run executes rootCmd. Errors shown by the reporter end with the data error
// status, the others are printed here.
func run(rootCmd *cobra.Command, a *app) int {
	err := rootCmd.Execute()
	if a.reporter != nil && a.reporter.HadError() {
		return exitData
	}
	if err == nil {
		return 0
	}
	stderr := rootCmd.ErrOrStderr()
	var exit *exitError
	if errors.As(err, &exit) {
		fmt.Fprintf(stderr, "mlang: %v\n", exit.err)
		return exit.code
	}
	fmt.Fprintf(stderr, "mlang: %v\n", err)
	fmt.Fprintln(stderr, "Run 'mlang --help' for usage.")
	return exitUsage
}

// setup loads the configuration and builds the logger and the reporter
func (a *app) setup(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	a.logger = newLogger(stderr, a.verbose)

	var (
		cfg  *config.Config
		path string
		err  error
	)
	if a.cfgFile != "" {
		path = a.cfgFile
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.LoadFromEnv()
	}
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}
	if path == "" {
		a.logger.Debug("no config file found, using defaults")
	} else {
		a.logger.Debug("config loaded", "path", path)
	}

	a.config = cfg
	a.reporter = report.NewStyledReporter(stderr, colorMode(cfg.Output.Color))
	return nil
}

// fail reports a lexical or parse error and stops the command
func (a *app) fail(err error) error {
	a.reporter.Report(err)
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func colorMode(color string) report.ColorMode {
	switch color {
	case config.ColorAlways:
		return report.ColorAlways
	case config.ColorNever:
		return report.ColorNever
	default:
		return report.ColorAuto
	}
}

// readSource reads the file named by args, or standard input when it is
// omitted or "-"
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", &exitError{code: exitNoInput, err: fmt.Errorf("read stdin: %w", err)}
		}
		return "<stdin>", string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", &exitError{code: exitNoInput, err: err}
	}
	return args[0], string(b), nil
}
