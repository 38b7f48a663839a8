// Package report displays the errors of the front end to the user.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

var errorColor = lipgloss.Color("#EF4444")

// SimpleReporter writes error as-is to inner writer, one per line
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
	label  *lipgloss.Style
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

// ColorMode selects whether a styled reporter emits colors
type ColorMode int

const (
	// ColorAuto emits colors when the writer is a terminal
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// NewStyledReporter prefixes every error with a colored label
func NewStyledReporter(writer io.Writer, mode ColorMode) *SimpleReporter {
	renderer := lipgloss.NewRenderer(writer)
	switch mode {
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	}
	label := renderer.NewStyle().Foreground(errorColor).Bold(true)
	return &SimpleReporter{writer: writer, label: &label}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	if reporter.label == nil {
		fmt.Fprintln(reporter.writer, err)
		return
	}
	fmt.Fprintf(reporter.writer, "%s %v\n", reporter.label.Render("error:"), err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
