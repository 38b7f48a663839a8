package main

// This is the command line front end of the mlang language: it prints the
// tokens or the syntax tree of a source file, or parses interactively.

import (
	"os"

	"github.com/letung3105/mlang/cmd/mlang/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
