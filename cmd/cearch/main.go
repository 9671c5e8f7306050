package main

import (
	"fmt"
	"os"

	"github.com/cearch/cearch/cmd/cearch/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		// setup failures are fatal: one message, exit code 2. Per-file and
		// per-symbol indexing failures never reach here; they are logged as
		// warnings and do not affect the exit code.
		fmt.Fprintf(os.Stderr, "cearch: %v\n", err)
		os.Exit(2)
	}
}
