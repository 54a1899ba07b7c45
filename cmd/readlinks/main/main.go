package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/readlinks/cmd/readlinks"
	"github.com/arthur-debert/readlinks/pkg/style"
	"github.com/arthur-debert/readlinks/pkg/ui"
)

func main() {
	rootCmd := readlinks.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Hops printed before a mid-resolution failure have already
		// been flushed to stdout; only the error goes to stderr.
		renderer := style.NewRenderer(ui.Resolve(ui.FormatAuto, os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.FormatError(err))
		os.Exit(1)
	}
}
