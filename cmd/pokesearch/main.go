package main

import (
	"fmt"
	"os"

	"github.com/poketools/pokesearch/internal/cli"
	"github.com/poketools/pokesearch/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the root command. It exists separately from main so the
// exit-code mapping stays trivially testable.
func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}
