package main

import (
	"os"

	"github.com/tmlos/hpc-engine/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
