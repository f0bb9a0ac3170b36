package main

import (
	"os"

	"github.com/skint-dev/skint/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
