package main

import (
	"os"

	"github.com/reoring/gonml/cmd/gonml/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
