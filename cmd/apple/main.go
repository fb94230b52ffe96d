package main

import (
	"os"

	"apple/cmd/apple/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
