package main

import (
	"os"

	"jsexpr/cmd/jsexpr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
