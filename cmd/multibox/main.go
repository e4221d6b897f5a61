package main

import (
	"os"

	"multibox/cmd/multibox/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
