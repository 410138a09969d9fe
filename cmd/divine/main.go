package main

import (
	"os"

	"divination/cmd/divine/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
