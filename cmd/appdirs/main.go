// Package main is the entry point for the appdirs CLI.
package main

import (
	"os"

	"github.com/thoreinstein/appdirs/cmd/appdirs/commands"
)

func main() {
	os.Exit(commands.Execute())
}
