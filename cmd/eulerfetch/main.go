// Package main is the entry point for the eulerfetch CLI.
package main

import (
	"os"

	"github.com/eulerfetch/eulerfetch/cmd/eulerfetch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
