package main

import (
	"os"

	"github.com/rinstrell/vigenere/cmd"
)

func main() {
	// Every failure path (usage errors, -h, empty key) already printed
	// what the user needs to stderr; all that remains is the exit code.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
