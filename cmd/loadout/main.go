// Package main is the entry point for the loadout command line
package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
