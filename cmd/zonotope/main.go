// Package main is the entry point for the zonotope CLI.
//
// Usage:
//
//	zonotope [flags] <command> [args]
//
// Commands:
//
//	volume      - exact volume of the zonotope spanned by a generator file
//	halfspaces  - facet inequalities of that zonotope
//	cache       - result cache maintenance (clear)
//	version     - show version information
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/zonotope/cmd/zonotope/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
