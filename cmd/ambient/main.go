// Package main is the entry point for the ambient CLI.
//
// Usage:
//
//	ambient [flags] <command>
//
// Commands:
//
//	drone    - Render the microtonal B-flat drone to WAV
//	animate  - Show the generative shape animation
//	run      - Render the drone, then show the animation
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/Distortions81/ambient/cmd/ambient/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
