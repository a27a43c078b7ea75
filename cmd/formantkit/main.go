// Package main provides the formantkit CLI.
//
// Usage:
//
//	formantkit [flags] <command> [args]
//
// Commands:
//
//	formants  - extract formant frequencies from every recording in a directory
//	mono      - convert recordings to mono WAV files
//	amplitude - plot the waveform of a single recording
//	version   - show version information
//
// Configuration:
//
//	Settings are read from formantkit.yaml in the working directory when
//	it exists (override the location with --config). Command-line flags
//	take precedence over the config file.
package main

import (
	"fmt"
	"os"

	"github.com/phonlab/formantkit/cmd/formantkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
