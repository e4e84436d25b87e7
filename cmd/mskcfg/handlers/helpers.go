// Package handlers implements the execution logic behind the CLI commands.
//
// Handlers depend on the config and platform packages through small
// interfaces and factory function variables so tests can substitute fakes
// without touching AWS.
package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// printRow prints a single status line with a pass/fail indicator.
func printRow(name string, ok bool, extra string) {
	indicator := color.GreenString("ok  ")
	if !ok {
		indicator = color.RedString("FAIL")
	}

	if extra != "" {
		fmt.Printf("  %s  %-16s %s\n", indicator, name, extra)
	} else {
		fmt.Printf("  %s  %s\n", indicator, name)
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// setupColor disables color codes when stdout is not a terminal so piped
// output stays clean.
func setupColor() {
	if !isInteractiveTTY() {
		color.NoColor = true
	}
}
