// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the mskcfg CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mskcfg",
		Short: "Pre-flight validation for Amazon MSK cluster configurations",
	}

	// Core commands
	cmd.AddCommand(Validate())
	cmd.AddCommand(Init())
	cmd.AddCommand(Describe())
	cmd.AddCommand(Versions())
	cmd.AddCommand(Publish())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
