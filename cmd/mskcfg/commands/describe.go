package commands

import (
	"github.com/spf13/cobra"

	"github.com/streamhaus/mskcfg/cmd/mskcfg/handlers"
)

// Describe returns the command for inspecting a live cluster's metadata.
//
// The cluster is resolved by name in the configured region. Its current
// settings are printed and re-checked against the same rule set used for
// configuration files, so drift from the supported values is visible.
//
// Flags:
//
//	--region: AWS region (default: environment/profile region)
//	--json: Emit the cluster metadata as JSON
func Describe() *cobra.Command {
	var (
		region     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "describe <cluster-name>",
		Short: "Show a live cluster's configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Describe(cmd.Context(), args[0], region, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region (default: environment/profile region)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the cluster metadata as JSON")

	return cmd
}
