package commands

import (
	"github.com/spf13/cobra"

	"github.com/streamhaus/mskcfg/cmd/mskcfg/handlers"
)

// Validate returns the command for validating a cluster configuration file.
//
// The configuration is checked against the managed service's constraints:
// availability zone span, broker distribution, storage bounds, and the
// supported version, instance type, and monitoring level allow-lists.
// Validation is fail-fast; the first violated rule is reported and the
// command exits non-zero.
//
// Optional flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: mskcfg.yaml)
//	--json: Emit the validation report as JSON
func Validate() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a cluster configuration file",
		Long: `Validate a cluster configuration file.

This command loads the configuration, applies defaults, and checks it
against the managed service's constraints before anything is provisioned.

Examples:
  # Validate mskcfg.yaml in the current directory
  mskcfg validate

  # Validate a specific file
  mskcfg validate -c production.yaml

  # Machine-readable report
  mskcfg validate --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Validate(configPath, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "mskcfg.yaml", "Path to configuration file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the validation report as JSON")

	return cmd
}
