package commands

import (
	"github.com/spf13/cobra"

	"github.com/streamhaus/mskcfg/cmd/mskcfg/handlers"
)

// Init returns the command for creating a starter cluster configuration.
//
// Flags:
//
//	--output, -o: Path to output file (default "mskcfg.yaml")
//	--force: Overwrite an existing file
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter cluster configuration",
		Long: `Create a starter cluster configuration file.

The generated file passes validation as written except for the VPC and
subnet placeholders, which must be replaced with real identifiers from
your network.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "mskcfg.yaml", "Output file path")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
