package commands

import (
	"github.com/spf13/cobra"

	"github.com/streamhaus/mskcfg/cmd/mskcfg/handlers"
)

// Versions returns the command for listing supported Kafka versions.
//
// By default the local allow-list is printed. With --remote, the list is
// cross-checked against the versions the service currently reports, flagging
// allow-list entries the service no longer offers.
func Versions() *cobra.Command {
	var (
		region string
		remote bool
	)

	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List supported Kafka versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Versions(cmd.Context(), region, remote)
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "AWS region (default: environment/profile region)")
	cmd.Flags().BoolVar(&remote, "remote", false, "Cross-check the allow-list against the live service")

	return cmd
}
