package commands

import (
	"github.com/spf13/cobra"

	"github.com/streamhaus/mskcfg/cmd/mskcfg/handlers"
)

// Publish returns the command for publishing a validated configuration
// snapshot to S3.
//
// The configuration is validated first; a failing config is never uploaded.
// Each publish writes a timestamped revision plus a latest pointer under
// snapshots/{cluster}/ in the target bucket.
//
// Flags:
//
//	--config, -c: Path to cluster configuration YAML file (default: mskcfg.yaml)
//	--bucket: Target S3 bucket (required)
//	--region: AWS region (default: environment/profile region)
func Publish() *cobra.Command {
	var (
		configPath string
		bucket     string
		region     string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a validated configuration snapshot to S3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Publish(cmd.Context(), configPath, bucket, region)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "mskcfg.yaml", "Path to configuration file")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Target S3 bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default: environment/profile region)")
	_ = cmd.MarkFlagRequired("bucket")

	return cmd
}
