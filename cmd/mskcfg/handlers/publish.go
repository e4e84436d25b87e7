package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/streamhaus/mskcfg/internal/config"
	s3platform "github.com/streamhaus/mskcfg/internal/platform/s3"
)

// snapshotStore is the S3 surface used by publish.
type snapshotStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	PublishSnapshot(ctx context.Context, bucket string, cfg *config.ClusterConfig, at time.Time) (string, error)
}

// Factory function variables for publish - replaced in tests.
var (
	newSnapshotStore = func(ctx context.Context, region string) (snapshotStore, error) {
		return s3platform.NewClient(ctx, region)
	}

	timeNow = time.Now
)

// Publish handles the publish command. The configuration is validated by the
// loader; an invalid config is never uploaded.
func Publish(ctx context.Context, configPath, bucket, region string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := newSnapshotStore(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist or is not accessible", bucket)
	}

	key, err := store.PublishSnapshot(ctx, bucket, cfg, timeNow())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Published snapshot for cluster %q\n", cfg.ClusterName)
	fmt.Printf("    s3://%s/%s\n", bucket, key)
	fmt.Println()
	return nil
}
