package s3

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/streamhaus/mskcfg/internal/config"
	"github.com/streamhaus/mskcfg/internal/util/naming"
)

// PublishSnapshot uploads a configuration snapshot for cfg's cluster and
// updates the latest pointer. The caller is responsible for validating cfg
// first. Returns the timestamped key the snapshot was written to.
func (c *Client) PublishSnapshot(ctx context.Context, bucket string, cfg *config.ClusterConfig, at time.Time) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := naming.SnapshotKey(cfg.ClusterName, at)
	if err := c.PutObject(ctx, bucket, key, data); err != nil {
		return "", err
	}
	if err := c.PutObject(ctx, bucket, naming.LatestKey(cfg.ClusterName), data); err != nil {
		return "", err
	}

	return key, nil
}

// LatestSnapshot fetches and decodes the most recently published snapshot for
// the cluster.
func (c *Client) LatestSnapshot(ctx context.Context, bucket, cluster string) (*config.ClusterConfig, error) {
	data, err := c.GetObject(ctx, bucket, naming.LatestKey(cluster))
	if err != nil {
		return nil, err
	}

	var cfg config.ClusterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &cfg, nil
}

// ListSnapshots returns the keys of all snapshots published for the cluster.
func (c *Client) ListSnapshots(ctx context.Context, bucket, cluster string) ([]string, error) {
	return c.ListObjects(ctx, bucket, naming.SnapshotPrefix(cluster))
}
