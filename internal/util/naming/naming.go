// Package naming provides consistent S3 key naming for published
// configuration snapshots.
//
// Snapshots live under snapshots/{cluster}/; each publish writes a
// timestamped key and overwrites the latest pointer so a downstream pipeline
// can fetch either a specific revision or the current one.
package naming

import (
	"fmt"
	"time"
)

// SnapshotKey returns the S3 key for a config snapshot published at t.
func SnapshotKey(cluster string, t time.Time) string {
	return fmt.Sprintf("snapshots/%s/%s.yaml", cluster, t.UTC().Format("20060102T150405Z"))
}

// LatestKey returns the S3 key holding the most recently published snapshot.
func LatestKey(cluster string) string {
	return fmt.Sprintf("snapshots/%s/latest.yaml", cluster)
}

// SnapshotPrefix returns the key prefix under which all of a cluster's
// snapshots are stored.
func SnapshotPrefix(cluster string) string {
	return fmt.Sprintf("snapshots/%s/", cluster)
}
