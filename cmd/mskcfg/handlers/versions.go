package handlers

import (
	"context"
	"fmt"

	"github.com/streamhaus/mskcfg/internal/config"
	"github.com/streamhaus/mskcfg/internal/platform/msk"
)

// versionLister is the MSK surface used by versions --remote.
type versionLister interface {
	SupportedVersions(ctx context.Context) ([]string, error)
}

// newVersionLister builds the MSK client - replaced in tests.
var newVersionLister = func(ctx context.Context, region string) (versionLister, error) {
	return msk.NewClient(ctx, region)
}

// Versions handles the versions command. Without remote, the local allow-list
// is printed. With remote, each allow-list entry is checked against the
// versions the service currently reports.
func Versions(ctx context.Context, region string, remote bool) error {
	setupColor()

	local := config.KafkaVersions()

	if !remote {
		fmt.Println()
		fmt.Println("  Supported Kafka versions:")
		for _, v := range local {
			fmt.Printf("    %s\n", v)
		}
		fmt.Println()
		return nil
	}

	client, err := newVersionLister(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to create MSK client: %w", err)
	}

	remoteVersions, err := client.SupportedVersions(ctx)
	if err != nil {
		return err
	}

	offered := make(map[string]bool, len(remoteVersions))
	for _, v := range remoteVersions {
		offered[v] = true
	}

	fmt.Println()
	fmt.Println("  Supported Kafka versions (cross-checked against the service):")
	stale := 0
	for _, v := range local {
		if offered[v] {
			printRow(v, true, "")
		} else {
			printRow(v, false, "no longer reported by the service")
			stale++
		}
	}
	fmt.Println()

	if stale > 0 {
		return fmt.Errorf("%d allow-list version(s) no longer offered by the service", stale)
	}
	return nil
}
