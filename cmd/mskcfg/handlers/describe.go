package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/streamhaus/mskcfg/internal/platform/msk"
)

// clusterFinder is the MSK lookup surface used by describe.
type clusterFinder interface {
	FindCluster(ctx context.Context, name string) (*msk.ClusterInfo, error)
}

// newClusterFinder builds the MSK client - replaced in tests.
var newClusterFinder = func(ctx context.Context, region string) (clusterFinder, error) {
	return msk.NewClient(ctx, region)
}

// DescribeReport is the machine-readable shape emitted by describe --json.
type DescribeReport struct {
	Cluster   *msk.ClusterInfo `json:"cluster"`
	Compliant bool             `json:"compliant"`
	Issue     string           `json:"issue,omitempty"`
}

// Describe handles the describe command. The live cluster's settings are
// printed and re-checked against the pre-flight rule set.
func Describe(ctx context.Context, clusterName, region string, jsonOutput bool) error {
	setupColor()

	client, err := newClusterFinder(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to create MSK client: %w", err)
	}

	info, err := client.FindCluster(ctx, clusterName)
	if err != nil {
		return err
	}

	report := DescribeReport{Cluster: info, Compliant: true}
	if verr := info.ToClusterConfig().Validate(); verr != nil {
		report.Compliant = false
		report.Issue = verr.Error()
	}

	if jsonOutput {
		return printJSON(report)
	}

	printDescribe(report)
	return nil
}

// printDescribe prints the cluster metadata and compliance result.
func printDescribe(report DescribeReport) {
	info := report.Cluster

	fmt.Println()
	title := fmt.Sprintf("cluster: %s (%s)", info.Name, info.State)
	fmt.Printf("  %s\n", title)
	fmt.Println("  " + strings.Repeat("=", len(title)))
	fmt.Println()

	fmt.Printf("  ARN:           %s\n", info.ARN)
	fmt.Printf("  Type:          %s\n", info.ClusterType)
	fmt.Printf("  Kafka:         %s\n", info.KafkaVersion)
	fmt.Printf("  Brokers:       %d x %s\n", info.NumberOfBrokerNodes, info.InstanceType)
	fmt.Printf("  Storage:       %d GiB per broker\n", info.EBSVolumeSize)
	fmt.Printf("  Monitoring:    %s\n", info.MonitoringLevel)
	fmt.Printf("  Subnets:       %s\n", strings.Join(info.Subnets, ", "))
	if info.BootstrapBrokers != "" {
		fmt.Printf("  Bootstrap:     %s\n", info.BootstrapBrokers)
	}
	if !info.CreationTime.IsZero() {
		fmt.Printf("  Created:       %s\n", info.CreationTime.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Println()

	if report.Compliant {
		printRow("pre-flight rules", true, "current settings match the supported configuration set")
	} else {
		printRow("pre-flight rules", false, report.Issue)
	}
	fmt.Println()
}
