package msk

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kafka"
	"github.com/aws/aws-sdk-go-v2/service/kafka/types"

	"github.com/streamhaus/mskcfg/internal/config"
	"github.com/streamhaus/mskcfg/internal/util/retry"
)

// ErrClusterNotFound is returned when no cluster matches the requested name.
var ErrClusterNotFound = errors.New("cluster not found")

// api is the subset of the MSK control-plane API used by the client.
type api interface {
	ListClustersV2(ctx context.Context, params *kafka.ListClustersV2Input, optFns ...func(*kafka.Options)) (*kafka.ListClustersV2Output, error)
	GetBootstrapBrokers(ctx context.Context, params *kafka.GetBootstrapBrokersInput, optFns ...func(*kafka.Options)) (*kafka.GetBootstrapBrokersOutput, error)
	ListKafkaVersions(ctx context.Context, params *kafka.ListKafkaVersionsInput, optFns ...func(*kafka.Options)) (*kafka.ListKafkaVersionsOutput, error)
}

// Client wraps the MSK control-plane API.
type Client struct {
	kafka     api
	retryOpts []retry.Option
}

// NewClient creates a client using the default AWS credential chain. An empty
// region falls back to the environment's default region.
func NewClient(ctx context.Context, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{kafka: kafka.NewFromConfig(cfg)}, nil
}

// ClusterInfo holds the metadata of an existing cluster relevant to
// pre-flight checks.
type ClusterInfo struct {
	Name                string
	ARN                 string
	State               string
	ClusterType         string
	KafkaVersion        string
	NumberOfBrokerNodes int
	InstanceType        string
	EBSVolumeSize       int
	MonitoringLevel     string
	Subnets             []string
	BootstrapBrokers    string
	CreationTime        time.Time
}

// ToClusterConfig maps the live cluster metadata onto the configuration model
// so the same validation rules can be re-checked against a running cluster.
// The VPC is not part of the list response and is left empty.
func (i *ClusterInfo) ToClusterConfig() *config.ClusterConfig {
	return &config.ClusterConfig{
		ClusterName:         i.Name,
		KafkaVersion:        i.KafkaVersion,
		NumberOfBrokerNodes: i.NumberOfBrokerNodes,
		BrokerInstanceType:  i.InstanceType,
		MonitoringLevel:     i.MonitoringLevel,
		EBSVolumeSize:       i.EBSVolumeSize,
		BrokerSubnets:       i.Subnets,
	}
}

// FindCluster resolves a provisioned cluster by exact name. Returns
// ErrClusterNotFound when no cluster with that name exists in the region.
func (c *Client) FindCluster(ctx context.Context, name string) (*ClusterInfo, error) {
	var match *types.Cluster

	var nextToken *string
	for {
		var out *kafka.ListClustersV2Output
		err := retry.Do(ctx, func() error {
			var listErr error
			out, listErr = c.kafka.ListClustersV2(ctx, &kafka.ListClustersV2Input{
				ClusterNameFilter: aws.String(name),
				NextToken:         nextToken,
			})
			return listErr
		}, c.retryOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to list clusters: %w", err)
		}

		for idx := range out.ClusterInfoList {
			// The name filter matches prefixes; require an exact match.
			if aws.ToString(out.ClusterInfoList[idx].ClusterName) == name {
				match = &out.ClusterInfoList[idx]
				break
			}
		}
		if match != nil || out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrClusterNotFound, name)
	}

	info := &ClusterInfo{
		Name:        aws.ToString(match.ClusterName),
		ARN:         aws.ToString(match.ClusterArn),
		State:       string(match.State),
		ClusterType: string(match.ClusterType),
	}
	if match.CreationTime != nil {
		info.CreationTime = *match.CreationTime
	}

	if p := match.Provisioned; p != nil {
		info.NumberOfBrokerNodes = int(aws.ToInt32(p.NumberOfBrokerNodes))
		info.MonitoringLevel = string(p.EnhancedMonitoring)
		if p.CurrentBrokerSoftwareInfo != nil {
			info.KafkaVersion = aws.ToString(p.CurrentBrokerSoftwareInfo.KafkaVersion)
		}
		if bng := p.BrokerNodeGroupInfo; bng != nil {
			info.InstanceType = aws.ToString(bng.InstanceType)
			info.Subnets = bng.ClientSubnets
			if bng.StorageInfo != nil && bng.StorageInfo.EbsStorageInfo != nil {
				info.EBSVolumeSize = int(aws.ToInt32(bng.StorageInfo.EbsStorageInfo.VolumeSize))
			}
		}
	}

	// Bootstrap brokers are only available once the cluster is active;
	// treat failures here as "not yet available" rather than fatal.
	if brokers, err := c.kafka.GetBootstrapBrokers(ctx, &kafka.GetBootstrapBrokersInput{
		ClusterArn: match.ClusterArn,
	}); err == nil {
		info.BootstrapBrokers = firstNonEmpty(
			aws.ToString(brokers.BootstrapBrokerStringSaslIam),
			aws.ToString(brokers.BootstrapBrokerStringTls),
			aws.ToString(brokers.BootstrapBrokerString),
		)
	}

	return info, nil
}

// SupportedVersions returns the Kafka versions the service currently reports
// as available, sorted.
func (c *Client) SupportedVersions(ctx context.Context) ([]string, error) {
	var versions []string

	var nextToken *string
	for {
		var out *kafka.ListKafkaVersionsOutput
		err := retry.Do(ctx, func() error {
			var listErr error
			out, listErr = c.kafka.ListKafkaVersions(ctx, &kafka.ListKafkaVersionsInput{
				NextToken: nextToken,
			})
			return listErr
		}, c.retryOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to list kafka versions: %w", err)
		}

		for _, v := range out.KafkaVersions {
			if v.Version != nil {
				versions = append(versions, *v.Version)
			}
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	sort.Strings(versions)
	return versions, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
