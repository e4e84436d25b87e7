package config

// ClusterConfig holds the proposed MSK cluster configuration.
//
// All fields are plain values so a validated config can be passed around and
// serialized without further interpretation. The struct is never mutated by
// validation; ApplyDefaults is the only method that writes to it.
type ClusterConfig struct {
	ClusterName string `mapstructure:"cluster_name" yaml:"cluster_name"`

	// KafkaVersion is the broker software version, e.g. "2.8.1".
	// Must be a member of AllowedKafkaVersions (case-sensitive, exact match).
	KafkaVersion string `mapstructure:"kafka_version" yaml:"kafka_version"`

	// NumberOfBrokerNodes is the total broker count across all zones.
	// Must be positive and an exact multiple of the subnet count so that
	// brokers distribute evenly over availability zones.
	NumberOfBrokerNodes int `mapstructure:"number_of_broker_nodes" yaml:"number_of_broker_nodes"`

	// BrokerInstanceType is the compute size for every broker,
	// e.g. "kafka.m5.large". Must be a member of AllowedInstanceTypes.
	BrokerInstanceType string `mapstructure:"broker_instance_type" yaml:"broker_instance_type"`

	// MonitoringLevel selects the enhanced monitoring granularity.
	// Must be a member of AllowedMonitoringLevels.
	MonitoringLevel string `mapstructure:"monitoring_level" yaml:"monitoring_level"`

	// EBSVolumeSize is the per-broker storage capacity in GiB,
	// within [MinEBSVolumeSize, MaxEBSVolumeSize].
	EBSVolumeSize int `mapstructure:"ebs_volume_size" yaml:"ebs_volume_size"`

	// BrokerVPCID is the VPC the brokers are placed in. Treated as an
	// opaque identifier; no format validation is applied.
	BrokerVPCID string `mapstructure:"broker_vpc_id" yaml:"broker_vpc_id"`

	// BrokerSubnets lists the client subnets, one per availability zone.
	// The cluster must span 2 or 3 zones. Entries are opaque identifiers.
	BrokerSubnets []string `mapstructure:"broker_subnets" yaml:"broker_subnets"`
}
