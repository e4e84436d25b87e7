package config

import "sort"

// AllowedKafkaVersions contains all broker software versions accepted for new
// clusters. Membership is checked case-sensitively against the exact string.
// https://docs.aws.amazon.com/msk/latest/developerguide/supported-kafka-versions.html
var AllowedKafkaVersions = map[string]bool{
	"2.2.1":   true,
	"2.3.1":   true,
	"2.4.1.1": true,
	"2.5.1":   true,
	"2.6.2":   true,
	"2.7.1":   true,
	"2.8.1":   true,
	"3.3.2":   true,
	"3.4.0":   true,
	"3.5.1":   true,
	"3.6.0":   true,
}

// AllowedInstanceTypes contains all broker instance sizes accepted for new
// clusters.
// https://docs.aws.amazon.com/msk/latest/developerguide/msk-create-cluster.html
var AllowedInstanceTypes = map[string]bool{
	"kafka.t3.small":    true,
	"kafka.m5.large":    true,
	"kafka.m5.xlarge":   true,
	"kafka.m5.2xlarge":  true,
	"kafka.m5.4xlarge":  true,
	"kafka.m5.8xlarge":  true,
	"kafka.m5.12xlarge": true,
	"kafka.m5.16xlarge": true,
	"kafka.m5.24xlarge": true,
	"kafka.m7g.large":   true,
	"kafka.m7g.xlarge":  true,
	"kafka.m7g.2xlarge": true,
	"kafka.m7g.4xlarge": true,
}

// AllowedMonitoringLevels contains the valid enhanced monitoring settings.
var AllowedMonitoringLevels = map[string]bool{
	"DEFAULT":                 true,
	"PER_BROKER":              true,
	"PER_TOPIC_PER_BROKER":    true,
	"PER_TOPIC_PER_PARTITION": true,
}

// Broker topology and storage bounds imposed by the managed service.
const (
	// MinBrokerSubnets and MaxBrokerSubnets bound the number of availability
	// zones a cluster may span.
	MinBrokerSubnets = 2
	MaxBrokerSubnets = 3

	// MinEBSVolumeSize and MaxEBSVolumeSize bound the per-broker storage
	// capacity in GiB.
	MinEBSVolumeSize = 1
	MaxEBSVolumeSize = 16384
)

// Defaults applied by ApplyDefaults when a field is unset.
const (
	DefaultKafkaVersion    = "2.8.1"
	DefaultInstanceType    = "kafka.m5.large"
	DefaultMonitoringLevel = "DEFAULT"
	DefaultEBSVolumeSize   = 1000
)

// sortedKeys returns the keys of an allow-list in sorted order for stable
// error messages and listings.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KafkaVersions returns the version allow-list in sorted order.
func KafkaVersions() []string {
	return sortedKeys(AllowedKafkaVersions)
}
