package config

// ApplyDefaults fills unset optional fields with sensible defaults. Broker
// topology (subnets, broker count, VPC) is deliberately left alone: those are
// deployment decisions the operator must make explicitly.
func (c *ClusterConfig) ApplyDefaults() {
	if c.KafkaVersion == "" {
		c.KafkaVersion = DefaultKafkaVersion
	}
	if c.BrokerInstanceType == "" {
		c.BrokerInstanceType = DefaultInstanceType
	}
	if c.MonitoringLevel == "" {
		c.MonitoringLevel = DefaultMonitoringLevel
	}
	if c.EBSVolumeSize == 0 {
		c.EBSVolumeSize = DefaultEBSVolumeSize
	}
}
