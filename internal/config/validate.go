package config

import "strings"

// Validate checks the configuration against the managed service's
// constraints. Checks run in a fixed order and the first failure is returned
// as a *ValidationError; a config violating several rules at once always
// reports the earliest one. The receiver is never mutated, so the caller may
// still inspect the original values after a failure.
func (c *ClusterConfig) Validate() error {
	subnetCount := len(c.BrokerSubnets)
	if subnetCount < MinBrokerSubnets || subnetCount > MaxBrokerSubnets {
		return newValidationError(SubnetCountOutOfRange, "broker_subnets", subnetCount,
			"broker subnet count %d out of range [%d, %d]: the cluster must span 2 or 3 availability zones",
			subnetCount, MinBrokerSubnets, MaxBrokerSubnets)
	}

	if c.NumberOfBrokerNodes <= 0 {
		return newValidationError(NonPositiveBrokerCount, "number_of_broker_nodes", c.NumberOfBrokerNodes,
			"number_of_broker_nodes must be positive, got %d", c.NumberOfBrokerNodes)
	}

	if c.NumberOfBrokerNodes%subnetCount != 0 {
		return newValidationError(BrokerCountNotMultipleOfSubnets, "number_of_broker_nodes", c.NumberOfBrokerNodes,
			"number_of_broker_nodes %d must be a multiple of the subnet count %d so brokers distribute evenly across zones",
			c.NumberOfBrokerNodes, subnetCount)
	}

	if c.EBSVolumeSize < MinEBSVolumeSize || c.EBSVolumeSize > MaxEBSVolumeSize {
		return newValidationError(VolumeSizeOutOfRange, "ebs_volume_size", c.EBSVolumeSize,
			"ebs_volume_size %d GiB out of range [%d, %d]",
			c.EBSVolumeSize, MinEBSVolumeSize, MaxEBSVolumeSize)
	}

	if !AllowedKafkaVersions[c.KafkaVersion] {
		return newValidationError(UnknownKafkaVersion, "kafka_version", c.KafkaVersion,
			"unsupported kafka_version %q: must be one of %s",
			c.KafkaVersion, strings.Join(sortedKeys(AllowedKafkaVersions), ", "))
	}

	if !AllowedInstanceTypes[c.BrokerInstanceType] {
		return newValidationError(UnknownInstanceType, "broker_instance_type", c.BrokerInstanceType,
			"unsupported broker_instance_type %q: must be one of %s",
			c.BrokerInstanceType, strings.Join(sortedKeys(AllowedInstanceTypes), ", "))
	}

	if !AllowedMonitoringLevels[c.MonitoringLevel] {
		return newValidationError(UnknownMonitoringLevel, "monitoring_level", c.MonitoringLevel,
			"unsupported monitoring_level %q: must be one of %s",
			c.MonitoringLevel, strings.Join(sortedKeys(AllowedMonitoringLevels), ", "))
	}

	return nil
}

// BrokersPerZone returns how many brokers land in each availability zone.
// Only meaningful on a validated config, where the broker count is a positive
// multiple of the subnet count. Returns 0 when no subnets are configured.
func (c *ClusterConfig) BrokersPerZone() int {
	if len(c.BrokerSubnets) == 0 {
		return 0
	}
	return c.NumberOfBrokerNodes / len(c.BrokerSubnets)
}
