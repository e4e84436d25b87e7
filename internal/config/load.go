package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a cluster configuration from a YAML file, applies defaults,
// and validates it. The returned config is ready for downstream consumers.
func LoadFile(path string) (*ClusterConfig, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg ClusterConfig
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// WriteFile serializes the configuration to a YAML file.
func WriteFile(cfg *ClusterConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns a starter configuration for mskcfg init. The subnet
// and VPC identifiers are placeholders the operator must replace; everything
// else passes validation as written.
func DefaultConfig() *ClusterConfig {
	return &ClusterConfig{
		ClusterName:         "example",
		KafkaVersion:        DefaultKafkaVersion,
		NumberOfBrokerNodes: 4,
		BrokerInstanceType:  DefaultInstanceType,
		MonitoringLevel:     DefaultMonitoringLevel,
		EBSVolumeSize:       DefaultEBSVolumeSize,
		BrokerVPCID:         "vpc-REPLACE_ME",
		BrokerSubnets:       []string{"subnet-REPLACE_ME-a", "subnet-REPLACE_ME-b"},
	}
}
