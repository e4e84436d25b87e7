package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/streamhaus/mskcfg/internal/config"
)

// loadConfig loads a cluster configuration file - replaced in tests.
var loadConfig = config.LoadFile

// ValidationReport is the machine-readable shape emitted by validate --json.
type ValidationReport struct {
	File           string                `json:"file"`
	Valid          bool                  `json:"valid"`
	Kind           string                `json:"kind,omitempty"`
	Field          string                `json:"field,omitempty"`
	Message        string                `json:"message,omitempty"`
	Config         *config.ClusterConfig `json:"config,omitempty"`
	BrokersPerZone int                   `json:"brokersPerZone,omitempty"`
}

// Validate handles the validate command. The validator's error message is
// propagated unchanged so callers and CI pipelines can match on it.
func Validate(configPath string, jsonOutput bool) error {
	setupColor()

	cfg, err := loadConfig(configPath)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			report := ValidationReport{
				File:    configPath,
				Valid:   false,
				Kind:    string(verr.Kind),
				Field:   verr.Field,
				Message: verr.Error(),
			}
			if jsonOutput {
				if jsonErr := printJSON(report); jsonErr != nil {
					return jsonErr
				}
			} else {
				fmt.Println()
				printRow(verr.Field, false, verr.Error())
				fmt.Println()
			}
			return err
		}
		return err
	}

	if jsonOutput {
		return printJSON(ValidationReport{
			File:           configPath,
			Valid:          true,
			Config:         cfg,
			BrokersPerZone: cfg.BrokersPerZone(),
		})
	}

	printValidSummary(configPath, cfg)
	return nil
}

// printValidSummary prints the validated settings as a status table.
func printValidSummary(path string, cfg *config.ClusterConfig) {
	fmt.Println()
	fmt.Printf("  %s: configuration is valid\n", path)
	fmt.Println()
	printRow("cluster", true, cfg.ClusterName)
	printRow("kafka version", true, cfg.KafkaVersion)
	printRow("brokers", true, fmt.Sprintf("%d x %s (%d per zone)",
		cfg.NumberOfBrokerNodes, cfg.BrokerInstanceType, cfg.BrokersPerZone()))
	printRow("storage", true, fmt.Sprintf("%d GiB per broker", cfg.EBSVolumeSize))
	printRow("monitoring", true, cfg.MonitoringLevel)
	printRow("subnets", true, strings.Join(cfg.BrokerSubnets, ", "))
	fmt.Println()
}
