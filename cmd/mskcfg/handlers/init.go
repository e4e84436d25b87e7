package handlers

import (
	"fmt"
	"os"

	"github.com/streamhaus/mskcfg/internal/config"
)

// Factory function variables for init - replaced in tests.
var (
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	writeConfig = config.WriteFile
)

// Init writes a starter cluster configuration to outputPath. An existing file
// is only overwritten with force.
func Init(outputPath string, force bool) error {
	if fileExists(outputPath) && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", outputPath)
	}

	cfg := config.DefaultConfig()
	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printInitSuccess prints the starter config summary and next steps.
func printInitSuccess(outputPath string, cfg *config.ClusterConfig) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Cluster Summary")
	fmt.Println("---------------")
	fmt.Printf("  Name:          %s\n", cfg.ClusterName)
	fmt.Printf("  Kafka:         %s\n", cfg.KafkaVersion)
	fmt.Printf("  Brokers:       %d x %s\n", cfg.NumberOfBrokerNodes, cfg.BrokerInstanceType)
	fmt.Printf("  Storage:       %d GiB per broker\n", cfg.EBSVolumeSize)
	fmt.Printf("  Monitoring:    %s\n", cfg.MonitoringLevel)
	fmt.Println()

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Replace the VPC and subnet placeholders in %s\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Validate the configuration:")
	fmt.Println("     mskcfg validate")
	fmt.Println()
	fmt.Println("  3. Publish it for your provisioning pipeline:")
	fmt.Println("     mskcfg publish --bucket <your-bucket>")
	fmt.Println()
}
