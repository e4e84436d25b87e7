// Package main is the entry point for the mskcfg CLI.
//
// mskcfg is a command-line pre-flight tool for Amazon MSK cluster
// configurations. It validates a proposed cluster configuration against the
// managed service's constraints before any infrastructure is provisioned,
// inspects live clusters, and publishes validated configuration snapshots
// for downstream provisioning pipelines.
//
// Commands: validate, init, describe, versions, publish.
//
// For detailed usage information, run:
//
//	mskcfg --help
package main

import (
	"fmt"
	"os"

	"github.com/streamhaus/mskcfg/cmd/mskcfg/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
