// Package msk wraps the MSK control-plane API for cluster metadata lookups.
//
// The [Client] resolves a cluster by name and returns the subset of its
// metadata that matters for pre-flight checks: broker topology, instance
// sizing, storage, monitoring level, and bootstrap brokers. It also reports
// the Kafka versions the service currently supports, used to cross-check the
// local allow-list.
package msk
