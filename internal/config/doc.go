// Package config defines the MSK cluster configuration model and its
// pre-flight validation rules.
//
// The [ClusterConfig] struct is the canonical representation of a proposed
// cluster: broker topology, instance sizing, storage, and monitoring level.
// It is loaded from a YAML file, defaulted, and validated against the managed
// service's constraints before any provisioning step consumes it. Validation
// is fail-fast and pure: the first violated rule is reported as a typed
// [ValidationError] and the input is never mutated.
package config
