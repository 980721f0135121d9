// Package config provides CLI configuration for tasktrack.
//
// Configuration is resolved with priority flag > env > file > default:
//
//   - spec.go: Config struct (~/.tasktrack/config.yaml)
//   - loader.go: loading and merging via confloader
//
// The task store location is an explicit configuration value passed
// into the storage layer, never an ambient path computation, so the
// core logic can be tested against any path.
package config
