// Package domain defines the core domain models for tasktrack.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. This package contains:
//
//   - Task: a trackable to-do item with id, title, status, and timestamps
//   - Timestamp: local-time, second-precision timestamp serialization
//   - Filter: task list filtering (open, done, all)
//   - Errors: domain-specific error definitions
package domain
