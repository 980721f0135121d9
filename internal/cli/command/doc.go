// Package command provides CLI command definitions for tasktrack.
//
// It uses urfave/cli/v2 for command parsing. Each invocation loads
// the task store, applies one operation, and persists the store when
// it was mutated. Informational outcomes ("not found", "already
// done") print a message and exit zero; only argument and filesystem
// failures exit non-zero.
package command
