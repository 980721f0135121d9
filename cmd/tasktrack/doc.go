// Package main provides the entry point for tasktrack.
//
// The CLI tool manages a personal task list stored in a JSON file:
//
//   - Adding tasks (add)
//   - Listing tasks by status (list, list --done, list --all)
//   - Completing tasks (done)
//   - Deleting tasks (delete)
//   - Configuration management (config show, config path)
//
// Usage:
//
//	tasktrack [command] [flags]
//	tasktrack add "Buy milk"
//	tasktrack list --all --output json
//
// The CLI supports both single-command mode and interactive REPL mode.
package main
