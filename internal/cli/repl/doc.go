// Package repl provides interactive mode for the tasktrack CLI.
//
// This package implements the Read-Eval-Print Loop for interactive sessions:
//
//   - repl.go: Main REPL loop and command dispatch
//   - completer.go: Completion suggestions for commands
//   - history.go: Command history persistence
//
// The loop dispatches the same task operations as the one-shot CLI
// commands, so a session of "add", "list", "done" and "delete" lines
// reads and writes the same task file.
package repl
