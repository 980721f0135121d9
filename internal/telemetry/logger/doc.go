// Package logger provides structured logging for tasktrack.
//
// It wraps the standard library log/slog. The CLI logs to stderr in
// text format and stays at warn level unless verbose mode lowers it,
// so command output on stdout is never mixed with diagnostics.
package logger
