// Package output provides output formatting for tasktrack.
//
// The default plain format prints the single-line task messages the
// tool is known for. Table, JSON, and YAML formatters render task
// lists for scripting and inspection.
package output
