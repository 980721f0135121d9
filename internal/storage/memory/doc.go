// Package memory provides an in-memory task store.
//
// It implements the same repository interface as the file-backed
// store and is used in tests to exercise the service and command
// layers without touching the filesystem.
package memory
