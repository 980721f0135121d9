// Package jsonfile provides the file-backed task store.
//
// Tasks are persisted as a single pretty-printed JSON array. Every
// save rewrites the file in full; every load reads it in full. A
// missing file is an empty store. Unreadable content is silently
// recovered as an empty store, flagged on the load result.
//
// The file is a shared resource across invocations. There is no
// locking: concurrent invocations may lose updates or allocate
// duplicate ids. This is a documented limitation, not a bug.
package jsonfile
