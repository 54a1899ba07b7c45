// Package testutil provides utilities for testing readlinks components.
//
// MemoryFS is an in-memory types.FS implementation with explicit
// symlink nodes and per-path error injection, so resolution tests run
// fast, isolated, and without creating real symlinks on disk. All test
// data should be defined inline, not in external files, and each test
// should be completely isolated with no shared state.
package testutil
