// Package types defines the core types shared across readlinks:
// the Hop emitted by each resolution step and the filesystem
// interface the probing code reads through.
package types
