package types

import (
	"io/fs"
)

// FS is the read-only filesystem surface readlinks needs. Resolution
// never writes and never follows a link itself, so two calls cover it:
// metadata without following, and the raw link content. Terminal
// existence falls out of the prefix scan's Lstat outcomes.
type FS interface {
	// Lstat must not follow a trailing symlink: the probe has to tell
	// a link apart from whatever it points at.
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the literal link content, uninterpreted.
	Readlink(name string) (string, error)
}
