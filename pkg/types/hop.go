package types

import (
	"path/filepath"
)

// HopKind discriminates the two hop variants.
type HopKind int

const (
	// HopLink marks a hop whose Source is a symbolic link.
	HopLink HopKind = iota

	// HopTerminal marks a hop at which resolution stops: Source is not
	// a symlink, or some component of it does not exist.
	HopTerminal
)

// String returns the kind name for logging.
func (k HopKind) String() string {
	switch k {
	case HopLink:
		return "link"
	case HopTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Hop is one step of symlink resolution. Hops are constructed by the
// hop finder and never mutated afterwards.
type Hop struct {
	Kind HopKind

	// Source is the path up to and including the discovered link for
	// HopLink hops, and the full probed path for HopTerminal hops.
	Source string

	// Target is the raw link content exactly as stored on disk. It may
	// be relative, absolute, or dangling. Set for HopLink only.
	Target string

	// Suffix holds the path components after the link, in their
	// original order, rejoined as a path. Set for HopLink only; empty
	// when the link was the final component.
	Suffix string

	// Exists reports whether Source exists on disk. Meaningful for
	// HopTerminal hops only; a terminal hop for a dangling path has
	// Exists false.
	Exists bool
}

// IsLink reports whether this hop discovered a symlink.
func (h Hop) IsLink() bool {
	return h.Kind == HopLink
}

// Resolved computes the next path to probe. For a terminal hop this is
// the source itself. For a link hop the target is joined onto the
// parent directory of the source, then the suffix is appended when
// non-empty. An absolute target replaces the accumulator outright,
// mirroring native path-join behavior.
func (h Hop) Resolved() string {
	if h.Kind == HopTerminal {
		return h.Source
	}
	resolved := join(filepath.Dir(h.Source), h.Target)
	if h.Suffix != "" {
		resolved = join(resolved, h.Suffix)
	}
	return resolved
}

// join appends elem to base unless elem is absolute, in which case
// elem wins.
func join(base, elem string) string {
	if filepath.IsAbs(elem) {
		return elem
	}
	return filepath.Join(base, elem)
}
