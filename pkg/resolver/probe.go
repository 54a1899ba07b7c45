package resolver

import (
	"os"

	"github.com/arthur-debert/readlinks/pkg/logging"
	"github.com/arthur-debert/readlinks/pkg/types"
)

// LinkStatus is the probe's answer for a single path.
type LinkStatus struct {
	// IsLink reports whether the path itself is a symbolic link.
	IsLink bool

	// Target is the literal link content as stored on disk, set only
	// when IsLink is true. It may be relative, absolute, or dangling.
	Target string
}

// Probe checks whether path is itself a symbolic link and, if so,
// reads its raw target. The trailing link is never followed, so a link
// is always distinguished from whatever it points at.
//
// Errors, including fs.ErrNotExist, propagate untouched: the caller
// needs to tell absence apart from other failures.
func Probe(fsys types.FS, path string) (LinkStatus, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return LinkStatus{}, err
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return LinkStatus{}, nil
	}

	target, err := fsys.Readlink(path)
	if err != nil {
		return LinkStatus{}, err
	}

	logger := logging.GetLogger("resolver.probe")
	logger.Trace().Str("path", path).Str("target", target).Msg("Path is a link")

	return LinkStatus{IsLink: true, Target: target}, nil
}
