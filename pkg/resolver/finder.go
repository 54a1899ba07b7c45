package resolver

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/readlinks/pkg/errors"
	"github.com/arthur-debert/readlinks/pkg/logging"
	"github.com/arthur-debert/readlinks/pkg/paths"
	"github.com/arthur-debert/readlinks/pkg/types"
)

// FindFirstLink scans path left to right, probing each prefix, and
// returns a link hop for the first symlink component found. The hop's
// suffix carries the components not yet consumed, in original order.
// When no component is a link, the full path comes back as a terminal
// hop.
//
// Absence is terminal, not an error: when some prefix does not exist
// there is nothing further to resolve, and the original path handed to
// this call is reported as a terminal hop. Every other probe failure
// aborts the scan and propagates.
func FindFirstLink(fsys types.FS, path string) (types.Hop, error) {
	logger := logging.GetLogger("resolver.finder")

	comps := paths.Components(path)
	if len(comps) == 0 {
		return types.Hop{Kind: types.HopTerminal, Source: path}, nil
	}

	prefix := ""
	for i, comp := range comps {
		prefix = filepath.Join(prefix, comp)
		logger.Trace().Str("prefix", prefix).Msg("Examining")

		status, err := Probe(fsys, prefix)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				logger.Debug().Str("prefix", prefix).Str("path", path).Msg("Prefix does not exist, path is terminal")
				return types.Hop{Kind: types.HopTerminal, Source: path}, nil
			}
			return types.Hop{}, errors.Wrapf(err, errors.ErrFileAccess, "probing %s", prefix)
		}

		if status.IsLink {
			hop := types.Hop{
				Kind:   types.HopLink,
				Source: prefix,
				Target: status.Target,
				Suffix: paths.JoinComponents(comps[i+1:]),
				Exists: true,
			}
			logger.Debug().
				Str("source", hop.Source).
				Str("target", hop.Target).
				Str("suffix", hop.Suffix).
				Msg("Found first link")
			return hop, nil
		}
	}

	return types.Hop{Kind: types.HopTerminal, Source: prefix, Exists: true}, nil
}
