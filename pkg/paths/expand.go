package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/readlinks/pkg/logging"
)

// Expand resolves a bare executable name through the directories of
// the PATH environment variable, in listed order. Only candidates
// consisting of a single path component are searched; anything
// containing a separator, and any name with no match, is returned
// unchanged.
//
// The check is existence as a regular file, not executability: that
// narrower question is left to the operating system at invocation
// time.
func Expand(candidate string) string {
	if candidate == "" || strings.ContainsRune(candidate, filepath.Separator) {
		return candidate
	}

	logger := logging.GetLogger("paths.expand")

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		full := filepath.Join(dir, candidate)
		info, err := os.Stat(full)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		logger.Debug().Str("candidate", candidate).Str("expanded", full).Msg("Expanded through search path")
		return full
	}

	return candidate
}
