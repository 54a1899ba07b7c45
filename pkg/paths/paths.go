// Package paths provides path decomposition and search-path expansion
// for readlinks. The resolver rebuilds paths one component at a time,
// so the decomposition here must round-trip exactly.
package paths

import (
	"path/filepath"
	"strings"
)

// Components splits a path into its ordered components. An absolute
// path yields the separator itself as the first component, so that
// rejoining the components left to right rebuilds every prefix the
// probe needs to examine.
func Components(path string) []string {
	if path == "" {
		return nil
	}

	clean := filepath.Clean(path)
	if clean == "." {
		return []string{"."}
	}
	sep := string(filepath.Separator)

	var comps []string
	if filepath.IsAbs(clean) {
		comps = append(comps, sep)
		clean = strings.TrimPrefix(clean, sep)
	}
	if clean != "" && clean != "." {
		comps = append(comps, strings.Split(clean, sep)...)
	}
	return comps
}

// JoinComponents reassembles a slice produced by Components into a
// single path. An empty slice yields the empty string.
func JoinComponents(comps []string) string {
	if len(comps) == 0 {
		return ""
	}
	return filepath.Join(comps...)
}
