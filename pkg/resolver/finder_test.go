package resolver_test

import (
	"io/fs"
	"testing"

	"github.com/arthur-debert/readlinks/pkg/errors"
	"github.com/arthur-debert/readlinks/pkg/resolver"
	"github.com/arthur-debert/readlinks/pkg/testutil"
	"github.com/arthur-debert/readlinks/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFirstLinkNoLinks(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.WriteFile("/usr/bin/vim", nil, 0755))

	hop, err := resolver.FindFirstLink(mfs, "/usr/bin/vim")
	require.NoError(t, err)
	assert.Equal(t, types.HopTerminal, hop.Kind)
	assert.Equal(t, "/usr/bin/vim", hop.Source)
	assert.True(t, hop.Exists)
}

func TestFindFirstLinkFinalComponent(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.MkdirAll("/usr/bin", 0755))
	require.NoError(t, mfs.Symlink("vim.basic", "/usr/bin/vim"))

	hop, err := resolver.FindFirstLink(mfs, "/usr/bin/vim")
	require.NoError(t, err)
	assert.Equal(t, types.HopLink, hop.Kind)
	assert.Equal(t, "/usr/bin/vim", hop.Source)
	assert.Equal(t, "vim.basic", hop.Target)
	assert.Empty(t, hop.Suffix, "link in final position leaves no suffix")
	assert.Equal(t, "/usr/bin/vim.basic", hop.Resolved())
}

func TestFindFirstLinkKeepsSuffix(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.Symlink("/data", "/opt/app"))

	hop, err := resolver.FindFirstLink(mfs, "/opt/app/sub/file")
	require.NoError(t, err)
	assert.Equal(t, types.HopLink, hop.Kind)
	assert.Equal(t, "/opt/app", hop.Source)
	assert.Equal(t, "/data", hop.Target)
	assert.Equal(t, "sub/file", hop.Suffix)
	assert.Equal(t, "/data/sub/file", hop.Resolved())
}

func TestFindFirstLinkShortCircuits(t *testing.T) {
	// Two links in the path; only the leftmost may be reported.
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.Symlink("/real-a", "/a"))
	require.NoError(t, mfs.MkdirAll("/real-a", 0755))
	require.NoError(t, mfs.Symlink("/real-b", "/real-a/b"))

	hop, err := resolver.FindFirstLink(mfs, "/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, "/a", hop.Source)
	assert.Equal(t, "b/c", hop.Suffix)
}

func TestFindFirstLinkMissingPrefixIsTerminal(t *testing.T) {
	mfs := testutil.NewMemoryFS()

	// /x does not exist at all, so /x/y has nothing left to resolve.
	hop, err := resolver.FindFirstLink(mfs, "/x/y")
	require.NoError(t, err, "a broken path is terminal, not an error")
	assert.Equal(t, types.HopTerminal, hop.Kind)
	assert.Equal(t, "/x/y", hop.Source, "terminal hop reports the original path")
	assert.False(t, hop.Exists)
}

func TestFindFirstLinkPropagatesIOErrors(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WithError("/secret", fs.ErrPermission)

	_, err := resolver.FindFirstLink(mfs, "/secret/file")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}
