package resolver_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/readlinks/pkg/resolver"
	"github.com/arthur-debert/readlinks/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeRegularFile(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.WriteFile("/etc/hosts", []byte("127.0.0.1"), 0644))

	status, err := resolver.Probe(mfs, "/etc/hosts")
	require.NoError(t, err)
	assert.False(t, status.IsLink)
	assert.Empty(t, status.Target)
}

func TestProbeDirectory(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.MkdirAll("/etc", 0755))

	status, err := resolver.Probe(mfs, "/etc")
	require.NoError(t, err)
	assert.False(t, status.IsLink)
}

func TestProbeLink(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.Symlink("../target", "/dir/link"))

	status, err := resolver.Probe(mfs, "/dir/link")
	require.NoError(t, err)
	assert.True(t, status.IsLink)
	// The target comes back literally, no interpretation.
	assert.Equal(t, "../target", status.Target)
}

func TestProbeDanglingLink(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	require.NoError(t, mfs.Symlink("/nowhere", "/dangling"))

	status, err := resolver.Probe(mfs, "/dangling")
	require.NoError(t, err)
	assert.True(t, status.IsLink)
	assert.Equal(t, "/nowhere", status.Target)
}

func TestProbeMissingPath(t *testing.T) {
	mfs := testutil.NewMemoryFS()

	_, err := resolver.Probe(mfs, "/nope")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "absence must stay distinguishable")
}

func TestProbePropagatesOtherErrors(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	mfs.WithError("/secret", fs.ErrPermission)

	_, err := resolver.Probe(mfs, "/secret")
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
