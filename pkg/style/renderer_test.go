package style_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arthur-debert/readlinks/pkg/errors"
	"github.com/arthur-debert/readlinks/pkg/style"
	"github.com/arthur-debert/readlinks/pkg/types"
	"github.com/arthur-debert/readlinks/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainRenderer() *style.Renderer {
	// Text format keeps output free of escape sequences, which keeps
	// assertions simple.
	return style.NewRenderer(ui.FormatText)
}

func TestFormatHopLinkWithSuffix(t *testing.T) {
	hop := types.Hop{
		Kind:   types.HopLink,
		Source: "/opt/app",
		Target: "/data",
		Suffix: "bin/tool",
	}

	assert.Equal(t, "/opt/app/bin/tool", plainRenderer().FormatHop(hop))
}

func TestFormatHopLinkWithoutSuffix(t *testing.T) {
	hop := types.Hop{
		Kind:   types.HopLink,
		Source: "/usr/bin/vim",
		Target: "vim.basic",
	}

	assert.Equal(t, "/usr/bin/vim", plainRenderer().FormatHop(hop))
}

func TestFormatHopTerminal(t *testing.T) {
	existing := types.Hop{Kind: types.HopTerminal, Source: "/etc/hosts", Exists: true}
	missing := types.Hop{Kind: types.HopTerminal, Source: "/gone"}

	r := plainRenderer()
	assert.Equal(t, "/etc/hosts", r.FormatHop(existing))
	assert.Equal(t, "/gone (not found)", r.FormatHop(missing))
}

func TestFormatTargetLine(t *testing.T) {
	hop := types.Hop{
		Kind:   types.HopLink,
		Source: "/a",
		Target: "/b",
	}

	assert.Equal(t, "/a -> /b", plainRenderer().FormatTargetLine(hop))
}

func TestFormatTerminalStylesSeparator(t *testing.T) {
	hop := types.Hop{
		Kind:   types.HopLink,
		Source: "/opt/app",
		Suffix: "bin/tool",
	}

	styled := style.NewRenderer(ui.FormatTerminal).FormatHop(hop)
	assert.True(t, strings.HasPrefix(styled, "/opt/app"))
	assert.True(t, strings.HasSuffix(styled, "bin/tool"))
}

func TestFormatError(t *testing.T) {
	err := errors.New(errors.ErrFileAccess, "probing /root/x")

	assert.Equal(t, "Error: [FILE_ACCESS] probing /root/x", plainRenderer().FormatError(err))

	styled := style.NewRenderer(ui.FormatTerminal).FormatError(err)
	assert.Contains(t, styled, "FILE_ACCESS")
}

func TestFormatTree(t *testing.T) {
	hops := []types.Hop{
		{Kind: types.HopLink, Source: "/L", Target: "/T"},
		{Kind: types.HopTerminal, Source: "/T", Exists: true},
	}

	out, err := plainRenderer().FormatTree("/L", hops)
	require.NoError(t, err)
	assert.Contains(t, out, "/L")
	assert.Contains(t, out, "/T")
}

func TestFormatJSON(t *testing.T) {
	hops := []types.Hop{
		{Kind: types.HopLink, Source: "/L", Target: "/T", Exists: true},
		{Kind: types.HopTerminal, Source: "/T"},
	}

	out, err := style.FormatJSON("/L", hops)
	require.NoError(t, err)

	var decoded struct {
		Start string `json:"start"`
		Hops  []struct {
			Kind     string `json:"kind"`
			Source   string `json:"source"`
			Target   string `json:"target"`
			Resolved string `json:"resolved"`
			Exists   bool   `json:"exists"`
		} `json:"hops"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "/L", decoded.Start)
	require.Len(t, decoded.Hops, 2)
	assert.Equal(t, "link", decoded.Hops[0].Kind)
	assert.Equal(t, "/T", decoded.Hops[0].Resolved)
	assert.True(t, decoded.Hops[0].Exists)
	assert.Equal(t, "terminal", decoded.Hops[1].Kind)
	assert.False(t, decoded.Hops[1].Exists)
}

func TestGetStyleUnknownName(t *testing.T) {
	// Unknown names fall back to an empty style rather than panicking.
	s := style.GetStyle("NoSuchStyle")
	assert.Equal(t, "text", s.Render("text"))
}

func TestLoadStylesFromDataRejectsGarbage(t *testing.T) {
	err := style.LoadStylesFromData([]byte("{not yaml"))
	assert.Error(t, err)
}
