package style

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/readlinks/pkg/types"
	"github.com/arthur-debert/readlinks/pkg/ui"
)

// Renderer turns hops into display lines for a concrete output format.
// It owns all presentation choices; the resolver only supplies the
// hop fields.
type Renderer struct {
	format ui.Format
}

// NewRenderer creates a renderer for the given format. FormatAuto
// should be resolved to a concrete format before this point.
func NewRenderer(format ui.Format) *Renderer {
	return &Renderer{format: format}
}

// FormatHop renders a hop as one display line.
//
// A link hop shows the current path with the separator between the
// link and the unresolved suffix highlighted, so the reader can see
// exactly where the indirection sits. A terminal hop shows the final
// path, tagged when it does not exist.
func (r *Renderer) FormatHop(hop types.Hop) string {
	if hop.Kind == types.HopLink {
		if hop.Suffix == "" {
			return hop.Source
		}
		return hop.Source + r.separator() + hop.Suffix
	}

	if hop.Exists {
		return hop.Source
	}
	return hop.Source + r.notFound()
}

// FormatTargetLine renders the verbose "source -> target" detail line
// for a link hop.
func (r *Renderer) FormatTargetLine(hop types.Hop) string {
	target := hop.Target
	if r.format == ui.FormatTerminal {
		target = GetStyle("Target").Render(target)
	}
	return fmt.Sprintf("%s -> %s", hop.Source, target)
}

// FormatError renders an error message for the diagnostic stream.
func (r *Renderer) FormatError(err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if r.format != ui.FormatTerminal {
		return msg
	}
	return GetStyle("Error").Render(msg)
}

// FormatTree renders a completed hop chain as a tree rooted at the
// starting path, each hop nested one level deeper.
func (r *Renderer) FormatTree(start string, hops []types.Hop) (string, error) {
	var children []pterm.TreeNode
	for i := len(hops) - 1; i >= 0; i-- {
		node := pterm.TreeNode{Text: r.FormatHop(hops[i]), Children: children}
		children = []pterm.TreeNode{node}
	}

	root := pterm.TreeNode{Text: start, Children: children}
	return pterm.DefaultTree.WithRoot(root).Srender()
}

// jsonHop is the wire shape of a hop in JSON output.
type jsonHop struct {
	Kind     string `json:"kind"`
	Source   string `json:"source"`
	Target   string `json:"target,omitempty"`
	Suffix   string `json:"suffix,omitempty"`
	Resolved string `json:"resolved"`
	Exists   bool   `json:"exists"`
}

// FormatJSON renders the starting path and the full hop chain as an
// indented JSON document.
func FormatJSON(start string, hops []types.Hop) (string, error) {
	out := struct {
		Start string    `json:"start"`
		Hops  []jsonHop `json:"hops"`
	}{Start: start, Hops: make([]jsonHop, 0, len(hops))}

	for _, hop := range hops {
		exists := hop.Exists
		if hop.Kind == types.HopLink {
			exists = true
		}
		out.Hops = append(out.Hops, jsonHop{
			Kind:     hop.Kind.String(),
			Source:   hop.Source,
			Target:   hop.Target,
			Suffix:   hop.Suffix,
			Resolved: hop.Resolved(),
			Exists:   exists,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Renderer) separator() string {
	sep := string(filepath.Separator)
	if r.format != ui.FormatTerminal {
		return sep
	}
	return GetStyle("LinkSeparator").Render(sep)
}

func (r *Renderer) notFound() string {
	const tag = " (not found)"
	if r.format != ui.FormatTerminal {
		return tag
	}
	return GetStyle("NotFound").Render(tag)
}
