package readlinks

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/readlinks/pkg/filesystem"
	"github.com/arthur-debert/readlinks/pkg/paths"
	"github.com/arthur-debert/readlinks/pkg/resolver"
	"github.com/arthur-debert/readlinks/pkg/style"
	"github.com/arthur-debert/readlinks/pkg/ui"
)

type resolveOptions struct {
	format  ui.Format
	tree    bool
	maxHops int
	expand  bool
	verbose bool
}

// runResolve drives one resolution from the expanded argument to the
// terminal hop, writing one line per hop as it is produced. Hops
// printed before a fatal error stay on screen; the error itself goes
// back to the caller for the diagnostic stream.
func runResolve(cmd *cobra.Command, target string, opts resolveOptions) error {
	if opts.expand {
		target = paths.Expand(target)
	}

	fsys := filesystem.NewOS()
	renderer := style.NewRenderer(opts.format)
	out := cmd.OutOrStdout()

	var ropts []resolver.Option
	if opts.maxHops > 0 {
		ropts = append(ropts, resolver.WithMaxHops(opts.maxHops))
	}

	// JSON and tree output need the completed chain; everything else
	// streams hop by hop.
	if opts.format == ui.FormatJSON || opts.tree {
		hops, rerr := resolver.ResolveAll(fsys, target, ropts...)

		var rendered string
		var err error
		if opts.format == ui.FormatJSON {
			rendered, err = style.FormatJSON(target, hops)
		} else {
			rendered, err = renderer.FormatTree(target, hops)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)

		// Partial resolution is still reported above; the failure that
		// cut it short is not swallowed.
		return rerr
	}

	fmt.Fprintln(out, target)

	seq := resolver.New(fsys, target, ropts...)
	for {
		hop, ok, err := seq.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if opts.verbose && hop.IsLink() {
			fmt.Fprintln(out, renderer.FormatTargetLine(hop))
		}
		fmt.Fprintln(out, renderer.FormatHop(hop))
	}
}
