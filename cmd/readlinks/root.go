package readlinks

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/readlinks/internal/version"
	"github.com/arthur-debert/readlinks/pkg/cobrax/topics"
	"github.com/arthur-debert/readlinks/pkg/config"
	"github.com/arthur-debert/readlinks/pkg/logging"
	"github.com/arthur-debert/readlinks/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		format    string
		tree      bool
		maxHops   int
		noExpand  bool
	)

	rootCmd := &cobra.Command{
		Use:   "readlinks [flags] path",
		Short: "The pedantic symlink resolver",
		Long: `readlinks resolves a path one symbolic link at a time, printing every
intermediate hop instead of jumping straight to the final real path.

This is for debugging layered link indirection, e.g. package manager
profile links, where you need to see which link pointed where - not
just where the chain ends up.`,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over config; config wins over built-in defaults.
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}
			if !cmd.Flags().Changed("tree") {
				tree = cfg.Output.Tree
			}
			if !cmd.Flags().Changed("max-hops") {
				maxHops = cfg.Resolve.MaxHops
			}

			outFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}

			return runResolve(cmd, args[0], resolveOptions{
				format:  ui.Resolve(outFormat, os.Stdout),
				tree:    tree,
				maxHops: maxHops,
				expand:  cfg.Resolve.Expand && !noExpand,
				verbose: verbosity >= 1,
			})
		},
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v shows link targets, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVar(&format, "format", "auto", "Output format: auto, term, text or json")
	rootCmd.Flags().BoolVar(&tree, "tree", false, "Render the completed chain as a tree")
	rootCmd.Flags().IntVar(&maxHops, "max-hops", 0, "Give up after N link hops (0 = unbounded; cyclic chains then never terminate)")
	rootCmd.Flags().BoolVar(&noExpand, "no-expand", false, "Do not expand a bare name through the PATH variable")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Initialize topic-based help. Look for help topics relative to the
	// executable location, falling back to the working directory.
	if exe, err := os.Executable(); err == nil {
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "..", "..", "docs", "help"), // Development
			filepath.Join(filepath.Dir(exe), "docs", "help"),             // Installed
			"docs/help", // Current directory
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				opts := topics.Options{Renderer: topics.NewGlamourRenderer()}
				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("readlinks version %s\n", version.Version)
			if version.Commit != "" {
				cmd.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				cmd.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print a config file template",
		Long: `Print the default configuration with every value commented out,
ready to be saved to ` + config.UserConfigPath() + ` and edited.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			cmd.Println(content)
			return nil
		},
	}
}
