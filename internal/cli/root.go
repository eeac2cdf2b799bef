package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensescout/pkg/buildinfo"
)

// Execute runs the licensescout CLI and returns an error if any command
// fails. Running the bare binary performs a scan of the current directory;
// subcommands cover cache management and shell completion.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, per-dependency trace instead of the
//     progress spinner
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	scan := newScanCmd()

	root := &cobra.Command{
		Use:          "licensescout",
		Short:        "Licensescout resolves the licenses of your project's dependencies",
		Long:         `Licensescout scans a project's manifest, resolves the license of every dependency through local files, registry metadata, and repository probing, and writes a markdown report.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: scan.RunE,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().AddFlagSet(scan.Flags())

	root.AddCommand(scan)
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
