package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/graphmill/condense/pkg/buildinfo"
	"github.com/graphmill/condense/pkg/graph"
)

// Execute runs the condense CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (sort,
// components, render), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "condense",
		Short:        "Condense orders dependency graphs by strongly connected components",
		Long:         `Condense is a CLI tool for analyzing directed dependency graphs: it topologically sorts acyclic graphs, collapses cycles into strongly connected components, and renders condensation diagrams.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSortCmd())
	root.AddCommand(newComponentsCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// loadGraph reads and validates a graph file, logging what was loaded.
func loadGraph(ctx context.Context, path string) (graph.Graph, error) {
	logger := loggerFromContext(ctx)

	g, err := graph.ReadFile(path)
	if err != nil {
		return graph.Graph{}, err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges", path, len(g.Nodes), len(g.Edges))
	return g, nil
}
