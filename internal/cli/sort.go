package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphmill/condense/pkg/errors"
	"github.com/graphmill/condense/pkg/toposort"
)

// sortOpts holds the command-line flags for the sort command.
type sortOpts struct {
	reverse   bool   // dependents first instead of dependencies first
	separator string // vertex separator for single-line output
	oneline   bool   // print the order on one line
}

// newSortCmd creates the sort command: a strict topological sort that fails
// when the graph contains cycles.
func newSortCmd() *cobra.Command {
	var opts sortOpts

	cmd := &cobra.Command{
		Use:   "sort <graph-file>",
		Short: "Topologically sort an acyclic dependency graph",
		Long: `Sort prints every vertex of the graph with all of its dependencies at
earlier positions. The graph must be acyclic; use "condense components" to
inspect graphs that contain cycles.

Examples:
  condense sort deps.json
  condense sort deps.toml --oneline --separator " -> "`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "print dependents before dependencies")
	cmd.Flags().BoolVar(&opts.oneline, "oneline", false, "print the order on a single line")
	cmd.Flags().StringVar(&opts.separator, "separator", " ", "separator for --oneline output")

	return cmd
}

func runSort(ctx context.Context, path string, opts sortOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	order, err := g.Sort()
	if err != nil {
		if stderrors.Is(err, toposort.ErrCycle) {
			return errors.Wrap(errors.ErrCodeCycle, err, "graph %s is not acyclic", path)
		}
		return err
	}
	prog.done(fmt.Sprintf("Sorted %d vertices", len(order)))

	if opts.reverse {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	if opts.oneline {
		fmt.Println(strings.Join(order, opts.separator))
		return nil
	}
	for _, v := range order {
		fmt.Println(v)
	}
	return nil
}
