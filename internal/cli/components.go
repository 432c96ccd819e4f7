package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// componentsOpts holds the command-line flags for the components command.
type componentsOpts struct {
	cyclesOnly bool // print only multi-vertex components
	quiet      bool // suppress the summary line
}

// newComponentsCmd creates the components command: it lists the strongly
// connected components of a graph in dependency order, cycles included.
func newComponentsCmd() *cobra.Command {
	var opts componentsOpts

	cmd := &cobra.Command{
		Use:   "components <graph-file>",
		Short: "List strongly connected components in dependency order",
		Long: `Components finds the strongly connected components of the graph and
prints them dependencies-first. Unlike "condense sort", this command accepts
cyclic graphs: each cycle collapses into a single multi-vertex component.

Examples:
  condense components deps.json
  condense components deps.json --cycles-only`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.cyclesOnly, "cycles-only", false, "only print components with more than one vertex")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the summary line")

	return cmd
}

func runComponents(ctx context.Context, path string, opts componentsOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	comps, err := g.Components()
	if err != nil {
		return err
	}

	cycles := 0
	for _, c := range comps {
		if len(c) > 1 {
			cycles++
		}
	}
	prog.done(fmt.Sprintf("Found %d components (%d cyclic)", len(comps), cycles))

	for i, comp := range comps {
		if opts.cyclesOnly && len(comp) == 1 {
			continue
		}
		fmt.Println(formatComponent(i, comp))
	}

	if !opts.quiet {
		summary := fmt.Sprintf("%d components, %d cyclic", len(comps), cycles)
		if cycles == 0 {
			fmt.Println(StyleOK.Render("acyclic: " + summary))
		} else {
			fmt.Println(StyleCycle.Render(summary))
		}
	}
	return nil
}
