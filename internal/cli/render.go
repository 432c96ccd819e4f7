package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphmill/condense/pkg/errors"
	"github.com/graphmill/condense/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path (stdout if empty)
	format string // "dot" or "svg"
	full   bool   // draw every vertex instead of the condensation
}

// newRenderCmd creates the render command for generating diagrams of the
// graph or of its condensation (each strongly connected component collapsed
// into one node).
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "render <graph-file>",
		Short: "Render a graph or its condensation as DOT or SVG",
		Long: `Render draws the condensation of the graph: every strongly connected
component becomes a single node, so the result is always acyclic and the
dependency layering is visible even for cyclic inputs. Cyclic components are
highlighted. Use --full to draw the graph as-is instead.

Examples:
  condense render deps.json                       # condensation DOT to stdout
  condense render deps.json -f svg -o deps.svg    # SVG file
  condense render deps.json --full                # one node per vertex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return errors.New(errors.ErrCodeUnsupported, "unsupported render format %q (want dot or svg)", opts.format)
			}
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.full, "full", false, "draw every vertex instead of the condensation")

	return cmd
}

func runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	var dot string
	if opts.full {
		dot = nodelink.ToDOT(g)
	} else {
		comps, err := g.Components()
		if err != nil {
			return err
		}
		logger.Debugf("Condensed to %d components", len(comps))
		dot = nodelink.CondensationDOT(g, comps)
	}

	out := []byte(dot)
	if opts.format == formatSVG {
		if out, err = nodelink.RenderSVG(dot); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", opts.format))

	if opts.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	logger.Infof("Wrote %s", opts.output)
	return nil
}
