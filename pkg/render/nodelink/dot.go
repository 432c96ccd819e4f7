package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphmill/condense/pkg/graph"
)

const header = `  rankdir=TB;
  bgcolor="transparent";
  node [shape=box, style="rounded,filled", fillcolor=white, fontsize=24, margin="0.2,0.1"];
  ranksep=0.5;
  nodesep=0.3;
`

// ToDOT converts a graph to Graphviz DOT format, one node per vertex.
// Vertices that only appear as edge endpoints are included.
func ToDOT(g graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString(header)
	buf.WriteString("\n")

	declared := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		declared[n.ID] = true
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, n.DisplayLabel())
	}
	for _, e := range g.Edges {
		for _, id := range []string{e.From, e.To} {
			if !declared[id] {
				declared[id] = true
				fmt.Fprintf(&buf, "  %q;\n", id)
			}
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// CondensationDOT draws the condensation of g: each component in comps
// becomes one node, and edges between components are deduplicated.
// Multi-vertex components are filled to mark the collapsed cycles.
//
// comps must cover the graph's reachable vertices, as returned by
// graph.Components; vertices not covered are skipped.
func CondensationDOT(g graph.Graph, comps [][]string) string {
	compOf := make(map[string]int)
	for i, comp := range comps {
		for _, v := range comp {
			compOf[v] = i
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph condensation {\n")
	buf.WriteString(header)
	buf.WriteString("\n")

	for i, comp := range comps {
		attrs := fmt.Sprintf("label=%q", strings.Join(comp, "\\n"))
		if len(comp) > 1 {
			attrs += `, fillcolor=mistyrose, color=red3`
		}
		fmt.Fprintf(&buf, "  c%d [%s];\n", i, attrs)
	}

	buf.WriteString("\n")
	drawn := make(map[[2]int]bool)
	for _, e := range g.Edges {
		from, okF := compOf[e.From]
		to, okT := compOf[e.To]
		if !okF || !okT || from == to {
			continue
		}
		key := [2]int{from, to}
		if drawn[key] {
			continue
		}
		drawn[key] = true
		fmt.Fprintf(&buf, "  c%d -> c%d;\n", from, to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
