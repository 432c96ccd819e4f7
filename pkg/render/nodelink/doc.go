// Package nodelink renders dependency graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// vertices appear as boxes connected by arrows. It can draw either the graph
// as supplied or its condensation: each strongly connected component
// collapsed into a single node, which is always acyclic and makes the
// dependency layering visible even for cyclic inputs.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g)
//	svg, err := nodelink.RenderSVG(dot)
//
// For the condensation, pass the components computed by pkg/toposort:
//
//	comps, _ := g.Components()
//	dot := nodelink.CondensationDOT(g, comps)
//
// Multi-vertex components (cycles) are drawn with a distinct fill so they
// stand out in the diagram.
//
// # DOT Format
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded box
// nodes. The DOT source can be rendered via [RenderSVG] or saved and
// processed with external Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
