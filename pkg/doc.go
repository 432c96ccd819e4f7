// Package pkg provides the core libraries for condense graph analysis.
//
// # Overview
//
// Condense orders directed dependency graphs: it topologically sorts acyclic
// graphs and collapses cycles into strongly connected components. The pkg
// directory is organized into small, layered packages:
//
//  1. [toposort] - The sorting engine (Tarjan's algorithm + ordering wrappers)
//  2. [graph] - Serialization types and file I/O for graph data
//  3. [render/nodelink] - DOT/SVG diagrams of graphs and condensations
//  4. [errors] - Structured error codes shared by the CLI
//  5. [buildinfo] - Build-time version metadata
//
// # Architecture
//
// The typical data flow through condense:
//
//	JSON/TOML graph file
//	         ↓
//	    [graph] package (decode + validate)
//	         ↓
//	    [toposort] package (components / strict sort)
//	         ↓
//	    [render/nodelink] package (DOT / SVG output)
//
// # Quick Start
//
//	g, err := graph.ReadFile("deps.json")
//	if err != nil { ... }
//	order, err := g.Sort()        // fails on cycles
//	comps, err := g.Components()  // cycles collapse instead
//
// Only pkg/toposort carries algorithmic logic; the other packages are thin
// adapters around it.
package pkg
