// Package graph provides serialization types for dependency graphs.
//
// This package defines the canonical file format for condense's graph data
// and bridges it into [pkg/toposort] for component analysis.
//
// # Graph Files
//
// Graphs use a simple node-link format, available as JSON or TOML:
//
//	{
//	  "nodes": [{"id": "app"}, {"id": "lib-a"}],
//	  "edges": [{"from": "app", "to": "lib-a"}]
//	}
//
//	[[nodes]]
//	id = "app"
//
//	[[edges]]
//	from = "app"
//	to = "lib-a"
//
// The file extension selects the format (.json or .toml). Edges may
// reference nodes that are not declared in the nodes list; such vertices
// are part of the graph implicitly, matching the toposort reachability
// rules.
//
// # Common Operations
//
//	g, _ := graph.ReadFile("deps.json")      // File → Graph
//	comps, _ := g.Components()               // ordered SCCs
//	order, _ := g.Sort()                     // strict topological order
//	graph.WriteFile(g, "out.json")           // Graph → File
//
// # Concurrency
//
// Graph values are plain data; they are safe for concurrent reads but not
// concurrent writes.
package graph
