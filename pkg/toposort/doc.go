// Package toposort orders directed dependency graphs.
//
// The package computes strongly connected components (SCCs) using Tarjan's
// algorithm and emits them in dependency order: components nothing else in
// the result depends on come first. This generalizes topological sorting to
// graphs that may contain cycles - a cycle collapses into a single
// multi-vertex component instead of failing the sort.
//
// Two entry points cover the common cases:
//
//   - [Components] returns the ordered SCCs and never fails on cycles.
//   - [Sort] is the strict variant: it requires an acyclic graph and returns
//     [ErrCycle] when any component holds more than one vertex.
//
// Both have a Func form ([ComponentsFunc], [SortFunc]) that sorts arbitrary
// values by projecting them to comparable vertex keys and mapping the result
// back, so callers can order structs without first extracting key slices.
//
// # Graph model
//
// An [Edge] From -> To means "From depends on To", so To sorts before From.
// Vertices reachable through edges are part of the graph even when they are
// missing from the vertex slice; parallel edges and self-edges are permitted
// and have no effect on the result.
//
// # Example
//
//	order, err := toposort.Sort(
//	    []string{"app", "lib", "base"},
//	    []toposort.Edge[string]{
//	        toposort.E("app", "lib"),
//	        toposort.E("lib", "base"),
//	    },
//	)
//	// order == ["base", "lib", "app"]
//
// All functions are pure and allocate their state per call, so concurrent
// calls never share data.
package toposort
