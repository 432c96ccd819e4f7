package toposort

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVertices is returned when the vertex slice is nil.
	// An empty (non-nil) slice is a valid, empty graph.
	ErrNilVertices = errors.New("vertex collection must not be nil")

	// ErrNilEdges is returned when the edge slice is nil.
	// An empty (non-nil) slice describes a graph without dependencies.
	ErrNilEdges = errors.New("edge collection must not be nil")

	// ErrNilItems is returned by [ComponentsFunc] and [SortFunc] when the
	// item slice is nil.
	ErrNilItems = errors.New("item collection must not be nil")

	// ErrNilKeyFunc is returned by [ComponentsFunc] and [SortFunc] when no
	// projection function is supplied.
	ErrNilKeyFunc = errors.New("key function must not be nil")

	// ErrDuplicateKey is returned by [ComponentsFunc] and [SortFunc] when two
	// distinct items project to the same vertex key. The backreference from
	// keys to items would be ambiguous, so the call fails before traversal.
	ErrDuplicateKey = errors.New("duplicate vertex key")

	// ErrCycle is returned by [Sort] and [SortFunc] when the graph contains a
	// cycle, i.e. any strongly connected component with more than one vertex.
	ErrCycle = errors.New("cycles in graph")
)

// Edge is a directed dependency between two vertices: From depends on To.
// In every ordering produced by this package, To's component appears no
// later than From's component.
type Edge[T comparable] struct {
	From T
	To   T
}

// E constructs an Edge. It reads better than a struct literal when building
// edge lists inline.
func E[T comparable](from, to T) Edge[T] {
	return Edge[T]{From: from, To: to}
}

// Option configures a sort call.
type Option[T comparable] func(*options[T])

type options[T comparable] struct {
	key func(T) T
}

// WithKey supplies a canonicalization function that defines vertex equality:
// two vertices are the same vertex exactly when their canonical forms are
// equal. The default is the identity, i.e. plain == comparison.
//
// A typical use is case-insensitive identifiers:
//
//	toposort.WithKey(strings.ToLower)
//
// The first value seen for a canonical form becomes the representative that
// appears in the result.
func WithKey[T comparable](key func(T) T) Option[T] {
	return func(o *options[T]) {
		o.key = key
	}
}

func newOptions[T comparable](opts []Option[T]) options[T] {
	o := options[T]{key: func(v T) T { return v }}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Components finds the strongly connected components of the graph described
// by vertices and edges, ordered so that dependencies precede dependents:
// for every edge (a, b) whose endpoints land in different components, b's
// component appears before a's.
//
// Every vertex reachable from the vertex slice via edges is covered by
// exactly one component, including vertices that only appear as edge
// endpoints. Traversal follows the input order, so the result is
// deterministic for deterministic input; the order of vertices inside a
// single component is unspecified.
//
// Returns ErrNilVertices or ErrNilEdges when either slice is nil. Empty
// slices are valid and produce an empty result.
func Components[T comparable](vertices []T, edges []Edge[T], opts ...Option[T]) ([][]T, error) {
	if vertices == nil {
		return nil, ErrNilVertices
	}
	if edges == nil {
		return nil, ErrNilEdges
	}

	o := newOptions(opts)
	s := newTarjan[T](o.key, len(vertices))

	// Register declared vertices first so their spelling wins as the
	// representative when a custom key function folds values together.
	seeds := make([]T, len(vertices))
	for i, v := range vertices {
		seeds[i] = s.canon(v)
	}
	for _, e := range edges {
		k := s.canon(e.From)
		s.succs[k] = append(s.succs[k], e.To)
	}

	for _, k := range seeds {
		if _, seen := s.index[k]; !seen {
			s.strongConnect(k)
		}
	}

	return s.comps, nil
}

// ComponentsFunc is the projecting form of [Components]: it sorts arbitrary
// items by projecting each to a vertex key, running the component sort over
// the projected keys, and mapping every component back to the source items.
//
// Keys must be unique under the configured equivalence; ErrDuplicateKey is
// returned before any traversal when two items collide. Keys that are only
// reachable through edges and belong to no item are dropped from the result,
// as there is no item to map them back to.
func ComponentsFunc[S any, T comparable](items []S, key func(S) T, edges []Edge[T], opts ...Option[T]) ([][]S, error) {
	if items == nil {
		return nil, ErrNilItems
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	if edges == nil {
		return nil, ErrNilEdges
	}

	o := newOptions(opts)
	vertices, back, err := project(items, key, o)
	if err != nil {
		return nil, err
	}

	comps, err := Components(vertices, edges, opts...)
	if err != nil {
		return nil, err
	}

	out := make([][]S, 0, len(comps))
	for _, comp := range comps {
		mapped := make([]S, 0, len(comp))
		for _, v := range comp {
			if it, ok := back[o.key(v)]; ok {
				mapped = append(mapped, it)
			}
		}
		if len(mapped) > 0 {
			out = append(out, mapped)
		}
	}
	return out, nil
}

// Sort topologically sorts an acyclic graph: the returned sequence lists
// every reachable vertex with all of its dependencies at earlier positions.
//
// Sort runs [Components] and rejects the result if any component holds more
// than one vertex, returning an error wrapping [ErrCycle]. Singleton
// components are flattened in order.
func Sort[T comparable](vertices []T, edges []Edge[T], opts ...Option[T]) ([]T, error) {
	comps, err := Components(vertices, edges, opts...)
	if err != nil {
		return nil, err
	}
	return flatten(comps)
}

// SortFunc is the projecting form of [Sort]. The cycle check runs over the
// projected vertex graph before items are mapped back, so a cycle fails the
// call even when it lies entirely among vertices that no item projects to.
func SortFunc[S any, T comparable](items []S, key func(S) T, edges []Edge[T], opts ...Option[T]) ([]S, error) {
	if items == nil {
		return nil, ErrNilItems
	}
	if key == nil {
		return nil, ErrNilKeyFunc
	}
	if edges == nil {
		return nil, ErrNilEdges
	}

	o := newOptions(opts)
	vertices, back, err := project(items, key, o)
	if err != nil {
		return nil, err
	}

	comps, err := Components(vertices, edges, opts...)
	if err != nil {
		return nil, err
	}
	sorted, err := flatten(comps)
	if err != nil {
		return nil, err
	}

	out := make([]S, 0, len(sorted))
	for _, v := range sorted {
		if it, ok := back[o.key(v)]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

// project builds the vertex slice and the canonical-key backreference for the
// projecting variants, failing on ambiguous keys.
func project[S any, T comparable](items []S, key func(S) T, o options[T]) ([]T, map[T]S, error) {
	back := make(map[T]S, len(items))
	vertices := make([]T, len(items))
	for i, it := range items {
		k := key(it)
		c := o.key(k)
		if _, dup := back[c]; dup {
			return nil, nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
		}
		back[c] = it
		vertices[i] = k
	}
	return vertices, back, nil
}

// flatten turns a list of singleton components into a plain sequence,
// failing when any component proves the graph cyclic.
func flatten[T any](comps [][]T) ([]T, error) {
	sorted := make([]T, 0, len(comps))
	for _, c := range comps {
		if len(c) > 1 {
			return nil, fmt.Errorf("%w: %d vertices are mutually dependent", ErrCycle, len(c))
		}
		sorted = append(sorted, c[0])
	}
	return sorted, nil
}
