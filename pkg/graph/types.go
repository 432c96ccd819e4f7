package graph

import (
	"github.com/graphmill/condense/pkg/errors"
	"github.com/graphmill/condense/pkg/toposort"
)

// Supported file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Graph is the canonical serialization format for dependency graphs.
// It is the on-disk representation consumed by the CLI commands.
type Graph struct {
	Nodes []Node `json:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" toml:"edges"`
}

// Node is a declared vertex. Only the ID participates in sorting; Label and
// Meta ride along for display and round-trip fidelity.
type Node struct {
	ID    string         `json:"id" toml:"id"`
	Label string         `json:"label,omitempty" toml:"label,omitempty"`
	Meta  map[string]any `json:"meta,omitempty" toml:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed dependency: From depends on To.
type Edge struct {
	From string `json:"from" toml:"from"`
	To   string `json:"to" toml:"to"`
}

// Validate checks structural integrity and returns nil if the graph is
// usable. Node IDs must be non-empty and unique; edge endpoints must be
// non-empty. Edges referencing undeclared nodes are allowed - those
// vertices join the graph implicitly.
func (g Graph) Validate() error {
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeInvalidInput, "node ID must not be empty")
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "node %q declared twice", n.ID)
		}
		seen[n.ID] = true
	}
	for _, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return errors.New(errors.ErrCodeInvalidInput, "edge %q -> %q has an empty endpoint", e.From, e.To)
		}
	}
	return nil
}

// VertexIDs returns the declared vertex IDs in declaration order.
func (g Graph) VertexIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// TopoEdges converts the edge list into toposort edges, preserving order.
func (g Graph) TopoEdges() []toposort.Edge[string] {
	edges := make([]toposort.Edge[string], len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = toposort.E(e.From, e.To)
	}
	return edges
}

// Components returns the graph's strongly connected components in
// dependency order. See [toposort.Components].
func (g Graph) Components() ([][]string, error) {
	return toposort.Components(g.VertexIDs(), g.TopoEdges())
}

// Sort returns the strict topological order of the graph, failing when the
// graph contains a cycle. See [toposort.Sort].
func (g Graph) Sort() ([]string, error) {
	return toposort.Sort(g.VertexIDs(), g.TopoEdges())
}

// Node returns the declared node with the given ID, if any.
func (g Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
