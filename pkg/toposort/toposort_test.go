package toposort

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		vertices []string
		edges    []Edge[string]
		want     []string
	}{
		{
			name:     "chain",
			vertices: []string{"A", "B", "C"},
			edges:    []Edge[string]{E("A", "B"), E("B", "C")},
			want:     []string{"C", "B", "A"},
		},
		{
			name:     "empty",
			vertices: []string{},
			edges:    []Edge[string]{},
			want:     []string{},
		},
		{
			name:     "no edges keeps input order",
			vertices: []string{"x", "y", "z"},
			edges:    []Edge[string]{},
			want:     []string{"x", "y", "z"},
		},
		{
			name:     "diamond",
			vertices: []string{"top", "left", "right", "bottom"},
			edges: []Edge[string]{
				E("top", "left"), E("top", "right"),
				E("left", "bottom"), E("right", "bottom"),
			},
			want: []string{"bottom", "left", "right", "top"},
		},
		{
			name:     "undeclared vertex pulled in through edge",
			vertices: []string{"a"},
			edges:    []Edge[string]{E("a", "b")},
			want:     []string{"b", "a"},
		},
		{
			name:     "parallel edges are redundant",
			vertices: []string{"a", "b"},
			edges:    []Edge[string]{E("a", "b"), E("a", "b"), E("a", "b")},
			want:     []string{"b", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sort(tt.vertices, tt.edges)
			if err != nil {
				t.Fatalf("Sort() error = %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Sort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortCycle(t *testing.T) {
	tests := []struct {
		name     string
		vertices []string
		edges    []Edge[string]
	}{
		{
			name:     "two-cycle",
			vertices: []string{"A", "B", "C"},
			edges:    []Edge[string]{E("A", "B"), E("B", "A"), E("B", "C")},
		},
		{
			name:     "three-cycle",
			vertices: []string{"a", "b", "c"},
			edges:    []Edge[string]{E("a", "b"), E("b", "c"), E("c", "a")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sort(tt.vertices, tt.edges)
			if !errors.Is(err, ErrCycle) {
				t.Errorf("Sort() error = %v, want ErrCycle", err)
			}
		})
	}
}

func TestSortSelfEdge(t *testing.T) {
	// A self-edge does not make a vertex a multi-vertex component,
	// so the strict sort still succeeds.
	got, err := Sort([]string{"a", "b"}, []Edge[string]{E("a", "a"), E("a", "b")})
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	want := []string{"b", "a"}
	if !slices.Equal(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestComponents(t *testing.T) {
	vertices := []string{"A", "B", "C"}
	edges := []Edge[string]{E("A", "B"), E("B", "A"), E("B", "C")}

	comps, err := Components(vertices, edges)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}

	if len(comps) != 2 {
		t.Fatalf("Components() returned %d components, want 2", len(comps))
	}
	if !slices.Equal(comps[0], []string{"C"}) {
		t.Errorf("first component = %v, want [C]", comps[0])
	}
	cycle := slices.Clone(comps[1])
	slices.Sort(cycle)
	if !slices.Equal(cycle, []string{"A", "B"}) {
		t.Errorf("second component = %v, want {A, B}", comps[1])
	}
}

func TestComponentsPartition(t *testing.T) {
	vertices := []string{"a", "b", "c", "d", "e"}
	edges := []Edge[string]{
		E("a", "b"), E("b", "c"), E("c", "a"), // cycle a-b-c
		E("c", "d"), E("d", "e"), E("e", "d"), // cycle d-e below it
	}

	comps, err := Components(vertices, edges)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}

	seen := make(map[string]int)
	for _, comp := range comps {
		if len(comp) == 0 {
			t.Fatal("Components() returned an empty component")
		}
		for _, v := range comp {
			seen[v]++
		}
	}
	for _, v := range vertices {
		if seen[v] != 1 {
			t.Errorf("vertex %q appears %d times across components, want 1", v, seen[v])
		}
	}
}

func TestComponentsDependencyOrder(t *testing.T) {
	vertices := []string{"app", "web", "db", "log", "util"}
	edges := []Edge[string]{
		E("app", "web"), E("app", "db"),
		E("web", "log"), E("db", "log"),
		E("log", "util"),
		E("web", "db"), E("db", "web"), // web and db collapse
	}

	comps, err := Components(vertices, edges)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}

	pos := make(map[string]int)
	for i, comp := range comps {
		for _, v := range comp {
			pos[v] = i
		}
	}
	for _, e := range edges {
		if pos[e.To] > pos[e.From] {
			t.Errorf("edge %s->%s: dependency at component %d, dependent at %d",
				e.From, e.To, pos[e.To], pos[e.From])
		}
	}
}

func TestComponentsCycleCollapse(t *testing.T) {
	// The whole ring lands in one component no matter which vertex seeds
	// the traversal.
	ring := []Edge[string]{E("v1", "v2"), E("v2", "v3"), E("v3", "v4"), E("v4", "v1")}
	starts := [][]string{
		{"v1", "v2", "v3", "v4"},
		{"v3", "v1", "v4", "v2"},
		{"v4"},
	}

	for _, vertices := range starts {
		comps, err := Components(vertices, ring)
		if err != nil {
			t.Fatalf("Components(%v) error = %v", vertices, err)
		}
		if len(comps) != 1 {
			t.Fatalf("Components(%v) = %d components, want 1", vertices, len(comps))
		}
		if len(comps[0]) != 4 {
			t.Errorf("Components(%v) component size = %d, want 4", vertices, len(comps[0]))
		}
	}
}

func TestComponentsDeterministic(t *testing.T) {
	vertices := []string{"m", "n", "o", "p", "q"}
	edges := []Edge[string]{
		E("m", "n"), E("n", "o"), E("o", "n"), E("o", "p"), E("q", "p"),
	}

	first, err := Components(vertices, edges)
	if err != nil {
		t.Fatalf("Components() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Components(vertices, edges)
		if err != nil {
			t.Fatalf("Components() error = %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: %d components, want %d", i, len(again), len(first))
		}
		for j := range first {
			a, b := slices.Clone(first[j]), slices.Clone(again[j])
			slices.Sort(a)
			slices.Sort(b)
			if !slices.Equal(a, b) {
				t.Errorf("run %d: component %d = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestNilArguments(t *testing.T) {
	key := func(s string) string { return s }

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{
			name: "Components nil vertices",
			call: func() error { _, err := Components(nil, []Edge[string]{}); return err },
			want: ErrNilVertices,
		},
		{
			name: "Components nil edges",
			call: func() error { _, err := Components([]string{}, nil); return err },
			want: ErrNilEdges,
		},
		{
			name: "Sort nil vertices",
			call: func() error { _, err := Sort(nil, []Edge[string]{}); return err },
			want: ErrNilVertices,
		},
		{
			name: "Sort nil edges",
			call: func() error { _, err := Sort([]string{}, nil); return err },
			want: ErrNilEdges,
		},
		{
			name: "ComponentsFunc nil items",
			call: func() error { _, err := ComponentsFunc(nil, key, []Edge[string]{}); return err },
			want: ErrNilItems,
		},
		{
			name: "ComponentsFunc nil key func",
			call: func() error {
				_, err := ComponentsFunc[string, string]([]string{}, nil, []Edge[string]{})
				return err
			},
			want: ErrNilKeyFunc,
		},
		{
			name: "SortFunc nil edges",
			call: func() error { _, err := SortFunc([]string{}, key, nil); return err },
			want: ErrNilEdges,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

type pkg struct {
	Name string
	Ver  string
}

func TestSortFunc(t *testing.T) {
	pkgs := []pkg{
		{Name: "app", Ver: "1.0"},
		{Name: "lib", Ver: "2.3"},
		{Name: "base", Ver: "0.9"},
	}
	edges := []Edge[string]{E("app", "lib"), E("lib", "base")}

	got, err := SortFunc(pkgs, func(p pkg) string { return p.Name }, edges)
	if err != nil {
		t.Fatalf("SortFunc() error = %v", err)
	}
	want := []pkg{{Name: "base", Ver: "0.9"}, {Name: "lib", Ver: "2.3"}, {Name: "app", Ver: "1.0"}}
	if !slices.Equal(got, want) {
		t.Errorf("SortFunc() = %v, want %v", got, want)
	}
}

func TestSortFuncCycle(t *testing.T) {
	pkgs := []pkg{{Name: "a"}, {Name: "b"}}
	edges := []Edge[string]{E("a", "b"), E("b", "a")}

	_, err := SortFunc(pkgs, func(p pkg) string { return p.Name }, edges)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("SortFunc() error = %v, want ErrCycle", err)
	}
}

func TestSortFuncCycleAmongUnbackedVertices(t *testing.T) {
	// The cycle {dep1, dep2} lies entirely among vertices that project from
	// no item. The strict sort must still fail: the graph is not acyclic,
	// even though the cycle would be invisible after back-mapping.
	pkgs := []pkg{{Name: "app"}}
	edges := []Edge[string]{E("app", "dep1"), E("dep1", "dep2"), E("dep2", "dep1")}

	_, err := SortFunc(pkgs, func(p pkg) string { return p.Name }, edges)
	if !errors.Is(err, ErrCycle) {
		t.Errorf("SortFunc() error = %v, want ErrCycle", err)
	}
}

func TestSortFuncDropsUnbackedVertices(t *testing.T) {
	pkgs := []pkg{{Name: "app"}}
	edges := []Edge[string]{E("app", "ghost")}

	got, err := SortFunc(pkgs, func(p pkg) string { return p.Name }, edges)
	if err != nil {
		t.Fatalf("SortFunc() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "app" {
		t.Errorf("SortFunc() = %v, want [{app}]", got)
	}
}

func TestComponentsFuncDuplicateKey(t *testing.T) {
	pkgs := []pkg{
		{Name: "app", Ver: "1.0"},
		{Name: "app", Ver: "2.0"},
	}

	_, err := ComponentsFunc(pkgs, func(p pkg) string { return p.Name }, []Edge[string]{})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("ComponentsFunc() error = %v, want ErrDuplicateKey", err)
	}
}

func TestComponentsFuncDropsUnbackedVertices(t *testing.T) {
	// "ghost" is reachable through an edge but projects from no item, so it
	// cannot be mapped back and is left out.
	pkgs := []pkg{{Name: "app"}}
	edges := []Edge[string]{E("app", "ghost")}

	comps, err := ComponentsFunc(pkgs, func(p pkg) string { return p.Name }, edges)
	if err != nil {
		t.Fatalf("ComponentsFunc() error = %v", err)
	}
	if len(comps) != 1 || len(comps[0]) != 1 || comps[0][0].Name != "app" {
		t.Errorf("ComponentsFunc() = %v, want [[{app}]]", comps)
	}
}

func TestWithKey(t *testing.T) {
	vertices := []string{"App", "Lib"}
	edges := []Edge[string]{E("APP", "lib")}

	got, err := Sort(vertices, edges, WithKey(strings.ToLower))
	if err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	// Declared spellings survive as representatives.
	want := []string{"Lib", "App"}
	if !slices.Equal(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}

func TestWithKeyDuplicateDetection(t *testing.T) {
	pkgs := []pkg{{Name: "App"}, {Name: "APP"}}

	_, err := ComponentsFunc(pkgs, func(p pkg) string { return p.Name },
		[]Edge[string]{}, WithKey(strings.ToLower))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("ComponentsFunc() error = %v, want ErrDuplicateKey", err)
	}
}
