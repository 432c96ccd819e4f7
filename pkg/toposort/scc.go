package toposort

// tarjan holds the per-call state of Tarjan's strongly-connected-components
// algorithm. All maps are keyed by canonical vertex form so that a custom
// equivalence (see WithKey) applies uniformly to discovery indices, lowlink
// values and stack membership.
type tarjan[T comparable] struct {
	key   func(T) T
	succs map[T][]T // canonical vertex -> successors, in edge insertion order
	repr  map[T]T   // canonical vertex -> first value seen for it

	index   map[T]int // discovery order, assigned on first visit
	lowlink map[T]int // smallest index reachable through the vertex's subtree
	onStack map[T]bool
	stack   []T // canonical vertices of the open components
	next    int

	comps [][]T
}

// frame is one suspended visit of the depth-first traversal. It records
// which successor to resume at, replacing call-stack recursion so that
// chain-like graphs cannot exhaust the goroutine stack.
type frame[T comparable] struct {
	v    T   // canonical vertex being visited
	succ int // next successor index to examine
}

func newTarjan[T comparable](key func(T) T, hint int) *tarjan[T] {
	return &tarjan[T]{
		key:     key,
		succs:   make(map[T][]T, hint),
		repr:    make(map[T]T, hint),
		index:   make(map[T]int, hint),
		lowlink: make(map[T]int, hint),
		onStack: make(map[T]bool, hint),
	}
}

// canon maps a vertex to its canonical form, recording the first value seen
// for each form as the representative that appears in results.
func (s *tarjan[T]) canon(v T) T {
	k := s.key(v)
	if _, ok := s.repr[k]; !ok {
		s.repr[k] = v
	}
	return k
}

// discover assigns the next discovery index to v and opens it on the
// component stack.
func (s *tarjan[T]) discover(v T) {
	s.index[v] = s.next
	s.lowlink[v] = s.next
	s.next++
	s.stack = append(s.stack, v)
	s.onStack[v] = true
}

// strongConnect runs one depth-first traversal rooted at v, emitting every
// component it completes. A component closes only after all components
// reachable from it have closed, which yields the dependencies-first
// emission order.
func (s *tarjan[T]) strongConnect(v T) {
	s.discover(v)
	frames := []frame[T]{{v: v}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		succs := s.succs[f.v]

		descended := false
		for f.succ < len(succs) {
			w := s.canon(succs[f.succ])
			f.succ++
			if _, seen := s.index[w]; !seen {
				s.discover(w)
				frames = append(frames, frame[T]{v: w})
				descended = true
				break
			}
			if s.onStack[w] && s.index[w] < s.lowlink[f.v] {
				// Back edge into an open component.
				s.lowlink[f.v] = s.index[w]
			}
			// Closed component: nothing to propagate.
		}
		if descended {
			continue
		}

		done := f.v
		frames = frames[:len(frames)-1]

		if s.lowlink[done] == s.index[done] {
			s.emit(done)
		}
		if len(frames) > 0 {
			parent := frames[len(frames)-1].v
			if s.lowlink[done] < s.lowlink[parent] {
				s.lowlink[parent] = s.lowlink[done]
			}
		}
	}
}

// emit pops the stack down to and including root, collecting the popped
// vertices as one completed component.
func (s *tarjan[T]) emit(root T) {
	var comp []T
	for {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[top] = false
		comp = append(comp, s.repr[top])
		if top == root {
			break
		}
	}
	s.comps = append(s.comps, comp)
}
