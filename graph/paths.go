package graph

// Combine folds two weights into one while evaluating a path left-to-right.
// Predefined combiners: Add, Sub, Mul, Div (all weights) and And, Or, Xor
// (integer weights, via Integer).
type Combine[T Weight] func(a, b T) T

// Better reports whether cand is an improvement over the running best.
// Predefined predicates: PreferMin and PreferMax.
type Better[T Weight] func(best, cand T) bool

// Predefined combiners for SearchPaths.
func Add[T Weight](a, b T) T { return a + b }
func Sub[T Weight](a, b T) T { return a - b }
func Mul[T Weight](a, b T) T { return a * b }
func Div[T Weight](a, b T) T { return a / b }

// Bitwise combiners, available for integer weight types only.
func And[T Integer](a, b T) T { return a & b }
func Or[T Integer](a, b T) T  { return a | b }
func Xor[T Integer](a, b T) T { return a ^ b }

// PreferMin treats a smaller folded value as an improvement.
func PreferMin[T Weight](best, cand T) bool { return cand < best }

// PreferMax treats a larger folded value as an improvement.
func PreferMax[T Weight](best, cand T) bool { return cand > best }

// AllSimplePaths enumerates every simple (vertex-repetition-free) path from
// s to t (both 1-based) by exhaustive backtracking depth-first search.
// Each returned path lists its vertices in 1-based numbering, s first.
// s == t yields the single zero-length path [s].
//
// The number of simple paths is combinatorial in dense graphs and the
// enumeration is deliberately exponential; intended for small instances
// only. It runs to completion regardless of elapsed time.
func (g *Graph[T]) AllSimplePaths(s, t int) ([][]int, error) {
	src, err := g.index(s)
	if err != nil {
		return nil, err
	}
	dst, err := g.index(t)
	if err != nil {
		return nil, err
	}

	e := &enumerator[T]{
		g:      g,
		dst:    dst,
		onPath: make([]bool, g.n),
		stack:  make([]int, 0, g.n),
	}
	e.onPath[src] = true
	e.stack = append(e.stack, src)
	e.walk(src)

	return e.paths, nil
}

// SearchPaths evaluates every simple path from s to t: each path's edge
// weights are folded left-to-right with combine, and the path whose folded
// value better judges as an improvement over the running best — starting
// from initial — is kept. This generalizes "shortest/longest among all
// simple paths" to arbitrary fold operators and betterness criteria, at
// the cost of full enumeration first.
//
// Returns the winning value and path (1-based vertices). When no simple
// path exists the result is (initial, nil, ErrNoPath); when paths exist
// but none improves on initial, (initial, nil, nil). A zero-length path
// (s == t) folds to the zero weight.
func (g *Graph[T]) SearchPaths(s, t int, initial T, better Better[T], combine Combine[T]) (T, []int, error) {
	paths, err := g.AllSimplePaths(s, t)
	if err != nil {
		return initial, nil, err
	}
	if len(paths) == 0 {
		return initial, nil, ErrNoPath
	}

	best := initial
	var bestPath []int
	var folded T
	for _, p := range paths {
		folded = g.fold(p, combine)
		if better(best, folded) {
			best = folded
			bestPath = p
		}
	}

	return best, bestPath, nil
}

// fold reduces a path's edge weights left-to-right: the first edge weight
// seeds the accumulator, each following weight is combined into it.
// A path with no edges folds to the zero weight.
func (g *Graph[T]) fold(path []int, combine Combine[T]) T {
	var acc T
	var w T
	for i := 1; i < len(path); i++ {
		w, _ = g.EdgeWeight(path[i-1], path[i])
		if i == 1 {
			acc = w
		} else {
			acc = combine(acc, w)
		}
	}

	return acc
}

// enumerator holds the per-call state of one AllSimplePaths execution:
// a visited marker array and an explicit path stack. Nothing here touches
// the graph's shared scratch, so enumeration does not invalidate the last
// shortest-path result.
type enumerator[T Weight] struct {
	g      *Graph[T]
	dst    int
	onPath []bool // vertices on the current stack
	stack  []int  // current path, 0-based
	paths  [][]int
}

// walk extends the current path from u, capturing the stack whenever dst
// is reached and backtracking (pop + unmark) after exhausting neighbors.
func (e *enumerator[T]) walk(u int) {
	if u == e.dst {
		e.paths = append(e.paths, e.capture())

		return
	}
	for _, a := range e.g.adj[u] {
		if e.onPath[a.to] {
			continue // keep the path simple
		}
		e.onPath[a.to] = true
		e.stack = append(e.stack, a.to)
		e.walk(a.to)
		e.stack = e.stack[:len(e.stack)-1]
		e.onPath[a.to] = false
	}
}

// capture snapshots the current stack as a 1-based path.
func (e *enumerator[T]) capture() []int {
	p := make([]int, len(e.stack))
	for i, v := range e.stack {
		p[i] = v + 1
	}

	return p
}
