package graph

import "fmt"

// AddEdge inserts the unit-weight edge from→to (both 1-based).
// On an undirected graph the mirrored edge to→from is inserted as well.
// Unit insertions keep the uniform-weight fast path alive; see Uniform.
//
// Rejections (graph unchanged): ErrVertexOutOfRange, ErrSelfLoop,
// ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to int) error {
	return g.insert(from, to, T(1))
}

// AddWeightedEdge inserts the edge from→to with weight w (both 1-based).
// Calling this method even once permanently disables the uniform-weight
// fast path, regardless of the weight supplied and regardless of whether
// the insertion is rejected: dispatch depends on how edges were inserted,
// not on their values.
//
// Rejections (graph unchanged): ErrVertexOutOfRange, ErrSelfLoop,
// ErrDuplicateEdge, ErrNonPositiveWeight.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddWeightedEdge(from, to int, w T) error {
	g.uniform = false

	return g.insert(from, to, w)
}

// insert validates and appends the arc(s) for one logical edge.
// All checks run before any mutation, so a rejected call is a true no-op
// on the adjacency structure.
func (g *Graph[T]) insert(from, to int, w T) error {
	u, err := g.index(from)
	if err != nil {
		return err
	}
	v, err := g.index(to)
	if err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrSelfLoop, from)
	}
	var zero T
	if w <= zero {
		return fmt.Errorf("%w: %v on edge %d→%d", ErrNonPositiveWeight, w, from, to)
	}
	// For undirected graphs both directions are always inserted together,
	// so checking u→v also covers the mirror.
	if _, dup := g.present[u][v]; dup {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
	}

	g.addArc(u, v, w)
	if !g.directed {
		g.addArc(v, u, w)
	}

	return nil
}

// addArc appends one directed arc and records membership.
func (g *Graph[T]) addArc(u, v int, w T) {
	g.adj[u] = append(g.adj[u], arc[T]{to: v, w: w})
	g.present[u][v] = struct{}{}
}

// EdgeWeight reports the weight of the edge from→to (both 1-based) and
// whether it exists. Absent edges (including out-of-range arguments)
// yield the zero weight and false; the boolean is the authoritative
// presence signal.
// Complexity: O(1) for the membership test, O(deg(from)) for the weight.
func (g *Graph[T]) EdgeWeight(from, to int) (T, bool) {
	var zero T
	u, err := g.index(from)
	if err != nil {
		return zero, false
	}
	v, err := g.index(to)
	if err != nil {
		return zero, false
	}
	if _, ok := g.present[u][v]; !ok {
		return zero, false
	}
	for _, a := range g.adj[u] {
		if a.to == v {
			return a.w, true
		}
	}

	return zero, false
}

// index translates a 1-based public vertex number to the 0-based
// internal index, rejecting out-of-range values.
func (g *Graph[T]) index(v int) (int, error) {
	if v < 1 || v > g.n {
		return 0, fmt.Errorf("%w: %d (want 1..%d)", ErrVertexOutOfRange, v, g.n)
	}

	return v - 1, nil
}

// resetDist fills the shared distance scratch with the MaxOf sentinel,
// which doubles as the "unvisited" marker inside every traversal.
func (g *Graph[T]) resetDist() {
	inf := MaxOf[T]()
	for i := range g.dist {
		g.dist[i] = inf
	}
}
