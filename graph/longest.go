package graph

// MaxPath returns an approximate longest-path weight ("diameter") using the
// double-sweep technique: a single-visit traversal from vertex 1 finds the
// farthest vertex by accumulated weight, and a second sweep from that vertex
// returns its maximum recorded distance.
//
// Precondition for exactness: the portion of the graph reachable from the
// start behaves as a tree, i.e. the traversal never re-enters a vertex
// through a different, heavier path. Each sweep visits every vertex at most
// once, which buys linear time at the cost of correctness on general
// graphs: with cycles or multiple routes to the same vertex the result is
// a lower bound on the true longest simple path, not necessarily exact.
// (The general problem is NP-hard; fixing this is out of scope.)
//
// An empty graph returns the zero weight. Overwrites the graph's shared
// distance scratch.
// Complexity: O(V+E), two sweeps.
func (g *Graph[T]) MaxPath() T {
	var zero T
	if g.n == 0 {
		return zero
	}
	far, _ := g.sweep(0)
	_, best := g.sweep(far)

	return best
}

// sweep runs one single-visit depth-first pass from src (0-based),
// accumulating edge weights along the traversal tree, and returns the
// farthest vertex together with its accumulated distance.
//
// A vertex is assigned a distance at most once per sweep (the MaxOf
// sentinel in the scratch marks "unvisited"); arcs into an already
// visited vertex are ignored for distance updates.
func (g *Graph[T]) sweep(src int) (farthest int, best T) {
	g.resetDist()
	inf := MaxOf[T]()
	var zero T
	g.dist[src] = zero
	farthest, best = src, zero

	stack := make([]int, 0, g.n)
	stack = append(stack, src)

	var u int
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.dist[u] > best {
			best = g.dist[u]
			farthest = u
		}
		for _, a := range g.adj[u] {
			if g.dist[a.to] != inf {
				continue // single-visit rule
			}
			g.dist[a.to] = g.dist[u] + a.w
			stack = append(stack, a.to)
		}
	}

	return farthest, best
}
