package graph

import "container/heap"

// MinPath computes the minimum-cost path weight from s to t (both 1-based).
//
// Dispatch, decided at call time from graph properties:
//
//   - Uniform()==true AND Directed()==false → breadth-first search with
//     unit-increment distances; returns as soon as t is discovered.
//   - otherwise → Dijkstra with a lazy-decrease-key min-heap; returns the
//     moment t is settled.
//
// Returns ErrNoPath when t is unreachable from s (no distance value ever
// doubles as a "no path" marker), or ErrVertexOutOfRange for bad arguments.
// s == t yields the zero weight.
//
// Overwrites the graph's shared distance scratch; not safe for concurrent
// calls on the same instance.
// Complexity: O(V+E) for BFS, O((V+E) log V) for Dijkstra.
func (g *Graph[T]) MinPath(s, t int) (T, error) {
	var zero T
	src, err := g.index(s)
	if err != nil {
		return zero, err
	}
	dst, err := g.index(t)
	if err != nil {
		return zero, err
	}
	if src == dst {
		return zero, nil
	}
	if g.uniform && !g.directed {
		return g.bfsTo(src, dst)
	}

	return g.dijkstraTo(src, dst)
}

// MinPathAll computes minimum-cost path weights from s (1-based) to every
// vertex, using the same dispatch rule as MinPath but always running the
// traversal to exhaustion.
//
// Returns a fresh distance slice indexed by vertex-1 and a parallel
// reachability slice: ok[v-1]==false marks v unreachable, in which case
// dist[v-1] holds the MaxOf sentinel and carries no meaning. Both the
// single-target and the all-vertices form therefore report absence
// explicitly rather than through a sentinel distance.
//
// Overwrites the graph's shared distance scratch; not safe for concurrent
// calls on the same instance.
func (g *Graph[T]) MinPathAll(s int) (dist []T, ok []bool, err error) {
	src, err := g.index(s)
	if err != nil {
		return nil, nil, err
	}

	if g.uniform && !g.directed {
		g.bfsAll(src)
	} else {
		g.dijkstraAll(src)
	}

	// Copy the scratch out so the result survives the next query.
	dist = make([]T, g.n)
	copy(dist, g.dist)
	ok = make([]bool, g.n)
	inf := MaxOf[T]()
	for i, d := range dist {
		ok[i] = d != inf
	}

	return dist, ok, nil
}

// bfsTo runs a level-order traversal from src (0-based) and returns the
// distance of dst the moment it is discovered as a neighbor, without
// waiting for the full traversal.
func (g *Graph[T]) bfsTo(src, dst int) (T, error) {
	// 1) Sentinel-initialize the scratch; inf marks "not yet enqueued".
	g.resetDist()
	inf := MaxOf[T]()
	unit := T(1)
	var zero T
	g.dist[src] = zero

	// 2) Slice-backed FIFO queue seeded with the source.
	queue := make([]int, 0, g.n)
	queue = append(queue, src)

	// 3) Standard BFS: each vertex is enqueued at most once; a freshly
	//    discovered vertex sits one unit farther than its predecessor.
	var u int
	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		for _, a := range g.adj[u] {
			if g.dist[a.to] != inf {
				continue // already discovered
			}
			if a.to == dst {
				// Early exit: the first discovery is the shortest level.
				return g.dist[u] + unit, nil
			}
			g.dist[a.to] = g.dist[u] + unit
			queue = append(queue, a.to)
		}
	}

	return zero, ErrNoPath
}

// bfsAll runs the level-order traversal from src (0-based) to exhaustion,
// leaving distances in the shared scratch (inf = unreachable).
func (g *Graph[T]) bfsAll(src int) {
	g.resetDist()
	inf := MaxOf[T]()
	unit := T(1)
	var zero T
	g.dist[src] = zero

	queue := make([]int, 0, g.n)
	queue = append(queue, src)

	var u int
	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		for _, a := range g.adj[u] {
			if g.dist[a.to] != inf {
				continue
			}
			g.dist[a.to] = g.dist[u] + unit
			queue = append(queue, a.to)
		}
	}
}

// dijkstraTo settles vertices in increasing distance order and returns
// dst's distance the moment it is settled.
func (g *Graph[T]) dijkstraTo(src, dst int) (T, error) {
	r := g.newDijkstra(src)
	var it pqItem[T]
	for r.pq.Len() > 0 {
		// 1) Pop the smallest tentative distance.
		it = heap.Pop(&r.pq).(pqItem[T])

		// 2) Skip stale entries left behind by lazy decrease-key.
		if r.settled[it.v] {
			continue
		}

		// 3) Settle: with strictly positive weights this distance is final.
		r.settled[it.v] = true
		if it.v == dst {
			return it.d, nil
		}

		// 4) Relax outgoing arcs.
		g.relax(r, it)
	}

	var zero T

	return zero, ErrNoPath
}

// dijkstraAll runs the settle loop to queue exhaustion, leaving distances
// in the shared scratch (inf = unreachable).
func (g *Graph[T]) dijkstraAll(src int) {
	r := g.newDijkstra(src)
	var it pqItem[T]
	for r.pq.Len() > 0 {
		it = heap.Pop(&r.pq).(pqItem[T])
		if r.settled[it.v] {
			continue
		}
		r.settled[it.v] = true
		g.relax(r, it)
	}
}

// dijkstraRun holds the mutable state of one Dijkstra execution.
// Distances live in the graph's shared scratch, not here.
type dijkstraRun[T Weight] struct {
	settled []bool   // distance finalized, stale heap entries are skipped
	pq      minPQ[T] // lazy-decrease-key min-heap
}

// newDijkstra sentinel-initializes the scratch and seeds the heap with src.
func (g *Graph[T]) newDijkstra(src int) *dijkstraRun[T] {
	g.resetDist()
	var zero T
	g.dist[src] = zero

	r := &dijkstraRun[T]{
		settled: make([]bool, g.n),
		pq:      make(minPQ[T], 0, g.n),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, pqItem[T]{v: src, d: zero})

	return r
}

// relax attempts to improve the distance of every neighbor of it.v.
// Improvements push duplicate heap entries (lazy decrease-key); outdated
// ones are ignored when popped via the settled check.
func (g *Graph[T]) relax(r *dijkstraRun[T], it pqItem[T]) {
	var cand T
	for _, a := range g.adj[it.v] {
		if r.settled[a.to] {
			continue
		}
		cand = it.d + a.w
		// Strict improvement only, to avoid duplicate pushes on ties.
		if cand >= g.dist[a.to] {
			continue
		}
		g.dist[a.to] = cand
		heap.Push(&r.pq, pqItem[T]{v: a.to, d: cand})
	}
}

// pqItem pairs a 0-based vertex with its tentative distance from the source.
type pqItem[T Weight] struct {
	v int
	d T
}

// minPQ is a min-heap of pqItem ordered by distance ascending, driven by
// container/heap under the lazy-decrease-key discipline.
type minPQ[T Weight] []pqItem[T]

func (pq minPQ[T]) Len() int            { return len(pq) }
func (pq minPQ[T]) Less(i, j int) bool  { return pq[i].d < pq[j].d }
func (pq minPQ[T]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *minPQ[T]) Push(x interface{}) { *pq = append(*pq, x.(pqItem[T])) }

func (pq *minPQ[T]) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
