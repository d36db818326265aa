// Package chains maintains a union of vertex-disjoint simple paths
// ("chains"): every vertex starts as its own one-vertex chain, and Link
// welds two different chains together end to end. Interior vertices can
// never be linked again, and a chain can never be joined to itself, so the
// structure stays a set of simple paths — no cycles, no branching.
//
// Internally this is a union-find with path compression and union by size,
// extended with per-root endpoint bookkeeping and per-vertex degrees.
// Vertices are 1-based at the public boundary, like the rest of the
// toolbox.
//
// Complexity: Link, SameChain, ChainEnds and Size run in near-constant
// amortized time (inverse Ackermann); memory is O(n).
package chains

import (
	"errors"
	"fmt"
)

// Sentinel errors for chain operations.
var (
	// ErrVertexOutOfRange indicates a vertex argument outside 1..n.
	ErrVertexOutOfRange = errors.New("chains: vertex out of range")

	// ErrNotEndpoint indicates an attempt to link through an interior
	// vertex (degree 2).
	ErrNotEndpoint = errors.New("chains: vertex is not a chain endpoint")

	// ErrSameChain indicates an attempt to link a chain to itself, which
	// would close a cycle.
	ErrSameChain = errors.New("chains: vertices already on the same chain")
)

// Chains is the disjoint-chain structure over vertices 1..n.
type Chains struct {
	parent []int    // union-find parent, self for roots
	size   []int    // per-root chain length in vertices
	deg    []int    // per-vertex link degree, at most 2
	ends   [][2]int // per-root: the chain's two endpoints (equal for singletons)
}

// New creates n singleton chains over vertices 1..n.
// A negative n is treated as zero.
func New(n int) *Chains {
	if n < 0 {
		n = 0
	}
	c := &Chains{
		parent: make([]int, n),
		size:   make([]int, n),
		deg:    make([]int, n),
		ends:   make([][2]int, n),
	}
	for i := 0; i < n; i++ {
		c.parent[i] = i
		c.size[i] = 1
		c.ends[i] = [2]int{i, i}
	}

	return c
}

// Len reports the number of vertices.
func (c *Chains) Len() int { return len(c.parent) }

// Link welds the chain ending at a to the chain ending at b (both 1-based)
// by adding the edge a—b. Both vertices must be endpoints of their chains
// (degree < 2) and must lie on different chains.
//
// Rejections (structure unchanged): ErrVertexOutOfRange, ErrNotEndpoint,
// ErrSameChain.
func (c *Chains) Link(a, b int) error {
	u, err := c.index(a)
	if err != nil {
		return err
	}
	v, err := c.index(b)
	if err != nil {
		return err
	}
	if c.deg[u] >= 2 {
		return fmt.Errorf("%w: %d", ErrNotEndpoint, a)
	}
	if c.deg[v] >= 2 {
		return fmt.Errorf("%w: %d", ErrNotEndpoint, b)
	}

	ru, rv := c.find(u), c.find(v)
	if ru == rv {
		// Covers both a==b and closing a path into a cycle.
		return fmt.Errorf("%w: %d and %d", ErrSameChain, a, b)
	}

	// The merged chain keeps the two far endpoints: the end of u's chain
	// that is not u, and likewise for v. Singletons are their own far end.
	newEnds := [2]int{c.otherEnd(ru, u), c.otherEnd(rv, v)}

	// Union by size: hang the smaller root under the larger.
	if c.size[ru] < c.size[rv] {
		ru, rv = rv, ru
	}
	c.parent[rv] = ru
	c.size[ru] += c.size[rv]
	c.ends[ru] = newEnds
	c.deg[u]++
	c.deg[v]++

	return nil
}

// SameChain reports whether a and b lie on the same chain.
// Out-of-range arguments report false.
func (c *Chains) SameChain(a, b int) bool {
	u, err := c.index(a)
	if err != nil {
		return false
	}
	v, err := c.index(b)
	if err != nil {
		return false
	}

	return c.find(u) == c.find(v)
}

// ChainEnds returns the two endpoints (1-based) of the chain containing v.
// For a singleton both values equal v; out-of-range arguments yield (0, 0).
func (c *Chains) ChainEnds(v int) (int, int) {
	i, err := c.index(v)
	if err != nil {
		return 0, 0
	}
	e := c.ends[c.find(i)]

	return e[0] + 1, e[1] + 1
}

// Size returns the number of vertices on the chain containing v,
// or 0 for out-of-range arguments.
func (c *Chains) Size(v int) int {
	i, err := c.index(v)
	if err != nil {
		return 0
	}

	return c.size[c.find(i)]
}

// find locates the root of i with iterative path compression.
func (c *Chains) find(i int) int {
	root := i
	for c.parent[root] != root {
		root = c.parent[root]
	}
	// Second pass: point everything on the walk straight at the root.
	for c.parent[i] != root {
		c.parent[i], i = root, c.parent[i]
	}

	return root
}

// otherEnd returns the endpoint of root's chain that is not v; if v is not
// an endpoint of that chain (a singleton links through itself), v itself.
func (c *Chains) otherEnd(root, v int) int {
	e := c.ends[root]
	switch v {
	case e[0]:
		return e[1]
	case e[1]:
		return e[0]
	default:
		return v
	}
}

// index translates a 1-based vertex to the 0-based internal index.
func (c *Chains) index(v int) (int, error) {
	if v < 1 || v > len(c.parent) {
		return 0, fmt.Errorf("%w: %d (want 1..%d)", ErrVertexOutOfRange, v, len(c.parent))
	}

	return v - 1, nil
}
