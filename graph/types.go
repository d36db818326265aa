// Package graph defines the weight constraint, sentinel errors, and the
// Graph type with its constructor. Algorithms live in shortest.go,
// longest.go, and paths.go.
package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexOutOfRange indicates a vertex argument outside 1..VertexCount.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge insertion with equal endpoints.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge insertion between an already
	// connected ordered pair of vertices.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrNonPositiveWeight indicates an edge weight not strictly greater
	// than zero. Positivity is what keeps Dijkstra applicable (see doc.go).
	ErrNonPositiveWeight = errors.New("graph: weight must be positive")

	// ErrNoPath indicates that no path exists between the two vertices.
	ErrNoPath = errors.New("graph: no path between vertices")
)

// Weight enumerates the numeric types a Graph can carry as edge weights.
//
// Every member supplies total ordering (<), an additive identity (T(0)),
// a multiplicative identity (T(1), the BFS unit increment), and min/max
// sentinel values via MinOf and MaxOf. Unsigned integers are excluded:
// their minimum collides with the additive identity, which the engine
// uses as the "no weight" zero.
type Weight interface {
	int | int8 | int16 | int32 | int64 | float32 | float64
}

// Integer is the subset of Weight that supports bitwise path combiners
// (And, Or, Xor in paths.go).
type Integer interface {
	int | int8 | int16 | int32 | int64
}

// MaxOf returns the maximum representable value of T, used as the
// "unvisited / unreachable" distance sentinel inside traversals.
func MaxOf[T Weight]() T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = math.MaxInt
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}

	return v
}

// MinOf returns the minimum representable value of T.
func MinOf[T Weight]() T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	}

	return v
}

// arc is one adjacency entry: the 0-based target vertex and the edge weight.
type arc[T Weight] struct {
	to int
	w  T
}

// Graph is an in-memory weighted graph with a fixed vertex count.
//
// Vertices are numbered 1..VertexCount at every public boundary and stored
// 0-based internally. Edges are append-only: there is no removal and no
// weight update. All state, including the distance scratch buffer reused by
// shortest-path queries, is owned by a single goroutine (see doc.go).
type Graph[T Weight] struct {
	// Configuration, fixed at construction
	n        int  // vertex count
	directed bool // orientation of inserted edges

	// uniform stays true until the first AddWeightedEdge call and never
	// recovers; it gates the BFS fast path in shortest.go.
	uniform bool

	// Storage
	adj     [][]arc[T]         // adj[v]: (to, weight) pairs in insertion order
	present []map[int]struct{} // present[v]: targets already connected from v

	// dist is the shared distance scratch, overwritten destructively by
	// every shortest-path query and traversal sweep.
	dist []T
}

// New creates a Graph with vertexCount vertices (numbered 1..vertexCount)
// and no edges. A negative vertexCount is treated as zero.
// Complexity: O(V).
func New[T Weight](directed bool, vertexCount int) *Graph[T] {
	if vertexCount < 0 {
		vertexCount = 0
	}
	g := &Graph[T]{
		n:        vertexCount,
		directed: directed,
		uniform:  true,
		adj:      make([][]arc[T], vertexCount),
		present:  make([]map[int]struct{}, vertexCount),
		dist:     make([]T, vertexCount),
	}
	for i := range g.present {
		g.present[i] = make(map[int]struct{})
	}

	return g
}

// VertexCount reports the fixed number of vertices.
func (g *Graph[T]) VertexCount() int { return g.n }

// Directed reports whether inserted edges are one-way.
func (g *Graph[T]) Directed() bool { return g.directed }

// Uniform reports whether every edge so far was inserted through the
// unit-weight AddEdge path. Once AddWeightedEdge has been called the flag
// is false for the rest of the graph's life, whatever weight was supplied.
func (g *Graph[T]) Uniform() bool { return g.uniform }
