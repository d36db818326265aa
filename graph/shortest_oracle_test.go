// Package graph_test: randomized cross-check of the Dijkstra branch against
// gonum's shortest-path implementation as an independent oracle.
package graph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/torvik/algopad/graph"
)

// TestMinPath_AgainstGonumOracle builds random directed weighted graphs and
// compares every source's distances with gonum's DijkstraFrom.
func TestMinPath_AgainstGonumOracle(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		n := 8 + r.Intn(5)
		g := graph.New[int64](true, n)
		wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
		for i := 0; i < n; i++ {
			wg.AddNode(simple.Node(int64(i)))
		}

		for i := 0; i < 3*n; i++ {
			u, v := 1+r.Intn(n), 1+r.Intn(n)
			w := int64(1 + r.Intn(20))
			if err := g.AddWeightedEdge(u, v, w); err != nil {
				continue // loops and duplicates, skip in both graphs
			}
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(u - 1)),
				T: simple.Node(int64(v - 1)),
				W: float64(w),
			})
		}

		for s := 1; s <= n; s++ {
			oracle := path.DijkstraFrom(simple.Node(int64(s-1)), wg)
			dist, ok, err := g.MinPathAll(s)
			require.NoError(t, err)
			for v := 1; v <= n; v++ {
				want := oracle.WeightTo(int64(v - 1))
				if math.IsInf(want, 1) {
					assert.False(t, ok[v-1], "trial %d: %d→%d should be unreachable", trial, s, v)
					_, perr := g.MinPath(s, v)
					if s != v {
						assert.ErrorIs(t, perr, graph.ErrNoPath)
					}

					continue
				}
				require.True(t, ok[v-1], "trial %d: %d→%d should be reachable", trial, s, v)
				assert.Equal(t, int64(want), dist[v-1], "trial %d: dist %d→%d", trial, s, v)

				single, perr := g.MinPath(s, v)
				require.NoError(t, perr)
				assert.Equal(t, int64(want), single)
			}
		}
	}
}
