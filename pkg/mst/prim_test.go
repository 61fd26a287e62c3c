package mst

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/su45/psim/pkg/group"
)

func fixtureGraph() *Graph {
	g := NewGraph(5)
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 3)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 4)
	g.AddEdge(2, 3, 5)
	g.AddEdge(2, 4, 6)
	g.AddEdge(3, 4, 7)
	return g
}

func sortedWeights(edges []Edge) []int64 {
	w := make([]int64, len(edges))
	for i, e := range edges {
		w[i] = e.Weight
	}
	sort.Slice(w, func(i, j int) bool { return w[i] < w[j] })
	return w
}

func TestSequentialPrimMatchesKnownMST(t *testing.T) {
	g := fixtureGraph()
	tree := RunSequential(g)
	require.Equal(t, []int64{1, 2, 4, 6}, sortedWeights(tree))

	var total int64
	for _, e := range tree {
		total += e.Weight
	}
	require.Equal(t, int64(13), total)
}

func TestParallelPrimMatchesSequential(t *testing.T) {
	g := fixtureGraph()
	want := RunSequential(g)

	for _, p := range []int{1, 2, 3, 5} {
		got, err := RunParallel(p, group.Switch, g)
		require.NoError(t, err)
		require.Equal(t, sortedWeights(want), sortedWeights(got), "p=%d", p)

		var total int64
		for _, e := range got {
			total += e.Weight
		}
		require.Equal(t, int64(13), total, "p=%d", p)
	}
}

func TestEdgeEqualityIsCommutative(t *testing.T) {
	a := Edge{U: 1, V: 2, Weight: 7}
	b := Edge{U: 2, V: 1, Weight: 7}
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestEdgeMinMaxTieBreaksLeft(t *testing.T) {
	a := Edge{U: 0, V: 1, Weight: 5}
	b := Edge{U: 2, V: 3, Weight: 5}
	require.Equal(t, a, EdgeMin(a, b))
	require.Equal(t, a, EdgeMax(a, b))
}
