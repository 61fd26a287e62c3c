package mst

import (
	"math"

	"github.com/su45/psim/pkg/group"
)

// RunSequential computes a Minimum Spanning Tree with the textbook,
// single-process Prim's algorithm, starting from vertex 0. Grounded on
// original_source/PSIM/primsAlgorithm.cpp's run_sequential.
func RunSequential(g *Graph) []Edge {
	visited := map[int]bool{0: true}
	var tree []Edge

	for len(visited) != g.NumVertices {
		best, ok := lightestCrossingEdge(g, visited, 0, g.NumVertices)
		if !ok {
			break
		}
		tree = append(tree, best)
		visited[best.V] = true
	}
	return tree
}

// RunParallel computes the same Minimum Spanning Tree by scattering
// the vertex range across a group.Group of size p and using
// group.AllReduce with EdgeMin to agree on the lightest crossing edge
// each iteration — the parallel loop described in spec.md §8 scenario
// 6. Grounded on original_source/PSIM/primsAlgorithm.cpp's
// run_parallel.
func RunParallel(p int, topology group.Predicate, g *Graph) ([]Edge, error) {
	var result []Edge

	err := group.Run(p, topology, func(gr *group.Group) {
		n := g.NumVertices
		h := 0
		if gr.P > 0 {
			h = (n + gr.P - 1) / gr.P
		}
		var vBegin, vEnd int
		if gr.Rank == gr.P-1 {
			vBegin, vEnd = (gr.P-1)*h, n
		} else {
			vBegin, vEnd = gr.Rank*h, gr.Rank*h+h
		}
		if vBegin > n {
			vBegin = n
		}
		if vEnd > n {
			vEnd = n
		}

		visited := map[int]bool{0: true}
		var tree []Edge

		for len(visited) != n {
			local, ok := lightestCrossingEdge(g, visited, vBegin, vEnd)
			if !ok {
				local = Edge{U: -1, V: -1, Weight: math.MaxInt64}
			}

			reduced, err := group.AllReduce(gr, local, EdgeMin, EncodeEdge, DecodeEdge)
			if err != nil {
				// Channel I/O failure: fatal per spec.md §4.7.
				panic(err)
			}
			tree = append(tree, reduced)
			visited[reduced.V] = true
		}

		if gr.Rank == 0 {
			result = tree
		}
	})

	return result, err
}

// lightestCrossingEdge scans every vertex already in the tree (X) for
// its lightest edge to a vertex in [rangeBegin, rangeEnd) not yet in X.
func lightestCrossingEdge(g *Graph, visited map[int]bool, rangeBegin, rangeEnd int) (Edge, bool) {
	var best Edge
	bestWeight := int64(math.MaxInt64)
	found := false

	for x := range visited {
		for k := rangeBegin; k < rangeEnd; k++ {
			if visited[k] {
				continue
			}
			w, ok := g.Weight(x, k)
			if !ok {
				continue
			}
			if !found || w < bestWeight {
				best = Edge{U: x, V: k, Weight: w}
				bestWeight = w
				found = true
			}
		}
	}
	return best, found
}
