package mst

// Graph is an adjacency-matrix representation of an undirected
// weighted graph, sized as described in spec.md §1's "reading graph
// files, printing, CLI flags, adjacency-matrix storage" — explicitly
// out of the messaging substrate's scope, but needed by this client.
// Grounded on original_source/PSIM/primsAlgorithm.cpp's int** adjMatrix.
type Graph struct {
	NumVertices int
	adjacency   [][]int64
}

// NewGraph allocates an empty n x n adjacency matrix.
func NewGraph(numVertices int) *Graph {
	adj := make([][]int64, numVertices)
	for i := range adj {
		adj[i] = make([]int64, numVertices)
	}
	return &Graph{NumVertices: numVertices, adjacency: adj}
}

// AddEdge records an undirected edge; weight 0 is treated as "no edge"
// by Weight, matching the original's use of a zero-initialized matrix
// as the absence sentinel.
func (g *Graph) AddEdge(u, v int, weight int64) {
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight
}

// Weight reports the weight of edge (u,v) and whether it exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	w := g.adjacency[u][v]
	return w, w != 0
}
