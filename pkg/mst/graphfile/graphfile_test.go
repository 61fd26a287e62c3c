package graphfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/su45/psim/pkg/mst"
)

const fixture = `5 7
0 1 2
0 2 3
1 2 1
1 3 4
2 3 5
2 4 6
3 4 7
`

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices)

	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	require.Equal(t, int64(1), w)

	// Undirected: the edge must read the same from either endpoint.
	w2, ok := g.Weight(2, 1)
	require.True(t, ok)
	require.Equal(t, w, w2)

	_, ok = g.Weight(0, 4)
	require.False(t, ok)
}

func TestParseTruncatedIsError(t *testing.T) {
	_, err := Parse(strings.NewReader("5 7\n0 1 2\n"))
	require.Error(t, err)
}

func TestSnapshotRoundTrip(t *testing.T) {
	edges := []mst.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: 1},
		{U: 1, V: 3, Weight: 4},
		{U: 2, V: 4, Weight: 6},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, edges))

	got, err := ReadSnapshot(&buf)
	require.NoError(t, err)
	require.Equal(t, edges, got)
}
