// Package graphfile reads the graph-file format consumed by the
// original PSim driver and persists computed MSTs so a run can be
// replayed or diffed without recomputation. Both concerns are
// explicitly outside THE CORE per spec.md §1 ("reading graph files,
// printing, CLI flags, adjacency-matrix storage").
package graphfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/su45/psim/pkg/mst"
)

// Parse reads "nVerts nEdges" followed by nEdges "u v weight" lines,
// matching original_source/PSIM/primsAlgorithm.cpp's
// `infs >> nVerts >> nEdges` / `infs >> u >> v >> weight` loop.
func Parse(r io.Reader) (*mst.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	readInt := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("graphfile: reading %s: %w", what, err)
			}
			return 0, fmt.Errorf("graphfile: reading %s: %w", what, io.ErrUnexpectedEOF)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("graphfile: parsing %s %q: %w", what, sc.Text(), err)
		}
		return v, nil
	}

	nVerts, err := readInt("vertex count")
	if err != nil {
		return nil, err
	}
	nEdges, err := readInt("edge count")
	if err != nil {
		return nil, err
	}

	g := mst.NewGraph(nVerts)
	for i := 0; i < nEdges; i++ {
		u, err := readInt(fmt.Sprintf("edge %d endpoint u", i))
		if err != nil {
			return nil, err
		}
		v, err := readInt(fmt.Sprintf("edge %d endpoint v", i))
		if err != nil {
			return nil, err
		}
		w, err := readInt(fmt.Sprintf("edge %d weight", i))
		if err != nil {
			return nil, err
		}
		g.AddEdge(u, v, int64(w))
	}
	return g, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*mst.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// snapshotEdge mirrors mst.Edge for cbor encoding, kept distinct so the
// on-disk shape is insulated from the in-memory type growing fields.
type snapshotEdge struct {
	U, V   int
	Weight int64
}

// WriteSnapshot persists a computed MST (per spec.md §8 scenario 6, an
// edge multiset) as cbor.
func WriteSnapshot(w io.Writer, edges []mst.Edge) error {
	snaps := make([]snapshotEdge, len(edges))
	for i, e := range edges {
		snaps[i] = snapshotEdge{U: e.U, V: e.V, Weight: e.Weight}
	}
	return cbor.NewEncoder(w).Encode(snaps)
}

// WriteSnapshotFile writes a computed MST to path as cbor.
func WriteSnapshotFile(path string, edges []mst.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSnapshot(f, edges)
}

// ReadSnapshot reads a cbor-encoded MST back into memory.
func ReadSnapshot(r io.Reader) ([]mst.Edge, error) {
	var snaps []snapshotEdge
	if err := cbor.NewDecoder(r).Decode(&snaps); err != nil {
		return nil, err
	}
	edges := make([]mst.Edge, len(snaps))
	for i, s := range snaps {
		edges[i] = mst.Edge{U: s.U, V: s.V, Weight: s.Weight}
	}
	return edges, nil
}

// ReadSnapshotFile reads a cbor-encoded MST from path.
func ReadSnapshotFile(path string) ([]mst.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}
