// Package mst is the demonstration client described in spec.md §1: it
// computes a Minimum Spanning Tree with Prim's algorithm, scattering
// candidate vertices across a group.Group and using AllReduce to agree
// on the lightest crossing edge each iteration. Per spec.md its only
// dependency on the core messaging substrate is the value type it
// reduces (Edge) and the core's generic Codec/Reducer capabilities —
// never the reverse.
package mst

import (
	"bufio"
	"encoding/binary"
	"hash/fnv"
	"io"
	"strconv"

	"github.com/su45/psim/pkg/group"
)

// Edge is the reduction payload described in spec.md §6: an unordered
// pair of vertex indices and an integer weight. Equality is commutative
// on the endpoints; Weight participates in neither equality nor the
// hash.
type Edge struct {
	U, V   int
	Weight int64
}

// Equal tests for commutative equality: {u,v,w} == {v,u,w}.
func (e Edge) Equal(o Edge) bool {
	return (e.U == o.U && e.V == o.V) || (e.U == o.V && e.V == o.U)
}

// Hash maps an edge's endpoints to a bucket: sum of the endpoints'
// hashes, ignoring their order (spec.md §6).
func (e Edge) Hash() uint64 {
	return hashVertex(e.U) + hashVertex(e.V)
}

func hashVertex(v int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(v)))
	h.Write(buf[:])
	return h.Sum64()
}

// EdgeMin and EdgeMax are the built-in edge reducers from spec.md §6:
// compare by weight, ties broken by preferring the left operand (the
// open question in spec.md §9, normalized that way here).
func EdgeMin(a, b Edge) Edge {
	if b.Weight < a.Weight {
		return b
	}
	return a
}

func EdgeMax(a, b Edge) Edge {
	if b.Weight > a.Weight {
		return b
	}
	return a
}

// EncodeEdge and DecodeEdge are Edge's group.Encoder/group.Decoder
// pair, built on the core codec's exported frame helpers so the edge
// record honors the same self-delimiting wire discipline as the
// built-in int and int-sequence kinds without the core package needing
// to know Edge exists.
func EncodeEdge(w io.Writer, e Edge) error {
	return group.WriteFrame(w, "E",
		strconv.Itoa(e.U),
		strconv.Itoa(e.V),
		strconv.FormatInt(e.Weight, 10),
	)
}

func DecodeEdge(r *bufio.Reader) (Edge, error) {
	tag, fields, err := group.ReadFrame(r)
	if err != nil {
		return Edge{}, err
	}
	if tag != "E" || len(fields) != 3 {
		return Edge{}, group.MalformedError("expected edge frame, got tag %q fields %v", tag, fields)
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return Edge{}, group.MalformedError("bad edge endpoint %q: %v", fields[0], err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return Edge{}, group.MalformedError("bad edge endpoint %q: %v", fields[1], err)
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Edge{}, group.MalformedError("bad edge weight %q: %v", fields[2], err)
	}
	return Edge{U: u, V: v, Weight: w}, nil
}
