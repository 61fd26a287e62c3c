package group

// All collectives are single-program-multiple-data (spec.md §4.6):
// every rank in the group must call the same function with consistent
// source/destination arguments. They bypass the topology predicate via
// sendRaw/recvRaw because their traffic patterns are known correct by
// construction; a topology-restricted collective must be composed by
// the caller out of Send/Recv instead.

// sendSeq writes a rank-ordered sequence as a length frame followed by
// one element frame per item. Each element frame is already
// self-delimiting (it comes from an Encoder), so this is just their
// concatenation with a length prefix -- no separate sequence codec is
// needed for arbitrary payload types.
func sendSeq[T any](g *Group, dst int, items []T, enc Encoder[T]) error {
	if err := sendRaw(g, dst, int64(len(items)), EncodeInt); err != nil {
		return err
	}
	for _, item := range items {
		if err := sendRaw(g, dst, item, enc); err != nil {
			return err
		}
	}
	return nil
}

func recvSeq[T any](g *Group, src int, dec Decoder[T]) ([]T, error) {
	n, err := recvRaw(g, src, DecodeInt)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := int64(0); i < n; i++ {
		v, err := recvRaw(g, src, dec)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Broadcast is one-to-all broadcast (spec.md §4.6). On source, v is
// sent directly to every other rank and returned unchanged; every
// other rank receives and returns the value source held.
func Broadcast[T any](g *Group, source int, v T, enc Encoder[T], dec Decoder[T]) (T, error) {
	if g.Rank == source {
		for r := 0; r < g.P; r++ {
			if r == source {
				continue
			}
			if err := sendRaw(g, r, v, enc); err != nil {
				var zero T
				return zero, err
			}
		}
		return v, nil
	}
	return recvRaw(g, source, dec)
}

// Collect is all-to-one collect (spec.md §4.6). The destination's own
// value is spliced into the result at position rank=destination rather
// than sent over a self-loop channel (spec.md §9's deadlock-hygiene
// note); every other rank sends to destination and returns an empty
// sequence.
func Collect[T any](g *Group, destination int, v T, enc Encoder[T], dec Decoder[T]) ([]T, error) {
	if g.Rank == destination {
		out := make([]T, g.P)
		out[destination] = v
		for r := 0; r < g.P; r++ {
			if r == destination {
				continue
			}
			val, err := recvRaw(g, r, dec)
			if err != nil {
				return nil, err
			}
			out[r] = val
		}
		return out, nil
	}
	if err := sendRaw(g, destination, v, enc); err != nil {
		return nil, err
	}
	return []T{}, nil
}

// AllBroadcast is all-to-all broadcast (spec.md §4.6): Collect(0, v)
// followed by rank 0 fanning the full rank-ordered sequence out to
// every rank. Every rank returns the same length-p sequence.
func AllBroadcast[T any](g *Group, v T, enc Encoder[T], dec Decoder[T]) ([]T, error) {
	collected, err := Collect(g, 0, v, enc, dec)
	if err != nil {
		return nil, err
	}

	if g.Rank == 0 {
		for r := 1; r < g.P; r++ {
			if err := sendSeq(g, r, collected, enc); err != nil {
				return nil, err
			}
		}
		return collected, nil
	}
	return recvSeq(g, 0, dec)
}

// Scatter is one-to-all scatter (spec.md §4.6). With n = len(data) and
// h = ceil(n/p), ranks 0..p-2 each receive a chunk of size h; rank p-1
// receives whatever remains, which may be shorter (even empty when
// n < p). Every other rank receives its chunk over the channel; the
// source keeps its own chunk in memory, since diagonal channels are
// never used.
func Scatter[T any](g *Group, source int, data []T, enc Encoder[T], dec Decoder[T]) ([]T, error) {
	if g.Rank == source {
		n := len(data)
		h := 0
		if g.P > 0 {
			h = (n + g.P - 1) / g.P
		}
		chunks := make([][]T, g.P)
		for r := 0; r < g.P; r++ {
			var start, end int
			if r == g.P-1 {
				start, end = (g.P-1)*h, n
			} else {
				start, end = r*h, r*h+h
			}
			if start > n {
				start = n
			}
			if end > n {
				end = n
			}
			if start > end {
				start = end
			}
			chunks[r] = data[start:end]
		}
		for r := 0; r < g.P; r++ {
			if r == source {
				continue
			}
			if err := sendSeq(g, r, chunks[r], enc); err != nil {
				return nil, err
			}
		}
		return chunks[source], nil
	}
	return recvSeq(g, source, dec)
}

// Reduce is all-to-one reduce (spec.md §4.6): the destination folds
// operands left-to-right in ascending rank order, with rank 0's value
// as the initial accumulator. The destination splices its own value
// into the operand sequence instead of self-sending, same as Collect.
// op must be commutative as well as associative, since this ordering
// is an artifact of the splice, not a guarantee about arrival order.
// Non-destination ranks get back an undefined Optional (spec.md §4.6:
// "a zero/default value that must not be interpreted by the caller").
func Reduce[T any](g *Group, destination int, v T, op Reducer[T], enc Encoder[T], dec Decoder[T]) (Optional[T], error) {
	if g.Rank == destination {
		vals := make([]T, g.P)
		vals[destination] = v
		for r := 0; r < g.P; r++ {
			if r == destination {
				continue
			}
			val, err := recvRaw(g, r, dec)
			if err != nil {
				return NewUndefined[T](), err
			}
			vals[r] = val
		}
		acc := vals[0]
		for r := 1; r < g.P; r++ {
			acc = op(acc, vals[r])
		}
		return NewDefined(acc), nil
	}
	if err := sendRaw(g, destination, v, enc); err != nil {
		return NewUndefined[T](), err
	}
	return NewUndefined[T](), nil
}

// AllReduce is defined, per spec.md §4.6, as Broadcast(0, Reduce(0, v,
// op)): every rank ends with the same result.
func AllReduce[T any](g *Group, v T, op Reducer[T], enc Encoder[T], dec Decoder[T]) (T, error) {
	reduced, err := Reduce(g, 0, v, op, enc, dec)
	if err != nil {
		var zero T
		return zero, err
	}
	return Broadcast(g, 0, reduced.GetOrDefault(v), enc, dec)
}

// Barrier is defined, per spec.md §4.6, as AllBroadcast(0): every rank
// blocks until every other rank has entered. The return is a
// synchronization point, not a value.
func Barrier(g *Group) error {
	_, err := AllBroadcast(g, int64(0), EncodeInt, DecodeInt)
	return err
}
