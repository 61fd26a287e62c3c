package group

import (
	"bufio"
	"io"
	"log"
)

// channel is the one-way byte-stream endpoint between a single writer
// rank and a single reader rank. It is backed by io.Pipe so that writes
// block until a matching read has drained them, mirroring the blocking
// behavior of an OS pipe described in spec.md §4.5. The reader side is
// wrapped once in a *bufio.Reader and kept for the lifetime of the
// channel: re-wrapping per message would silently drop any bytes
// buffered past a frame boundary, breaking per-pair FIFO ordering.
type channel struct {
	r *bufio.Reader
	w *io.PipeWriter
}

// matrix is the p x p set of directed channels connecting every ordered
// pair of ranks. Cell [s][d] is written only by rank s and read only by
// rank d. Diagonal cells exist for uniformity but are never used; the
// collectives route same-rank transfers in memory instead.
type matrix struct {
	p     int
	cells [][]channel
}

func newMatrix(p int) *matrix {
	m := &matrix{
		p:     p,
		cells: make([][]channel, p),
	}
	for s := 0; s < p; s++ {
		m.cells[s] = make([]channel, p)
		for d := 0; d < p; d++ {
			if s == d {
				continue
			}
			r, w := io.Pipe()
			m.cells[s][d] = channel{r: bufio.NewReader(r), w: w}
		}
	}
	log.Printf("group: allocated %dx%d channel matrix", p, p)
	return m
}

func (m *matrix) writer(src, dst int) io.Writer {
	return m.cells[src][dst].w
}

func (m *matrix) reader(src, dst int) *bufio.Reader {
	return m.cells[src][dst].r
}
