package group

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Encoder writes one value of T to w as a single self-delimiting frame.
// Decoder reads exactly one such frame back. Both are capabilities
// plugged into the collectives (spec.md §9's "parameterize over a Codec
// capability" re-architecture note) rather than a fixed set of
// hard-coded payload kinds.
type Encoder[T any] func(w io.Writer, v T) error
type Decoder[T any] func(r *bufio.Reader) (T, error)

// writeFrame writes one newline-terminated, space-separated record in
// a single Write call, so the message occupies exactly one textual
// line on the wire (spec.md §4.2: "a textual framing is acceptable
// provided self-delimitation holds").
func writeFrame(w io.Writer, tag string, fields ...string) error {
	var b strings.Builder
	b.WriteString(tag)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// readFrame reads one newline-delimited frame and splits it into a tag
// and its fields. Exported within the module (via the Decode* wrappers
// and mst's own codec) so payload kinds outside the three built into
// spec.md §4.2 can still honor the self-delimiting contract.
func readFrame(r *bufio.Reader) (tag string, fields []string, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", nil, malformed("unexpected EOF reading frame: %v", err)
	}
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil, malformed("empty frame")
	}
	return parts[0], parts[1:], nil
}

// ReadFrame is readFrame exported for payload kinds defined outside
// this package (the edge record in pkg/mst) that still need to share
// the self-delimiting wire discipline.
func ReadFrame(r *bufio.Reader) (tag string, fields []string, err error) {
	return readFrame(r)
}

// WriteFrame is writeFrame exported for the same reason.
func WriteFrame(w io.Writer, tag string, fields ...string) error {
	return writeFrame(w, tag, fields...)
}

// MalformedError wraps decode-path errors from outside this package
// (e.g. pkg/mst's edge codec) with the same sentinel used internally.
func MalformedError(format string, args ...any) error {
	return malformed(format, args...)
}

// EncodeInt and DecodeInt form the codec for a single signed integer.
func EncodeInt(w io.Writer, v int64) error {
	return writeFrame(w, "I", strconv.FormatInt(v, 10))
}

func DecodeInt(r *bufio.Reader) (int64, error) {
	tag, fields, err := readFrame(r)
	if err != nil {
		return 0, err
	}
	if tag != "I" || len(fields) != 1 {
		return 0, malformed("expected int frame, got tag %q fields %v", tag, fields)
	}
	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, malformed("bad int %q: %v", fields[0], err)
	}
	return x, nil
}

// EncodeIntSlice and DecodeIntSlice form the codec for an ordered
// sequence of signed integers (spec.md §4.2's second supported kind).
func EncodeIntSlice(w io.Writer, v []int64) error {
	fields := make([]string, 0, len(v)+1)
	fields = append(fields, strconv.Itoa(len(v)))
	for _, x := range v {
		fields = append(fields, strconv.FormatInt(x, 10))
	}
	return writeFrame(w, "S", fields...)
}

func DecodeIntSlice(r *bufio.Reader) ([]int64, error) {
	tag, fields, err := readFrame(r)
	if err != nil {
		return nil, err
	}
	if tag != "S" || len(fields) == 0 {
		return nil, malformed("expected sequence frame, got tag %q", tag)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, malformed("bad sequence length %q: %v", fields[0], err)
	}
	if len(fields)-1 != n {
		return nil, malformed("sequence length mismatch: header says %d, got %d", n, len(fields)-1)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		x, err := strconv.ParseInt(fields[i+1], 10, 64)
		if err != nil {
			return nil, malformed("bad sequence element %q: %v", fields[i+1], err)
		}
		out[i] = x
	}
	return out, nil
}
