package group

import "math"

// Predicate is a pure function answering "may rank i send directly to
// rank j in a group of size p?" (spec.md §4.4). Same arguments must
// always yield the same answer within a run.
type Predicate func(i, j, p int) bool

// Switch and Bus both permit any direct send; spec.md §9 notes the two
// names are documentary aliases of the same predicate in the original.
func Switch(i, j, p int) bool {
	return true
}

// Bus is an alias of Switch.
var Bus = Switch

// Mesh1 connects ranks adjacent on an open 1-D line. The original
// formula is (i-j)^2 == 1; spec.md requires the equivalent, clearer
// |i-j| == 1 form while preserving the exact same predicate.
func Mesh1(i, j, p int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d == 1
}

// Torus1 is Mesh1 with wraparound, i.e. a 1-D ring.
func Torus1(i, j, p int) bool {
	return (i-j+p)%p == 1 || (j-i+p)%p == 1
}

// meshSide returns floor(sqrt(p) + 0.1), matching the original's
// integer truncation of a slightly-nudged square root.
func meshSide(p int) int {
	return int(math.Sqrt(float64(p)) + 0.1)
}

// Mesh2 connects ranks adjacent (no wraparound) on a q x q grid, where
// q = meshSide(p).
func Mesh2(i, j, p int) bool {
	q := meshSide(p)
	a := (i%q - j%q)
	b := (i/q - j/q)
	return (a*a == 1 && b == 0) || (a == 0 && b*b == 1)
}

// Torus2 is Mesh2 with wraparound in both grid dimensions.
func Torus2(i, j, p int) bool {
	q := meshSide(p)
	a := (i%q - j%q + q) % q
	b := (i/q - j/q + q) % q
	c := (j%q - i%q + q) % q
	d := (j/q - i/q + q) % q
	return (a == 0 && b == 1) || (a == 1 && b == 0) ||
		(c == 0 && d == 1) || (c == 1 && d == 0)
}

// Tree connects each rank to its parent/child in a 0-rooted binary
// tree: i == (j-1)/2 or j == (i-1)/2 (integer division, truncating
// toward zero as in the original).
func Tree(i, j, p int) bool {
	return i == (j-1)/2 || j == (i-1)/2
}
