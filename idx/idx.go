// Package idx holds the small composable primitives spec.md §2 calls out as
// "Utilities": a half-open index range, a generation counter for validating
// views, and an order-independent pair hash used to build stable identifiers
// for undirected relationships (contacts, links).
package idx

import "fmt"

// Range is a half-open integer interval [Start, End), used to lay out a
// node's contacts in a flat array (spec.md §4.2) and to report the
// contiguous block of freshly allocated structure ids after a transaction
// (spec.md §4.5.3).
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Contains reports whether i lies within [Start, End).
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// String renders the range as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Generation is a monotonically increasing tag attached to a container slot.
// A view holding (index, generation) is valid only while the container's
// slot still carries the same generation (spec.md §4.7, §9).
type Generation uint64

// PairHash64 combines two 32-bit ids into an order-independent 64-bit key,
// grounded on physics/body.go's pairID: the smaller id always occupies the
// high bits, so swapping a and b yields the same hash.
func PairHash64(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}
