package p4est

import "sort"

// shrinkThreshold is the fraction of capacity below which Resize releases
// backing storage. Kept well under 1/growFactor so repeated grow/shrink at
// the boundary doesn't thrash.
const shrinkThreshold = 0.25

// growFactor is the capacity multiplier used when Resize needs more room
// than the array currently has.
const growFactor = 2

// DynArray is a resizable array of fixed-size elements, amortizing append
// to O(1) by doubling capacity on growth and releasing storage once the
// live count drops below a quarter of capacity.
//
// Element addresses returned by Index are NOT stable across a Resize or
// Push that triggers reallocation.
type DynArray[T any] struct {
	data []T
}

// NewDynArray returns an empty array.
func NewDynArray[T any]() *DynArray[T] {
	return &DynArray[T]{}
}

// Len reports the current element count.
func (a *DynArray[T]) Len() int {
	return len(a.data)
}

// Cap reports the current backing capacity.
func (a *DynArray[T]) Cap() int {
	return cap(a.data)
}

// Resize grows or shrinks the array to exactly n elements. New elements
// introduced by growth are zero-valued.
func (a *DynArray[T]) Resize(n int) {
	if n < 0 {
		panic("p4est: DynArray.Resize with negative count")
	}
	switch {
	case n > cap(a.data):
		newCap := cap(a.data)
		if newCap == 0 {
			newCap = 1
		}
		for newCap < n {
			newCap *= growFactor
		}
		grown := make([]T, n, newCap)
		copy(grown, a.data)
		a.data = grown
	case n < len(a.data) && cap(a.data) > 0 && float64(n) < shrinkThreshold*float64(cap(a.data)):
		shrunk := make([]T, n)
		copy(shrunk, a.data[:n])
		a.data = shrunk
	default:
		a.data = a.data[:n]
	}
}

// Push appends v, growing the array if necessary.
func (a *DynArray[T]) Push(v T) {
	n := len(a.data)
	a.Resize(n + 1)
	a.data[n] = v
}

// Index returns the address of the i-th element. The address is invalidated
// by any subsequent Resize or Push that reallocates.
func (a *DynArray[T]) Index(i int) *T {
	return &a.data[i]
}

// Slice exposes the live elements. The returned slice aliases the array's
// backing storage and is invalidated by a subsequent reallocating Resize.
func (a *DynArray[T]) Slice() []T {
	return a.data
}

// Sort orders the array in place using cmp's standard tri-valued semantics
// (negative if a < b, zero if equal, positive if a > b).
func (a *DynArray[T]) Sort(cmp func(a, b *T) int) {
	sort.SliceStable(a.data, func(i, j int) bool {
		return cmp(&a.data[i], &a.data[j]) < 0
	})
}
