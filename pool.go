package p4est

import "log"

// defaultChunkSize is the element count carved from the underlying
// allocator each time the pool runs out of chunk space.
const defaultChunkSize = 64

// chunkWarnThreshold logs a single diagnostic line once a pool has grown
// to this many chunks, since unbounded chunk growth usually means a
// caller is leaking cells rather than freeing them.
const chunkWarnThreshold = 1 << 14

// Pool is a fixed-element-size allocator with stable addresses: once
// Alloc returns a *T, that address remains valid until the matching Free
// (or a Reset of the whole pool). Freed cells are buffered in a free list
// and reused by the next Alloc before any new chunk is carved. Chunks, once
// carved, are never relocated or released.
//
// Not safe for concurrent use without external synchronization.
type Pool[T any] struct {
	chunkSize int
	chunks    [][]T
	chunkIdx  int // chunk currently being carved from
	next      int // next free slot within chunks[chunkIdx]
	freeList  []*T
	count     int // live cells: allocated - freed
	warned    bool
}

// NewPool returns an empty pool that carves new chunks of chunkSize
// elements at a time. A non-positive chunkSize falls back to
// defaultChunkSize.
func NewPool[T any](chunkSize int) *Pool[T] {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Pool[T]{chunkSize: chunkSize}
}

// Count reports the number of live (allocated, not yet freed) cells.
func (p *Pool[T]) Count() int {
	return p.count
}

// Alloc returns the address of a fresh, zero-valued cell, reusing a freed
// cell if one is available.
func (p *Pool[T]) Alloc() *T {
	p.count++
	if n := len(p.freeList); n > 0 {
		cell := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		var zero T
		*cell = zero
		return cell
	}
	for p.chunkIdx < len(p.chunks) && p.next >= p.chunkSize {
		p.chunkIdx++
		p.next = 0
	}
	if p.chunkIdx >= len(p.chunks) {
		p.chunks = append(p.chunks, make([]T, p.chunkSize))
		if len(p.chunks) == chunkWarnThreshold && !p.warned {
			log.Printf("p4est: pool grew to %d chunks of %d elements", chunkWarnThreshold, p.chunkSize)
			p.warned = true
		}
	}
	cell := &p.chunks[p.chunkIdx][p.next]
	p.next++
	return cell
}

// Free returns cell to the pool. Freeing an address this pool did not
// issue, or double-freeing, is a caller bug and panics.
func (p *Pool[T]) Free(cell *T) {
	owned := false
	for _, chunk := range p.chunks {
		for i := range chunk {
			if &chunk[i] == cell {
				owned = true
				break
			}
		}
	}
	if !owned {
		panic("p4est: free of a cell this pool did not issue")
	}
	for _, f := range p.freeList {
		if f == cell {
			panic("p4est: double free of pool cell")
		}
	}
	p.count--
	p.freeList = append(p.freeList, cell)
}

// Reset drops every live cell and returns Count to zero without releasing
// the underlying chunks, so subsequent Allocs reuse already-carved memory.
func (p *Pool[T]) Reset() {
	p.chunkIdx = 0
	p.next = 0
	p.freeList = p.freeList[:0]
	p.count = 0
}
