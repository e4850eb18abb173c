package p4est

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolAllocStableAddresses(t *testing.T) {
	p := NewPool[int](4)
	cells := make([]*int, 20)
	for i := range cells {
		cells[i] = p.Alloc()
		*cells[i] = i
	}
	assert.Equal(t, 20, p.Count())
	for i, c := range cells {
		assert.Equal(t, i, *c, "address must remain stable across further chunk growth")
	}
}

func TestPoolReusesFreedCells(t *testing.T) {
	p := NewPool[int](4)
	a := p.Alloc()
	*a = 42
	p.Free(a)
	assert.Equal(t, 0, p.Count())
	b := p.Alloc()
	assert.Equal(t, a, b, "Alloc should reuse the most recently freed cell")
	assert.Equal(t, 0, *b, "reused cells are zeroed")
}

func TestPoolDoubleFreePanics(t *testing.T) {
	p := NewPool[int](4)
	a := p.Alloc()
	p.Free(a)
	assert.Panics(t, func() { p.Free(a) })
}

func TestPoolReset(t *testing.T) {
	p := NewPool[int](4)
	for i := 0; i < 10; i++ {
		p.Alloc()
	}
	p.Reset()
	assert.Equal(t, 0, p.Count())
	// Cells should be reusable without panics or new chunk allocation.
	for i := 0; i < 10; i++ {
		p.Alloc()
	}
	assert.Equal(t, 10, p.Count())
}

func TestPoolCountTracksAllocFree(t *testing.T) {
	p := NewPool[int](8)
	var live []*int
	for i := 0; i < 5; i++ {
		live = append(live, p.Alloc())
	}
	assert.Equal(t, 5, p.Count())
	p.Free(live[2])
	assert.Equal(t, 4, p.Count())
}
