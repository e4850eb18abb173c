package p4est

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListAppendAndPopFront(t *testing.T) {
	l := NewList[int](nil)
	l.Append(1)
	l.Append(2)
	l.Append(3)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.PopFront())
	assert.Equal(t, 2, l.PopFront())
	assert.Equal(t, 3, l.PopFront())
	assert.Equal(t, 0, l.Len())
}

func TestListPrepend(t *testing.T) {
	l := NewList[int](nil)
	l.Append(2)
	l.Prepend(1)
	assert.Equal(t, 1, l.PopFront())
	assert.Equal(t, 2, l.PopFront())
}

func TestListInsertAfter(t *testing.T) {
	l := NewList[int](nil)
	first := l.Append(1)
	l.Append(3)
	l.InsertAfter(first, 2)

	assert.Equal(t, 1, l.PopFront())
	assert.Equal(t, 2, l.PopFront())
	assert.Equal(t, 3, l.PopFront())
}

func TestListPopFrontOnEmptyPanics(t *testing.T) {
	l := NewList[int](nil)
	assert.Panics(t, func() { l.PopFront() })
}

func TestListSharesExternalPool(t *testing.T) {
	pool := NewPool[Link[int]](4)
	l1 := NewList[int](pool)
	l2 := NewList[int](pool)
	l1.Append(1)
	l2.Append(2)
	assert.Equal(t, 2, pool.Count())
	l1.PopFront()
	assert.Equal(t, 1, pool.Count())
}
