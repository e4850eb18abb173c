package p4est

// Link is a singly-linked list node holding its payload by value. Links
// are pool-allocated so the list can return every cell it borrows.
type Link[T any] struct {
	Data T
	next *Link[T]
}

// List is an intrusive singly-linked list over pool-allocated Links. If
// constructed with an external pool it borrows it for the list's
// lifetime; otherwise it owns a private one, destroyed with the list.
//
// Not safe for concurrent use without external synchronization.
type List[T any] struct {
	pool    *Pool[Link[T]]
	private bool
	first   *Link[T]
	last    *Link[T]
	count   int
}

// NewList returns an empty list. A nil pool makes the list allocate and
// own a private Link pool.
func NewList[T any](pool *Pool[Link[T]]) *List[T] {
	private := pool == nil
	if private {
		pool = NewPool[Link[T]](defaultChunkSize)
	}
	return &List[T]{pool: pool, private: private}
}

// Len reports the number of elements currently linked.
func (l *List[T]) Len() int {
	return l.count
}

// Front returns the first link, or nil if the list is empty.
func (l *List[T]) Front() *Link[T] {
	return l.first
}

// Prepend inserts v as the new first element.
func (l *List[T]) Prepend(v T) *Link[T] {
	link := l.pool.Alloc()
	link.Data = v
	link.next = l.first
	l.first = link
	if l.last == nil {
		l.last = link
	}
	l.count++
	return link
}

// Append inserts v as the new last element.
func (l *List[T]) Append(v T) *Link[T] {
	link := l.pool.Alloc()
	link.Data = v
	link.next = nil
	if l.last != nil {
		l.last.next = link
	} else {
		l.first = link
	}
	l.last = link
	l.count++
	return link
}

// InsertAfter inserts v immediately after after, which must belong to this
// list.
func (l *List[T]) InsertAfter(after *Link[T], v T) *Link[T] {
	link := l.pool.Alloc()
	link.Data = v
	link.next = after.next
	after.next = link
	if l.last == after {
		l.last = link
	}
	l.count++
	return link
}

// PopFront removes and returns the first element's value, releasing its
// link back to the pool. Popping an empty list is undefined and panics.
func (l *List[T]) PopFront() T {
	if l.first == nil {
		panic("p4est: PopFront on empty list")
	}
	link := l.first
	v := link.Data
	l.first = link.next
	if l.first == nil {
		l.last = nil
	}
	l.count--
	l.pool.Free(link)
	return v
}

// Destroy releases the list's private pool, if it owns one. Lists
// constructed with an external pool leave that pool untouched.
func (l *List[T]) Destroy() {
	if l.private {
		l.pool.Reset()
	}
}
