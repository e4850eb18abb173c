package p4est

// Initializer populates the payload of a newly created quadrant. It must
// not change the quadrant's coordinates or level.
type Initializer[T any] func(tree *Tree, quad *Quadrant, data *T)

// CompleteRegion builds, into result, the unique sorted sequence of
// largest-possible quadrants tiling the half-open Z-order interval
// (q1, q2), optionally prefixed with q1 and suffixed with q2. result must
// be empty on entry. linkPool supplies the work list's scratch cells
// (quadrants are held by value in each Link, per the package's design
// note on avoiding a second indirection) and is left with the same live
// count it had on entry; dataPool supplies one payload cell per emitted
// quadrant (when init is non-nil) and grows by exactly
// len(result.Quadrants) - includeQ1 - includeQ2 quadrants' worth of
// cells.
//
// Preconditions (violations panic, per the package's assert-and-abort
// error model): q1 and q2 valid, Compare(q1, q2) < 0, result empty.
func CompleteRegion[T any](
	q1, q2 Quadrant,
	includeQ1, includeQ2 bool,
	result *Tree,
	linkPool *Pool[Link[Quadrant]],
	dataPool *Pool[T],
	init Initializer[T],
) {
	if !IsValid(q1) || !IsValid(q2) {
		panic("p4est: CompleteRegion requires valid q1, q2")
	}
	if Compare(q1, q2) >= 0 {
		panic("p4est: CompleteRegion requires Compare(q1, q2) < 0")
	}
	if result.Len() != 0 {
		panic("p4est: CompleteRegion requires an empty result tree")
	}

	entryCount := linkPool.Count()
	var dataEntryCount int
	if dataPool != nil {
		dataEntryCount = dataPool.Count()
	}

	if includeQ1 {
		result.Append(q1)
	}

	ancestor := NearestCommonAncestor(q1, q2)
	work := NewList[Quadrant](linkPool)

	for _, c := range Children(ancestor) {
		work.Append(c)
	}

	for work.Len() > 0 {
		w := work.PopFront()

		switch {
		case Compare(q1, w) < 0 && Compare(w, q2) < 0 && !IsAncestor(w, q2):
			result.Append(withData(w, dataPool, init, result))

		case IsAncestor(w, q1) || IsAncestor(w, q2):
			children := Children(w)
			for i := len(children) - 1; i >= 0; i-- {
				work.Prepend(children[i])
			}

		default:
			// w lies entirely below q1 or entirely above q2: discard.
		}
	}

	if includeQ2 {
		result.Append(q2)
	}

	work.Destroy()

	if linkPool.Count() != entryCount {
		panic("p4est: CompleteRegion leaked or over-freed link pool cells")
	}

	if dataPool != nil && init != nil {
		want := len(result.Quadrants)
		if includeQ1 {
			want--
		}
		if includeQ2 {
			want--
		}
		if dataPool.Count()-dataEntryCount != want {
			panic("p4est: CompleteRegion data pool accounting mismatch")
		}
	}
}

// withData allocates q's payload cell from dataPool (when init is
// non-nil) and runs init on it, returning q with Data set to the new
// cell's address.
func withData[T any](q Quadrant, dataPool *Pool[T], init Initializer[T], tree *Tree) Quadrant {
	if init == nil || dataPool == nil {
		return q
	}
	cell := dataPool.Alloc()
	init(tree, &q, cell)
	q.Data = cell
	return q
}
