package p4est_test

import (
	"os"

	"github.com/vmasyagin/p4est"
)

func Example() {
	q1 := p4est.Quadrant{X: 0, Y: 0, Level: 1}
	q2 := p4est.Quadrant{X: 1 << 29, Y: 0, Level: 1}

	linkPool := p4est.NewPool[p4est.Link[p4est.Quadrant]](64)
	result := p4est.NewTree()

	// No payload type in this example, so dataPool and init are nil.
	p4est.CompleteRegion[struct{}](q1, q2, true, true, result, linkPool, nil, nil)

	p4est.Dump(result, "t0", os.Stdout)
	// Output:
	// t0 0 0 1 -
	// t0 536870912 0 1 S1
}
