/*Package p4est implements the encoded-coordinate quadrant algebra and the
complete-region refinement algorithm at the core of a quadtree-based
adaptive mesh: a bit-exact Morton-encoded (Z-order) spatial index over
axis-aligned quadrants, plus the iterative tree-completion algorithm
that builds the minimal sorted, non-overlapping sequence of quadrants
tiling the interval between two bounding quadrants.

A quadrant is a triple (x, y, level): x and y are coordinates in
[0, 2^MaxLevel), aligned to the cell size at that level; level 0 is the
root, covering the full domain. Quadrants compare under Z-order, the
total order obtained by comparing whichever of x or y diverges at the
coarser bit position (y, when both diverge at the same bit).

	level  coordinate alignment (low zero bits)  cell count per axis
	---------------------------------------------------------------
	0      MaxLevel zero bits                    1
	1      MaxLevel-1 zero bits                   2
	2      MaxLevel-2 zero bits                   4
	...

The package owns no shared state and is not internally synchronized:
Tree, Pool, DynArray, and List instances must not be used from more
than one goroutine at a time without external locking.
*/
package p4est
