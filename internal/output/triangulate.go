package output

import "github.com/polysweep/tessellate/internal/geom"

// Triangle is three points in emission order.
type Triangle [3]geom.Point

// TriangulateMonotone triangulates a simple y-monotone polygon using the
// standard two-stack sweep (Emit passes it each inside face boundary as
// is; the sweep does not split faces into monotone pieces): walk the boundary in sweep order, merging the left and right
// chains, and peel off ears greedily from a small working stack. This is
// the textbook O(n) monotone-polygon triangulation, the same algorithm
// family poly2tri-go (pulled in by the pack's canvas module) implements.
func TriangulateMonotone(boundary []geom.Point) []Triangle {
	n := len(boundary)
	if n < 3 {
		return nil
	}
	if n == 3 {
		return []Triangle{{boundary[0], boundary[1], boundary[2]}}
	}

	order, onLeftChain := sweepOrder(boundary)

	var tris []Triangle
	stack := make([]int, 0, n)
	stack = append(stack, order[0], order[1])

	for i := 2; i < n; i++ {
		cur := order[i]
		top := stack[len(stack)-1]

		if onLeftChain[cur] != onLeftChain[top] {
			for len(stack) >= 2 {
				a := stack[len(stack)-1]
				b := stack[len(stack)-2]
				tris = append(tris, makeTriangle(boundary, a, b, cur))
				stack = stack[:len(stack)-1]
			}
			stack = []int{top, cur}
		} else {
			for len(stack) >= 2 {
				a := stack[len(stack)-1]
				b := stack[len(stack)-2]
				if !diagonalValid(boundary, b, a, cur, onLeftChain[cur]) {
					break
				}
				tris = append(tris, makeTriangle(boundary, a, b, cur))
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, cur)
		}
	}

	return tris
}

// makeTriangle always emits vertices in the boundary's own winding order:
// a triangle cut from a simple polygon, listed by increasing boundary
// index, follows the polygon's orientation. This is the convention the
// rest of the emission pipeline (and the convex merge step after it)
// expects.
func makeTriangle(boundary []geom.Point, a, b, c int) Triangle {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Triangle{boundary[a], boundary[b], boundary[c]}
}

// sweepOrder returns boundary indices ordered by sweep position, along
// with a parallel slice marking which of the polygon's two monotone
// chains (split at the boundary's min and max vertex) each index belongs
// to. "Left chain" here just means "the chain visited going one way
// around from the bottom vertex"; which physical side it's on doesn't
// matter to the triangulation, only whether two consecutive order[] picks
// share a chain.
func sweepOrder(boundary []geom.Point) (order []int, onLeftChain []bool) {
	n := len(boundary)
	minIdx, maxIdx := 0, 0
	for i, p := range boundary {
		if geom.SweepLess(p, boundary[minIdx]) {
			minIdx = i
		}
		if geom.SweepLess(boundary[maxIdx], p) {
			maxIdx = i
		}
	}

	onLeftChain = make([]bool, n)
	for i := minIdx; i != maxIdx; i = (i + 1) % n {
		onLeftChain[i] = true
	}
	onLeftChain[maxIdx] = true

	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Simple insertion sort by sweep order: boundaries produced by the
	// sweep are small (one mesh face), so this stays cheap and avoids
	// pulling in sort for a handful of elements per call.
	for i := 1; i < n; i++ {
		j := i
		for j > 0 && geom.SweepLess(boundary[order[j]], boundary[order[j-1]]) {
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}
	return order, onLeftChain
}

// diagonalValid reports whether connecting the current vertex to the
// second-from-top stack vertex stays inside the polygon, tested via the
// turn direction consistent with which chain we're walking.
func diagonalValid(boundary []geom.Point, b, a, cur int, leftChain bool) bool {
	ba := boundary[a].Sub(boundary[b])
	bc := boundary[cur].Sub(boundary[b])
	cross := ba.Cross(bc)
	if leftChain {
		return cross > 0
	}
	return cross < 0
}
