package output

import (
	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/options"
	"github.com/polysweep/tessellate/internal/orient"
)

// polygon is an emitted contour under construction: its points plus a
// live flag so MergeConvex can drop absorbed triangles without
// reslicing the working set on every merge.
type polygon struct {
	points []geom.Point
	live   bool
}

// MergeConvex greedily merges adjacent triangles across their shared
// edge whenever doing so doesn't introduce a reflex vertex, repeating
// until no more merges apply. Each candidate is tested on its own: the
// two polygons sharing the edge are fused and every turn of the result is
// re-checked for one consistent sign (isConvex); no running per-region
// vertex count is kept.
func MergeConvex(tris []Triangle, epsilon float64) [][]geom.Point {
	polys := make([]*polygon, len(tris))
	for i, t := range tris {
		polys[i] = &polygon{points: []geom.Point{t[0], t[1], t[2]}, live: true}
	}

	progress := true
	for progress {
		progress = false
		for i := 0; i < len(polys); i++ {
			if !polys[i].live {
				continue
			}
			for j := i + 1; j < len(polys); j++ {
				if !polys[j].live {
					continue
				}
				if merged, ok := tryMerge(polys[i].points, polys[j].points, epsilon); ok {
					polys[i].points = merged
					polys[j].live = false
					progress = true
				}
			}
		}
	}

	var out [][]geom.Point
	for _, p := range polys {
		if p.live {
			out = append(out, p.points)
		}
	}
	return out
}

// tryMerge attempts to fuse a and b across a shared edge, returning the
// merged convex polygon's points if the result stays convex everywhere.
func tryMerge(a, b []geom.Point, epsilon float64) ([]geom.Point, bool) {
	ai, bi, ok := sharedEdge(a, b)
	if !ok {
		return nil, false
	}

	merged := spliceAcrossEdge(a, ai, b, bi)
	if isConvex(merged, epsilon) {
		return merged, true
	}
	return nil, false
}

// sharedEdge finds indices (ai, bi) such that a[ai]->a[ai+1] is the exact
// reverse of some edge in b, i.e. the two polygons share that edge with
// opposite orientation (as adjacent triangles from the same
// triangulation always do).
func sharedEdge(a, b []geom.Point) (ai, bi int, ok bool) {
	for i := range a {
		p, q := a[i], a[(i+1)%len(a)]
		for j := range b {
			r, s := b[j], b[(j+1)%len(b)]
			if p.Eq(s) && q.Eq(r) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// spliceAcrossEdge builds the merged boundary: walk a starting just after
// the shared edge all the way around, then splice in b's vertices
// (excluding the two shared endpoints) starting just after its matching
// side of the edge.
func spliceAcrossEdge(a []geom.Point, ai int, b []geom.Point, bi int) []geom.Point {
	n, m := len(a), len(b)
	merged := make([]geom.Point, 0, n+m-2)

	for k := 0; k < n; k++ {
		merged = append(merged, a[(ai+1+k)%n])
	}
	// merged now runs from a[ai+1] (the shared edge's end) round to a[ai]
	// (its start); b's remaining vertices (skipping its two shared
	// endpoints) lead from that start back to the end, so they follow
	// a[ai].
	for k := 1; k < m-1; k++ {
		merged = append(merged, b[(bi+1+k)%m])
	}
	return merged
}

// isConvex reports whether every consecutive turn of points shares the
// same orientation sign (collinear turns are tolerated).
func isConvex(points []geom.Point, epsilon float64) bool {
	n := len(points)
	if n < 3 {
		return false
	}
	var sign orient.Orientation
	for i := 0; i < n; i++ {
		o := orient.Of(points[i], points[(i+1)%n], points[(i+2)%n], options.WithEpsilon(epsilon))
		if o == orient.Collinear {
			continue
		}
		if sign == orient.Collinear {
			sign = o
		} else if o != sign {
			return false
		}
	}
	return true
}
