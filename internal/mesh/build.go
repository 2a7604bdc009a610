package mesh

import "github.com/polysweep/tessellate/internal/geom"

// AddContour stitches a single closed contour into the mesh as a cycle of
// n half-edge pairs, one per side (including the closing side back to
// points[0]). A simple closed contour has a fixed, fully-determined
// topology — every vertex has degree 2, and there are exactly two faces
// (one on each side of the whole ring) — so this builds the onext/lnext
// links directly from the index arithmetic of an n-cycle rather than
// growing the ring one generic Splice at a time; MakeEdge/Splice are for
// the sweep's incremental surgery on a mesh whose topology isn't known in
// advance, which a single closed input contour doesn't need.
//
// winding is the signed contribution each half-edge running in the
// contour's own direction makes to the winding number; its twin carries
// -winding. The tessellator passes 1 for every contour, so the sign an
// up-going edge contributes follows the contour's direction along it.
//
// epsilon is the same tolerance the sweep uses elsewhere; points separated
// by no more than epsilon on both axes are treated as coincident, and the
// zero-length edge between them is dropped before the ring is built —
// spec's "degenerate edges (zero length) are tolerated and removed during
// mesh simplification," rather than left in the mesh for the sweep to trip
// over.
//
// Degenerate contours (fewer than 3 points once deduplicated) are silently
// skipped, mirroring gbox's tessellator which drops degenerate input
// rather than erroring.
func (m *Mesh) AddContour(points []geom.Point, winding int, epsilon float64) {
	points = dedupeConsecutive(points, epsilon)
	n := len(points)
	if n < 3 {
		return
	}

	base := EdgeID(len(m.edges))
	vbase := VertexID(len(m.verts))
	fIn := m.newFace()
	fOut := m.newFace()

	m.edges = append(m.edges, make([]halfEdgeRecord, 2*n)...)
	m.verts = append(m.verts, make([]vertexRecord, n)...)

	edgeAt := func(i int) EdgeID { return base + EdgeID(2*((i%n+n)%n)) }
	vertAt := func(i int) VertexID { return vbase + VertexID((i%n+n)%n) }

	for i := 0; i < n; i++ {
		e := edgeAt(i)
		eSym := Sym(e)
		v := vertAt(i)

		m.verts[v] = vertexRecord{point: points[i], anEdge: e}

		m.edges[e] = halfEdgeRecord{
			origin:  v,
			onext:   Sym(edgeAt(i - 1)),
			lnext:   edgeAt(i + 1),
			face:    fIn,
			winding: winding,
		}
		m.edges[eSym] = halfEdgeRecord{
			origin:  vertAt(i + 1),
			onext:   edgeAt(i + 1),
			lnext:   Sym(edgeAt(i - 1)),
			face:    fOut,
			winding: -winding,
		}
	}

	m.faces[fIn].anEdge = base
	m.faces[fOut].anEdge = Sym(base)
}

// dedupeConsecutive drops every point that lies within epsilon of the
// point before it, wrapping around so a closing duplicate (last point
// equal to first) is caught too. It never leaves the ring with fewer than
// the single representative of a run of coincident points, so a contour
// that degenerates entirely into one point collapses to length 1 and is
// then rejected by the caller's n < 3 check rather than built as a
// zero-area ring.
func dedupeConsecutive(points []geom.Point, epsilon float64) []geom.Point {
	n := len(points)
	if n < 2 {
		return points
	}

	out := make([]geom.Point, 0, n)
	for _, p := range points {
		if len(out) > 0 && p.EqEps(out[len(out)-1], epsilon) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].EqEps(out[len(out)-1], epsilon) {
		out = out[:len(out)-1]
	}
	return out
}
