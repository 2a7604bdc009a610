package sweep

import (
	"github.com/polysweep/tessellate/internal/active"
	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/mesh"
	"github.com/polysweep/tessellate/internal/sweepevent"
)

// checkIntersection tests whether lower and upper (adjacent in the active
// list, lower below upper) cross ahead of the current sweep point (later
// in sweep order), and if so splits both edges at the crossing and
// schedules the crossing point as an event — the heart of §4.4's
// intersection handling.
func (s *Engine) checkIntersection(lower, upper *active.Region) {
	p, ok := s.segmentIntersection(lower.Edge, upper.Edge)
	if !ok {
		return
	}

	// If the computed intersection is at or before the current sweep
	// point in sweep order (possible purely from floating-point error,
	// since both edges are supposed to not have crossed in the part of
	// the plane already swept), clamp it to the event position and mark
	// the region for later cleanup rather than introducing a vertex the
	// sweep has already moved past, which would corrupt sweep order.
	cur := s.currentSweepPoint()
	if !geom.SweepLess(cur, p) {
		p = cur
		upper.FixUpperEdge = true
	}

	if v := s.vertexAt(p); v != mesh.NilVertex {
		// The intersection lands exactly on an existing vertex: splice
		// both edges into its ring instead of minting a duplicate point.
		s.spliceIntoVertex(lower.Edge, v)
		s.spliceIntoVertex(upper.Edge, v)
		return
	}

	newLower := s.mesh.SplitEdge(lower.Edge)
	s.mesh.SetPoint(s.mesh.Origin(newLower), p)
	newUpper := s.mesh.SplitEdge(upper.Edge)
	s.mesh.SetPoint(s.mesh.Origin(newUpper), p)

	s.queue.Push(p, sweepevent.Intersection)

	lower.Dirty = true
	upper.Dirty = true
}

// spliceIntoVertex handles case 4 of §4.4: the intersection lands exactly
// on an already-existing vertex v, so edge is spliced into v's ring
// rather than creating a near-duplicate vertex a few ulps away.
func (s *Engine) spliceIntoVertex(edge mesh.EdgeID, v mesh.VertexID) {
	if s.mesh.Origin(edge) == v || s.mesh.Dst(edge) == v {
		return
	}
	// After the split, edge starts at the new midpoint vertex; splicing
	// it into v's ring merges that vertex into v.
	s.mesh.SplitEdge(edge)
	s.mesh.Splice(s.mesh.VertexEdge(v), edge)
}

func (s *Engine) currentSweepPoint() geom.Point {
	return s.active.CurrentSweepPoint()
}

// segmentIntersection computes where the line segments carried by edges
// a and b cross, if they do. It uses a direct 2x2 linear solve rather
// than an orientation predicate, consistent with spec's "no adaptive
// precision" stance: the result can be off by a few ulps, which is why
// callers clamp it back onto the sweep line rather than trust it blindly.
func (s *Engine) segmentIntersection(a, b mesh.EdgeID) (geom.Point, bool) {
	p1 := s.mesh.Point(s.mesh.Origin(a))
	p2 := s.mesh.Point(s.mesh.Dst(a))
	p3 := s.mesh.Point(s.mesh.Origin(b))
	p4 := s.mesh.Point(s.mesh.Dst(b))

	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom > -s.epsilon && denom < s.epsilon {
		return geom.Point{}, false // parallel (or collinear); no transversal crossing
	}

	diff := p3.Sub(p1)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < -s.epsilon || t > 1+s.epsilon || u < -s.epsilon || u > 1+s.epsilon {
		return geom.Point{}, false
	}

	return geom.New(p1.X+t*d1.X, p1.Y+t*d1.Y), true
}
