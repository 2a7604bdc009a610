// Package sweep implements the Bentley–Ottmann sweep that drives the
// tessellator: it pops vertex events in sweep order, maintains the active
// edge list, computes edge intersections, and marks every mesh face with
// its winding number and inside/outside status. It is grounded on the
// upstream geom2d library's linesegment/sweepline.go (handleEventPoint,
// findNewEvent, findNeighbors) for the event-driven control flow, and on
// this module's own internal/geom+internal/active+internal/sweepevent
// for the supporting structures those functions lean on.
package sweep

import (
	"github.com/polysweep/tessellate/internal/active"
	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/mesh"
	"github.com/polysweep/tessellate/internal/options"
	"github.com/polysweep/tessellate/internal/sweepevent"
)

// Rule is the fill rule the winding accumulation tests against. It
// mirrors the root package's FillRule without importing it, to keep this
// package independent of the public API surface.
type Rule uint8

const (
	// RuleOdd marks a region inside when its winding number is odd.
	RuleOdd Rule = iota
	// RuleNonZero marks a region inside when its winding number is not zero.
	RuleNonZero
)

func (r Rule) inside(winding int) bool {
	if r == RuleNonZero {
		return winding != 0
	}
	return winding%2 != 0
}

// Engine owns one sweep run's state: the mesh being processed, its event
// queue, and its active region list. An Engine is single-use; construct a
// fresh one per tessellate call, matching the tessellator's documented
// single-threaded, non-reentrant-per-instance concurrency model.
type Engine struct {
	mesh    *mesh.Mesh
	queue   *sweepevent.Queue
	active  *active.List
	rule    Rule
	epsilon float64

	// byEdge tracks the live active.Region for every up-edge currently in
	// the active list, so ending/intersection handling can look a region
	// up by its edge instead of re-searching the tree.
	byEdge map[mesh.EdgeID]*active.Region
}

// New returns a sweep Engine over m using the given fill rule and
// numerical tolerance.
func New(m *mesh.Mesh, rule Rule, epsilon float64) *Engine {
	return &Engine{
		mesh:    m,
		queue:   sweepevent.New(),
		active:  active.New(m, options.WithEpsilon(epsilon)),
		rule:    rule,
		epsilon: epsilon,
		byEdge:  make(map[mesh.EdgeID]*active.Region),
	}
}

// upEdge returns whichever half-edge of e's pair has the sweep-smaller
// origin; every edge stored in the active list is in this canonical
// "points up" form, matching the data model's active-list invariant.
func upEdge(m *mesh.Mesh, e mesh.EdgeID) mesh.EdgeID {
	o := m.Point(m.Origin(e))
	d := m.Point(m.Dst(e))
	if geom.SweepLess(o, d) {
		return e
	}
	return mesh.Sym(e)
}

// Run seeds the event queue from every vertex currently in the mesh and
// drives the sweep to completion, leaving every mesh face marked with its
// winding number and inside flag.
func (s *Engine) Run() {
	seen := make(map[mesh.VertexID]bool)
	for e := range s.mesh.Edges {
		v := s.mesh.Origin(e)
		if seen[v] {
			continue
		}
		seen[v] = true
		s.queue.Push(s.mesh.Point(v), s.vertexKind(v))
	}

	for s.queue.Len() > 0 {
		ev := s.queue.PopMin()
		s.handleEvent(ev)
	}
}

func (s *Engine) vertexKind(v mesh.VertexID) sweepevent.Kind {
	start := s.mesh.VertexEdge(v)
	p := s.mesh.Point(v)
	e := start
	for {
		if geom.SweepLess(p, s.mesh.Point(s.mesh.Dst(e))) {
			return sweepevent.StartVertex
		}
		e = s.mesh.Onext(e)
		if e == start {
			break
		}
	}
	return sweepevent.EndVertex
}

// handleEvent processes every edge touching the event's vertex: it closes
// out regions whose up-edge ends here, then opens new regions for
// up-edges starting here, and finally checks the freshly touched part of
// the active list for intersections ahead of the sweep point.
func (s *Engine) handleEvent(ev *sweepevent.Event) {
	v := s.vertexAt(ev.Point)
	if v == mesh.NilVertex {
		// The vertex this event pointed to was merged away by an earlier
		// intersection splice; nothing left to process.
		return
	}

	var starting, ending []mesh.EdgeID
	start := s.mesh.VertexEdge(v)
	e := start
	for {
		if geom.SweepLess(ev.Point, s.mesh.Point(s.mesh.Dst(e))) {
			starting = append(starting, e)
		} else {
			ending = append(ending, mesh.Sym(e))
		}
		e = s.mesh.Onext(e)
		if e == start {
			break
		}
	}

	s.active.SetSweepPoint(ev.Point)

	var below *active.Region
	for _, edge := range ending {
		r, ok := s.byEdge[edge]
		if !ok {
			continue
		}
		below = s.active.Floor(r)
		s.finalizeRegion(r)
		s.active.Remove(r)
		delete(s.byEdge, edge)
	}

	if len(starting) == 0 {
		return
	}

	// starting was discovered by a plain Onext walk, which reflects mesh
	// traversal order, not left-to-right geometric order; sort it by the
	// active list's own predicate before accumulating winding numbers, or
	// a vertex with more than one up-going edge gets the wrong winding
	// assigned to its new regions (and firstNew/lastNew below, which the
	// post-insertion intersection checks assume are the leftmost/rightmost
	// of the run, stop meaning that).
	active.SortEdgesByPosition(s.mesh, s.epsilon, ev.Point.Y, starting)

	windingAbove := 0
	if below != nil {
		windingAbove = below.WindingNumber
	} else if above := s.leftmostActiveAbove(ev.Point); above != nil {
		windingAbove = above.WindingNumber
	}

	var firstNew, lastNew *active.Region
	for _, edge := range starting {
		r := s.active.Insert(edge)
		r.WindingNumber = windingAbove + s.mesh.Winding(edge)
		windingAbove = r.WindingNumber
		s.byEdge[edge] = r
		if firstNew == nil {
			firstNew = r
		}
		lastNew = r
	}

	if neighbor := s.active.Floor(firstNew); neighbor != nil {
		s.checkIntersection(neighbor, firstNew)
	}
	if neighbor := s.active.Ceiling(lastNew); neighbor != nil {
		s.checkIntersection(lastNew, neighbor)
	}
}

// finalizeRegion writes a closing region's winding/inside state onto the
// mesh face it bounds: the face to the right of its up-edge, which is
// the strip between this region's edge and the one above it.
func (s *Engine) finalizeRegion(r *active.Region) {
	f := s.mesh.Rface(r.Edge)
	s.mesh.SetFaceWindingNumber(f, r.WindingNumber)
	s.mesh.SetFaceInside(f, s.rule.inside(r.WindingNumber))
}

// leftmostActiveAbove is used when a start vertex has no closing regions
// to anchor against (so no "below" region is known from an ending edge):
// it finds whichever active region the new point would land under by
// probing a throwaway insertion point. The teacher's findNeighbors did
// the analogous probe against its linked list; here the backing tree
// gives us Floor/Ceiling directly once the point is registered as an
// edge's sweep coordinate. The probe edge never becomes part of any real
// topology, so it's torn down with DeleteEdge once the query is answered
// rather than left to linger in the mesh's arenas.
func (s *Engine) leftmostActiveAbove(p geom.Point) *active.Region {
	if s.active.Len() == 0 {
		return nil
	}
	probe := s.mesh.MakeEdge()
	s.mesh.SetPoint(s.mesh.Origin(probe), p)
	s.mesh.SetPoint(s.mesh.Dst(probe), geom.New(p.X, p.Y+1))
	r := s.active.Insert(probe)
	below := s.active.Floor(r)
	s.active.Remove(r)
	s.mesh.DeleteEdge(probe)
	return below
}

// vertexAt finds the live vertex at point p. The mesh is small enough
// per-call that a linear scan here is acceptable; a production-scale
// engine would keep a point index alongside the mesh.
func (s *Engine) vertexAt(p geom.Point) mesh.VertexID {
	for e := range s.mesh.Edges {
		v := s.mesh.Origin(e)
		if s.mesh.Point(v).EqEps(p, s.epsilon) {
			return v
		}
	}
	return mesh.NilVertex
}
