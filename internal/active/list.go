package active

import (
	"sort"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/mesh"
	"github.com/polysweep/tessellate/internal/numeric"
	"github.com/polysweep/tessellate/internal/options"
)

// List is the active-region container. Ordering is only meaningful at the
// current sweep point: every comparison asks "which of these two edges is
// further left at the current sweep y", so the list's notion of order
// silently shifts underneath it as SetSweepPoint moves the line forward.
// Callers must not mix queries taken at different sweep points.
type List struct {
	tree    *redblacktree.Tree
	mesh    *mesh.Mesh
	epsilon float64
	cur     geom.Point
	nextSeq uint64
}

// New returns an empty active-region list over m. Accepts the same
// [options.GeometryOptionsFunc] functional options as the rest of this
// module's internal geometry code; [options.WithEpsilon] sets the
// tolerance for the order comparator's on-edge tests.
func New(m *mesh.Mesh, opts ...options.GeometryOptionsFunc) *List {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	l := &List{mesh: m, epsilon: o.Epsilon}
	l.tree = redblacktree.NewWith(l.compare)
	return l
}

// SetSweepPoint advances the list's notion of "current sweep position".
// Call this before any Insert/Find/Floor/Ceiling at a new event point.
func (l *List) SetSweepPoint(p geom.Point) {
	l.cur = p
}

// CurrentSweepPoint returns the point last passed to SetSweepPoint.
func (l *List) CurrentSweepPoint() geom.Point {
	return l.cur
}

// compare orders two *Region by where their edges cross the list's
// current sweep point, left to right. It never returns 0 for distinct
// regions: ties broken by x position fall back to each edge's slope,
// then to insertion order, so that the tree always has one unambiguous
// slot per region even for overlapping or collinear edges at the same
// instant.
func (l *List) compare(ai, bi interface{}) int {
	a, b := ai.(*Region), bi.(*Region)
	if a == b {
		return 0
	}

	xa := edgeXAtY(l.mesh, a.Edge, l.cur.Y)
	xb := edgeXAtY(l.mesh, b.Edge, l.cur.Y)
	switch {
	case numeric.FloatLessThan(xa, xb, l.epsilon):
		return -1
	case numeric.FloatGreaterThan(xa, xb, l.epsilon):
		return 1
	}

	sa := edgeSlope(l.mesh, a.Edge)
	sb := edgeSlope(l.mesh, b.Edge)
	switch {
	case numeric.FloatLessThan(sa, sb, l.epsilon):
		return -1
	case numeric.FloatGreaterThan(sa, sb, l.epsilon):
		return 1
	}

	switch {
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}

// edgeXAtY returns the x coordinate at which e's supporting line crosses
// horizontal line y, via linear interpolation between its endpoints.
// Vertical edges return their shared x. This is the one place the sweep
// leans on ordinary float64 arithmetic instead of an orientation
// predicate; spec's no-adaptive-precision stance accepts the resulting
// epsilon-scale error, repaired later by the sweep's numerical cleanup.
func edgeXAtY(m *mesh.Mesh, e mesh.EdgeID, y float64) float64 {
	p := m.Point(m.Origin(e))
	q := m.Point(m.Dst(e))
	if p.Y == q.Y {
		return p.X
	}
	t := (y - p.Y) / (q.Y - p.Y)
	return p.X + t*(q.X-p.X)
}

func edgeSlope(m *mesh.Mesh, e mesh.EdgeID) float64 {
	p := m.Point(m.Origin(e))
	q := m.Point(m.Dst(e))
	if q.Y == p.Y {
		return 0
	}
	return (q.X - p.X) / (q.Y - p.Y)
}

// SortEdgesByPosition orders edges left to right at sweep height y, using
// the same x-at-y-then-slope predicate the active list's own comparator
// applies (see compare/edgeXAtY/edgeSlope above). A vertex's up-going
// edges are discovered by a plain mesh-traversal walk (Onext order), which
// has no relationship to their true left-to-right geometric position —
// callers that assign winding numbers to a run of newly starting edges in
// traversal order rather than this sorted order get the winding accounting
// wrong whenever a vertex starts more than one edge. Grounded on the
// teacher's own sortStatusBySweepLine/segmentSortLess
// (linesegment/sweepline.go), which resorts its status structure's
// segments by this same kind of predicate before processing them in
// geometric order.
func SortEdgesByPosition(m *mesh.Mesh, epsilon, y float64, edges []mesh.EdgeID) {
	sort.SliceStable(edges, func(i, j int) bool {
		xi := edgeXAtY(m, edges[i], y)
		xj := edgeXAtY(m, edges[j], y)
		if numeric.FloatLessThan(xi, xj, epsilon) {
			return true
		}
		if numeric.FloatGreaterThan(xi, xj, epsilon) {
			return false
		}
		return numeric.FloatLessThan(edgeSlope(m, edges[i]), edgeSlope(m, edges[j]), epsilon)
	})
}

// Insert adds a new region for edge e into the list, ordered by the
// current sweep point, and returns it.
func (l *List) Insert(e mesh.EdgeID) *Region {
	r := &Region{Edge: e, seq: l.nextSeq}
	l.nextSeq++
	l.tree.Put(r, struct{}{})
	return r
}

// Remove takes r out of the active list.
func (l *List) Remove(r *Region) {
	l.tree.Remove(r)
}

// Floor returns the region immediately left of r (lower in the tree's
// order), or nil if r is leftmost.
func (l *List) Floor(r *Region) *Region {
	node, found := l.tree.Floor(r)
	if !found || node == nil {
		return nil
	}
	return predecessorNode(l.tree, node, r)
}

// Ceiling returns the region immediately right of r, or nil if r is
// rightmost.
func (l *List) Ceiling(r *Region) *Region {
	node, found := l.tree.Ceiling(r)
	if !found || node == nil {
		return nil
	}
	return successorNode(l.tree, node, r)
}

// predecessorNode and successorNode exist because gods' Floor/Ceiling
// return the matching node itself when the key is present in the tree
// (r always is, once inserted) rather than its strict neighbor; this
// walks to the adjacent key using the tree's own iterator.
func predecessorNode(tree *redblacktree.Tree, node *redblacktree.Node, self *Region) *Region {
	it := tree.IteratorAt(node)
	if !it.Prev() {
		return nil
	}
	if reg, ok := it.Key().(*Region); ok && reg != self {
		return reg
	}
	return nil
}

func successorNode(tree *redblacktree.Tree, node *redblacktree.Node, self *Region) *Region {
	it := tree.IteratorAt(node)
	if !it.Next() {
		return nil
	}
	if reg, ok := it.Key().(*Region); ok && reg != self {
		return reg
	}
	return nil
}

// Len returns the number of regions currently active.
func (l *List) Len() int { return l.tree.Size() }
