// Package active implements the active-region list: the ordered set of
// mesh edges the sweep line currently crosses, grounded on the upstream
// geom2d library's sweepline_statusstructure_rbt.go (statusStructureRBT,
// its Floor/Ceiling neighbor queries) but built around
// github.com/emirpasic/gods' redblacktree directly, carrying the extra
// per-region bookkeeping (winding number, dirty bit, fix-upper-edge flag)
// the gbox/GLU-style sweep needs that a plain segment-intersection sweep
// never did.
package active

import (
	"github.com/polysweep/tessellate/internal/mesh"
)

// Region is one entry in the active list: an edge currently crossing the
// sweep line, plus the winding/repair state the sweep accumulates on it.
type Region struct {
	Edge mesh.EdgeID

	// WindingNumber is the accumulated winding number of the face
	// immediately to the right of this edge, filled in when the sweep
	// inserts the region.
	WindingNumber int

	// Inside marks whether the face to the right of this edge is inside
	// the output according to the active fill rule.
	Inside bool

	// Dirty marks a region whose neighbor relationship may have gone
	// stale and needs re-checking for new intersections before the
	// sweep trusts its order again.
	Dirty bool

	// FixUpperEdge marks a synthetic edge inserted purely to repair a
	// numerical error (see the sweep package), which must be deleted
	// once it's no longer needed rather than emitted as real output.
	FixUpperEdge bool

	seq uint64
}
