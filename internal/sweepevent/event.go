// Package sweepevent implements the sweep's event queue: an ordered
// structure of vertex/intersection events keyed by sweep order, grounded
// on the upstream geom2d library's sweepline_eventqueue.go (qItem,
// qItemLess, newEventQueue), rebuilt on top of a new vertex the sweep
// itself may need to remove before it's ever processed — something the
// teacher's queue never had to support, since it never spliced new
// intersection points into a live mesh mid-sweep.
package sweepevent

import "github.com/polysweep/tessellate/internal/geom"

// Kind classifies what kind of sweep event a point represents.
type Kind uint8

const (
	// StartVertex is a vertex with at least one incident edge whose other
	// endpoint comes later in sweep order.
	StartVertex Kind = iota
	// EndVertex is a vertex all of whose incident edges end at points
	// earlier in sweep order (a local maximum).
	EndVertex
	// Intersection is a synthetic event created when the sweep detects
	// two active edges crossing.
	Intersection
)

func (k Kind) String() string {
	switch k {
	case StartVertex:
		return "StartVertex"
	case EndVertex:
		return "EndVertex"
	case Intersection:
		return "Intersection"
	default:
		return "Unknown"
	}
}

// Event is a single point the sweep must stop at and process.
type Event struct {
	Point geom.Point
	Kind  Kind

	// seq breaks ties between events at the same point (after the
	// geometric comparator below) and gives every event a stable,
	// unique identity inside the queue's backing btree so it can be
	// removed again by value even when another live event shares its
	// point.
	seq uint64
}

// less orders two events for the queue: primarily by sweep order
// (geom.SweepLess), then by insertion sequence as a tiebreaker so the
// ordering is always a strict total order and every Event has a unique,
// locatable position in the backing tree.
func less(a, b *Event) bool {
	if !a.Point.Eq(b.Point) {
		return geom.SweepLess(a.Point, b.Point)
	}
	return a.seq < b.seq
}
