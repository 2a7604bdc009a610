package sweepevent

import (
	"github.com/google/btree"
	"github.com/polysweep/tessellate/internal/geom"
)

// degree is the btree branching factor. The teacher's own btree.NewG calls
// (sweepline_eventqueue.go, sweepline_statusstructure.go,
// intersectionresults.go) all use degree 2; there's nothing
// tessellation-specific about this number, just matching the teacher's fanout.
const degree = 2

// Queue is the sweep's event queue: every event the sweep still needs to
// process, ordered by sweep order.
type Queue struct {
	tree    *btree.BTreeG[*Event]
	nextSeq uint64
}

// New returns an empty event queue.
func New() *Queue {
	return &Queue{tree: btree.NewG(degree, less)}
}

// Push inserts a new event at p of the given kind and returns it. The
// returned *Event is the queue's removal handle: pass it back to Remove
// to take the event out of the queue before it's processed.
func (q *Queue) Push(p geom.Point, kind Kind) *Event {
	ev := &Event{Point: p, Kind: kind, seq: q.nextSeq}
	q.nextSeq++
	q.tree.ReplaceOrInsert(ev)
	return ev
}

// Remove takes ev out of the queue. It is a no-op if ev is not (or is no
// longer) present, for instance because it was already popped.
func (q *Queue) Remove(ev *Event) {
	q.tree.Delete(ev)
}

// PopMin removes and returns the next event in sweep order, or nil if the
// queue is empty.
func (q *Queue) PopMin() *Event {
	ev, ok := q.tree.DeleteMin()
	if !ok {
		return nil
	}
	return ev
}

// PeekMin returns the next event in sweep order without removing it, or
// nil if the queue is empty.
func (q *Queue) PeekMin() *Event {
	ev, ok := q.tree.Min()
	if !ok {
		return nil
	}
	return ev
}

// Len returns the number of events still in the queue.
func (q *Queue) Len() int { return q.tree.Len() }
