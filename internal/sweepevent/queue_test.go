package sweepevent

import (
	"testing"

	"github.com/polysweep/tessellate/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestQueueOrdersBySweep(t *testing.T) {
	q := New()
	q.Push(geom.New(0, 5), StartVertex)
	q.Push(geom.New(0, 1), StartVertex)
	q.Push(geom.New(3, 1), EndVertex)
	q.Push(geom.New(0, 1), Intersection)

	var order []geom.Point
	for q.Len() > 0 {
		order = append(order, q.PopMin().Point)
	}

	assert.Equal(t, []geom.Point{
		geom.New(0, 1),
		geom.New(0, 1),
		geom.New(3, 1),
		geom.New(0, 5),
	}, order)
}

func TestQueueRemove(t *testing.T) {
	q := New()
	a := q.Push(geom.New(0, 0), StartVertex)
	b := q.Push(geom.New(1, 1), StartVertex)

	q.Remove(a)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, b, q.PeekMin())
}

func TestQueueRemoveMissingIsNoop(t *testing.T) {
	q := New()
	a := q.Push(geom.New(0, 0), StartVertex)
	q.PopMin()
	assert.NotPanics(t, func() { q.Remove(a) })
	assert.Zero(t, q.Len())
}
