package active

import (
	"testing"

	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/mesh"
	"github.com/polysweep/tessellate/internal/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOrdersLeftToRight(t *testing.T) {
	m := mesh.New()
	m.AddContour([]geom.Point{
		geom.New(0, 0),
		geom.New(10, 0),
		geom.New(10, 10),
		geom.New(0, 10),
	}, 1, 1e-9)

	var left, right mesh.EdgeID
	for e := range m.Edges {
		if m.Winding(e) != 1 {
			continue
		}
		o, d := m.Point(m.Origin(e)), m.Point(m.Dst(e))
		if o.X == 0 && d.X == 0 {
			left = e
		}
		if o.X == 10 && d.X == 10 {
			right = e
		}
	}

	l := New(m, options.WithEpsilon(1e-9))
	l.SetSweepPoint(geom.New(0, 5))

	rr := l.Insert(right)
	rl := l.Insert(left)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, rl, l.Floor(rr))
	assert.Equal(t, rr, l.Ceiling(rl))
	assert.Nil(t, l.Floor(rl))
	assert.Nil(t, l.Ceiling(rr))
}

func TestSortEdgesByPositionOrdersByVertexSlope(t *testing.T) {
	m := mesh.New()

	// Two edges sharing an origin at (0,0): one climbing up-right, one
	// climbing up-left. At the shared origin's own sweep height both
	// have the same x, so the sort must fall back to slope — the
	// up-left edge belongs left of the up-right one.
	eUpRight := m.MakeEdge()
	m.SetPoint(m.Origin(eUpRight), geom.New(0, 0))
	m.SetPoint(m.Dst(eUpRight), geom.New(1, 1))

	eUpLeft := m.MakeEdge()
	m.SetPoint(m.Origin(eUpLeft), geom.New(0, 0))
	m.SetPoint(m.Dst(eUpLeft), geom.New(-1, 1))

	edges := []mesh.EdgeID{eUpRight, eUpLeft}
	SortEdgesByPosition(m, 1e-9, 0, edges)

	assert.Equal(t, []mesh.EdgeID{eUpLeft, eUpRight}, edges)
}

func TestListRemove(t *testing.T) {
	m := mesh.New()
	m.AddContour([]geom.Point{geom.New(0, 0), geom.New(4, 0), geom.New(0, 4)}, 1, 1e-9)

	var e0 mesh.EdgeID
	found := false
	for e := range m.Edges {
		if m.Winding(e) == 1 {
			e0 = e
			found = true
			break
		}
	}
	require.True(t, found)

	l := New(m, options.WithEpsilon(1e-9))
	l.SetSweepPoint(geom.New(0, 0))
	r := l.Insert(e0)
	assert.Equal(t, 1, l.Len())
	l.Remove(r)
	assert.Zero(t, l.Len())
}
