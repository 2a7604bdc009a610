package mesh

import (
	"testing"

	"github.com/polysweep/tessellate/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSym(t *testing.T) {
	assert.Equal(t, EdgeID(1), Sym(0))
	assert.Equal(t, EdgeID(0), Sym(1))
	assert.Equal(t, EdgeID(3), Sym(2))
}

func TestMakeEdge(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	eSym := Sym(e)

	assert.Equal(t, eSym, m.Onext(eSym))
	assert.Equal(t, e, m.Onext(e))
	assert.Equal(t, eSym, m.Lnext(e))
	assert.Equal(t, e, m.Lnext(eSym))
	assert.Equal(t, m.Lface(e), m.Lface(eSym), "a fresh edge bounds the same face on both sides")
	assert.NotEqual(t, m.Origin(e), m.Origin(eSym))
	assert.Equal(t, m.Origin(eSym), m.Dst(e))
}

func TestAddContourTriangle(t *testing.T) {
	m := New()
	pts := []geom.Point{
		geom.New(0, 0),
		geom.New(1, 0),
		geom.New(0, 1),
	}
	m.AddContour(pts, 1, 1e-9)

	// Walking Lnext from any edge of the interior face should visit all
	// three vertices and return to the start after exactly 3 steps.
	var start EdgeID
	found := false
	for e := range m.Edges {
		if m.Winding(e) == 1 {
			start = e
			found = true
			break
		}
	}
	require.True(t, found)

	visited := []geom.Point{}
	e := start
	for i := 0; i < 3; i++ {
		visited = append(visited, m.Point(m.Origin(e)))
		e = m.Lnext(e)
	}
	assert.Equal(t, start, e, "lnext ring should close after 3 edges")
	assert.ElementsMatch(t, pts, visited)

	// The Sym ring (exterior face) should visit the same vertices in the
	// opposite order and also close after 3 steps.
	eOut := Sym(start)
	for i := 0; i < 3; i++ {
		eOut = m.Lnext(eOut)
	}
	assert.Equal(t, Sym(start), eOut)
}

func TestAddContourDegenerateSkipped(t *testing.T) {
	m := New()
	m.AddContour([]geom.Point{geom.New(0, 0), geom.New(1, 1)}, 1, 1e-9)
	count := 0
	for range m.Edges {
		count++
	}
	assert.Zero(t, count)
}

func TestAddContourDropsZeroLengthEdges(t *testing.T) {
	m := New()
	// A repeated consecutive point (0,0) produces a zero-length edge; it
	// should be dropped rather than built into the ring, leaving the
	// mesh as if the triangle had been passed in directly.
	m.AddContour([]geom.Point{
		geom.New(0, 0),
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(0, 4),
	}, 1, 1e-9)

	verts := map[geom.Point]bool{}
	n := 0
	for e := range m.Edges {
		if m.Winding(e) != 1 {
			continue
		}
		n++
		verts[m.Point(m.Origin(e))] = true
	}
	assert.Equal(t, 3, n, "duplicate point should collapse to a 3-edge ring")
	assert.Len(t, verts, 3)
}

func TestAddContourDropsClosingDuplicate(t *testing.T) {
	m := New()
	// Some callers close their contour explicitly (last point == first
	// point); that trailing duplicate should be treated the same as any
	// other zero-length edge.
	m.AddContour([]geom.Point{
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(0, 4),
		geom.New(0, 0),
	}, 1, 1e-9)

	n := 0
	for e := range m.Edges {
		if m.Winding(e) == 1 {
			n++
		}
	}
	assert.Equal(t, 3, n)
}

func TestDeleteEdgeMergesFaces(t *testing.T) {
	m := New()
	pts := []geom.Point{
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(0, 4),
	}
	m.AddContour(pts, 1, 1e-9)

	var e0 EdgeID
	for e := range m.Edges {
		if m.Point(m.Origin(e)) == pts[0] && m.Winding(e) == 1 {
			e0 = e
			break
		}
	}
	faceL := m.Lface(e0)
	faceR := m.Rface(e0)
	require.NotEqual(t, faceL, faceR)

	m.DeleteEdge(e0)

	assert.True(t, m.edges[e0].dead)
	assert.True(t, m.edges[Sym(e0)].dead)
}

func TestDeleteEdgeTearsDownIsolatedProbe(t *testing.T) {
	m := New()
	e := m.MakeEdge()
	org := m.Origin(e)
	dst := m.Dst(e)

	m.DeleteEdge(e)

	assert.True(t, m.edges[e].dead)
	assert.True(t, m.edges[Sym(e)].dead)
	assert.True(t, m.verts[org].dead)
	assert.True(t, m.verts[dst].dead)
}

func TestSplitEdgePreservesEndpoints(t *testing.T) {
	m := New()
	pts := []geom.Point{
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(0, 4),
	}
	m.AddContour(pts, 1, 1e-9)

	var e0 EdgeID
	for e := range m.Edges {
		if m.Point(m.Origin(e)) == pts[0] && m.Winding(e) == 1 {
			e0 = e
			break
		}
	}

	org := m.Origin(e0)
	dst := m.Dst(e0)
	orgFace := m.Lface(e0)

	enew := m.SplitEdge(e0)
	m.SetPoint(m.Origin(e0), geom.New(2, 0))

	assert.Equal(t, org, m.Origin(enew))
	assert.Equal(t, m.Origin(e0), m.Dst(enew))
	assert.Equal(t, dst, m.Dst(e0))
	assert.Equal(t, orgFace, m.Lface(enew))
	assert.Equal(t, orgFace, m.Lface(e0))
	assert.Equal(t, m.Winding(e0), m.Winding(enew))
}
