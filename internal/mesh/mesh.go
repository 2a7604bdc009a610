// Package mesh implements the half-edge DCEL and its Euler operators.
//
// The source algorithm this tessellator is grounded on (GLU's / gbox's
// tessellator — see active_region.c in this module's retrieval pack)
// represents the mesh as a cyclic graph of pointers (twin, next-around-
// origin, next-around-face). Go has no good story for cyclic pointer
// ownership, so this package uses the arena-of-indices approach spec.md's
// design notes call for: vertices, half-edges, and faces each live in their
// own slice, and cross-references are small integer handles
// ([VertexID], [EdgeID], [FaceID]) rather than pointers.
//
// Every half-edge is stored as one of a consecutive pair; the twin of edge
// e is e^1. This mirrors the classic "Sym via pairing" trick and keeps
// Twin an O(1), allocation-free operation.
package mesh

import "github.com/polysweep/tessellate/internal/geom"

// VertexID identifies a vertex in a [Mesh]'s vertex arena.
type VertexID int32

// EdgeID identifies one half-edge in a [Mesh]'s half-edge arena. Half-edges
// are allocated in twin pairs; Sym(e) == e^1.
type EdgeID int32

// FaceID identifies a face in a [Mesh]'s face arena.
type FaceID int32

// NilVertex, NilEdge and NilFace are the zero-value sentinels for their
// respective ID types; no valid arena entry ever has a negative index.
const (
	NilVertex VertexID = -1
	NilEdge   EdgeID   = -1
	NilFace   FaceID   = -1
)

type vertexRecord struct {
	point   geom.Point
	anEdge  EdgeID
	dead    bool
	inQueue bool // tracked for the sweep; see Vertex.InQueue
}

type halfEdgeRecord struct {
	origin VertexID
	onext  EdgeID // next edge CCW around origin(e)
	lnext  EdgeID // next edge CCW around the boundary of Lface(e)
	face   FaceID
	dead   bool

	// winding is the signed contribution this half-edge makes to the
	// winding number as the sweep crosses it, i.e. +1 or -1 depending on
	// the orientation of the source contour it came from. Set when the
	// edge is created from input and propagated by split/connect.
	winding int
}

type faceRecord struct {
	anEdge EdgeID
	dead   bool

	// inside and windingNumber are populated by the sweep (component D)
	// and consumed by the output pipeline (component E).
	inside       bool
	windingNum   int
	visitedEmit  bool // scratch bit used by output traversal
}

// Mesh is an arena-backed half-edge DCEL.
type Mesh struct {
	verts []vertexRecord
	edges []halfEdgeRecord
	faces []faceRecord
}

// New returns an empty Mesh.
func New() *Mesh {
	return &Mesh{}
}

// Sym returns the twin half-edge of e.
func Sym(e EdgeID) EdgeID { return e ^ 1 }

func (m *Mesh) newVertex(p geom.Point) VertexID {
	id := VertexID(len(m.verts))
	m.verts = append(m.verts, vertexRecord{point: p, anEdge: NilEdge})
	return id
}

func (m *Mesh) newFace() FaceID {
	id := FaceID(len(m.faces))
	m.faces = append(m.faces, faceRecord{anEdge: NilEdge})
	return id
}

// --- Navigation ---

// Origin returns the vertex e points away from.
func (m *Mesh) Origin(e EdgeID) VertexID { return m.edges[e].origin }

// Dst returns the vertex e points to.
func (m *Mesh) Dst(e EdgeID) VertexID { return m.edges[Sym(e)].origin }

// Onext returns the next edge CCW around Origin(e).
func (m *Mesh) Onext(e EdgeID) EdgeID { return m.edges[e].onext }

// Oprev returns the previous edge CW around Origin(e): Lnext(Sym(e)).
func (m *Mesh) Oprev(e EdgeID) EdgeID { return m.edges[Sym(e)].lnext }

// Lnext returns the next edge CCW around Lface(e).
func (m *Mesh) Lnext(e EdgeID) EdgeID { return m.edges[e].lnext }

// Lprev returns the previous edge CW around Lface(e): Sym(Onext(e)).
func (m *Mesh) Lprev(e EdgeID) EdgeID { return Sym(m.edges[e].onext) }

// Lface returns the face to the left of e.
func (m *Mesh) Lface(e EdgeID) FaceID { return m.edges[e].face }

// Rface returns the face to the right of e: Lface(Sym(e)).
func (m *Mesh) Rface(e EdgeID) FaceID { return m.edges[Sym(e)].face }

// Point returns the coordinates of vertex v.
func (m *Mesh) Point(v VertexID) geom.Point { return m.verts[v].point }

// SetPoint sets the coordinates of vertex v.
func (m *Mesh) SetPoint(v VertexID, p geom.Point) { m.verts[v].point = p }

// VertexEdge returns one half-edge with origin v.
func (m *Mesh) VertexEdge(v VertexID) EdgeID { return m.verts[v].anEdge }

// FaceEdge returns one half-edge with Lface(e) == f.
func (m *Mesh) FaceEdge(f FaceID) EdgeID { return m.faces[f].anEdge }

// Winding returns the signed winding contribution of half-edge e.
func (m *Mesh) Winding(e EdgeID) int { return m.edges[e].winding }

// SetWinding sets the signed winding contribution of half-edge e.
func (m *Mesh) SetWinding(e EdgeID, w int) { m.edges[e].winding = w }

// FaceInside reports whether f was marked inside by the sweep.
func (m *Mesh) FaceInside(f FaceID) bool { return m.faces[f].inside }

// SetFaceInside marks f inside or outside.
func (m *Mesh) SetFaceInside(f FaceID, inside bool) { m.faces[f].inside = inside }

// FaceWindingNumber returns the accumulated winding number of face f.
func (m *Mesh) FaceWindingNumber(f FaceID) int { return m.faces[f].windingNum }

// SetFaceWindingNumber sets the accumulated winding number of face f.
func (m *Mesh) SetFaceWindingNumber(f FaceID, w int) { m.faces[f].windingNum = w }

// MarkEmitted sets/reads the scratch bit the output pipeline uses to avoid
// visiting the same face twice.
func (m *Mesh) MarkEmitted(f FaceID) { m.faces[f].visitedEmit = true }

// Emitted reports whether MarkEmitted(f) has been called.
func (m *Mesh) Emitted(f FaceID) bool { return m.faces[f].visitedEmit }

// Faces iterates over every live face in arena order, yielding its ID.
func (m *Mesh) Faces(yield func(FaceID) bool) {
	for i := range m.faces {
		if m.faces[i].dead {
			continue
		}
		if !yield(FaceID(i)) {
			return
		}
	}
}

// Edges iterates over every live half-edge in arena order, yielding its ID.
func (m *Mesh) Edges(yield func(EdgeID) bool) {
	for i := range m.edges {
		if m.edges[i].dead {
			continue
		}
		if !yield(EdgeID(i)) {
			return
		}
	}
}
