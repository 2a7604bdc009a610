package mesh

import "github.com/polysweep/tessellate/internal/geom"

// This file implements the mesh's Euler operators. They follow the classic
// GLU libtess mesh.c structure (MakeEdge/Splice as the single primitive,
// with SplitEdge/Connect/DeleteEdge built on top of it), translated from
// cyclic pointers to arena indices: every half-edge's twin is always e^1,
// so splicing two orbits together or apart never needs to chase or
// reassign a Sym pointer, only the onext/lnext links.

// MakeEdge creates a new pair of half-edges forming an isolated loop: a
// single edge connecting two brand-new vertices, with a single face on
// each side. It is the base case every other Euler operator builds on.
func (m *Mesh) MakeEdge() EdgeID {
	e := EdgeID(len(m.edges))
	m.edges = append(m.edges, halfEdgeRecord{}, halfEdgeRecord{})
	sym := Sym(e)

	v1 := m.newVertex(geom.Point{})
	v2 := m.newVertex(geom.Point{})
	f := m.newFace()

	m.edges[e].origin = v1
	m.edges[sym].origin = v2
	m.verts[v1].anEdge = e
	m.verts[v2].anEdge = sym

	m.edges[e].onext = e
	m.edges[sym].onext = sym
	m.edges[e].lnext = sym
	m.edges[sym].lnext = e

	m.edges[e].face = f
	m.edges[sym].face = f
	m.faces[f].anEdge = e

	return e
}

// Splice is the single topological primitive the rest of the Euler
// operators are expressed in terms of. It either merges the origin orbits
// of a and b (if they were disjoint) or splits one origin orbit into two
// (if a and b were already in the same orbit). Whichever it does, it is
// its own inverse: calling Splice(a, b) twice in a row restores the
// original topology.
//
// Splice also fixes up Lnext/face pointers so that the two edges end up
// with a consistent notion of face, following the same four-case
// reasoning as GLU's SpliceEdges.
func (m *Mesh) Splice(a, b EdgeID) {
	if a == b {
		return
	}

	aOnext := m.edges[a].onext
	bOnext := m.edges[b].onext
	sameOrigin := m.onextOrbitContains(a, b)
	sameFace := m.lnextOrbitContains(a, b)

	// Swap the onext pointers: this is the actual splice/unsplice of the
	// two origin rings. The two lnext pointers leading into a and b are
	// swapped along with them, which performs the matching operation on
	// the face rings.
	m.edges[Sym(aOnext)].lnext = b
	m.edges[Sym(bOnext)].lnext = a
	m.edges[a].onext = bOnext
	m.edges[b].onext = aOnext

	if sameOrigin {
		// a and b were on the same origin ring: this call splits it into
		// two rings, so b (and its ring) may need its own vertex record.
		m.splitVertex(a, b)
	} else {
		// a and b were on disjoint rings: this call merges them into one,
		// so the two origin vertices collapse into one.
		m.mergeVertex(a, b)
	}

	// Face bookkeeping mirrors the origin-ring logic: a and b on one face
	// ring before the swap means this call split that ring in two; on two
	// rings, it joined them.
	if sameFace {
		m.splitFace(a, b)
	} else {
		m.mergeFace(a, b)
	}
}

func (m *Mesh) onextOrbitContains(start, target EdgeID) bool {
	e := start
	for {
		if e == target {
			return true
		}
		e = m.edges[e].onext
		if e == start {
			return false
		}
	}
}

func (m *Mesh) lnextOrbitContains(start, target EdgeID) bool {
	e := start
	for {
		if e == target {
			return true
		}
		e = m.edges[e].lnext
		if e == start {
			return false
		}
	}
}

func (m *Mesh) splitVertex(a, b EdgeID) {
	v := m.newVertex(m.verts[m.edges[a].origin].point)
	m.verts[v].anEdge = b
	e := b
	for {
		m.edges[e].origin = v
		e = m.edges[e].onext
		if e == b {
			break
		}
	}
	m.verts[m.edges[a].origin].anEdge = a
}

func (m *Mesh) mergeVertex(a, b EdgeID) {
	deadV := m.edges[b].origin
	liveV := m.edges[a].origin
	e := b
	for {
		m.edges[e].origin = liveV
		e = m.edges[e].onext
		if e == b {
			break
		}
	}
	m.killVertex(deadV)
}

func (m *Mesh) splitFace(a, b EdgeID) {
	f := m.newFace()
	m.faces[f].anEdge = b
	e := b
	for {
		m.edges[e].face = f
		e = m.edges[e].lnext
		if e == b {
			break
		}
	}
	m.faces[m.edges[a].face].anEdge = a
}

func (m *Mesh) mergeFace(a, b EdgeID) {
	deadF := m.edges[b].face
	liveF := m.edges[a].face
	e := b
	for {
		m.edges[e].face = liveF
		e = m.edges[e].lnext
		if e == b {
			break
		}
	}
	m.killFace(deadF)
}

func (m *Mesh) killVertex(v VertexID) {
	m.verts[v].dead = true
	m.verts[v].anEdge = NilEdge
}

func (m *Mesh) killFace(f FaceID) {
	m.faces[f].dead = true
	m.faces[f].anEdge = NilEdge
}

// SplitEdge splits e into two consecutive edges around a brand-new vertex
// sitting where e used to run from Org(e) to Dst(e): a new edge enew takes
// over the Org(e)-to-new-vertex half, while e itself shrinks to run from
// the new vertex to the old Dst(e). The new vertex is Origin(e) (or
// equivalently Dst(enew)) once this returns; callers set its point with
// [Mesh.SetPoint].
//
// This assumes e genuinely borders two distinct faces, which holds for
// every edge the sweep ever splits (real edges from already-assembled
// contours) — it is not meant for splitting a freshly made bigon edge,
// which has only one face on both sides.
func (m *Mesh) SplitEdge(e EdgeID) EdgeID {
	eSym := Sym(e)
	o := m.edges[e].origin
	faceL := m.edges[e].face
	faceR := m.edges[eSym].face
	w := m.edges[e].winding

	oPrev := m.Oprev(e)
	restAfterE := m.edges[e].onext
	lPrevOfE := m.Lprev(e)
	oldLnextOfSym := m.edges[eSym].lnext

	n := m.newVertex(geom.Point{})

	enew := EdgeID(len(m.edges))
	m.edges = append(m.edges, halfEdgeRecord{}, halfEdgeRecord{})
	enewSym := Sym(enew)

	m.edges[enew] = halfEdgeRecord{origin: o, onext: restAfterE, lnext: e, face: faceL, winding: w}
	m.edges[enewSym] = halfEdgeRecord{origin: n, onext: e, lnext: oldLnextOfSym, face: faceR, winding: -w}

	m.edges[oPrev].onext = enew
	m.edges[lPrevOfE].lnext = enew
	m.edges[eSym].lnext = enewSym

	m.edges[e].origin = n
	m.edges[e].onext = enewSym

	m.verts[n].anEdge = e
	m.verts[o].anEdge = enew

	return enew
}

// Connect adds a new edge from Dst(a) to Org(b), splitting Lface(a) (which
// must equal Lface(b)) into two faces. Returns the new edge, whose Origin
// is Dst(a).
func (m *Mesh) Connect(a, b EdgeID) EdgeID {
	enew := m.MakeEdge()

	// Existing edges go first so that their vertex and face records are
	// the ones that survive the merges.
	m.Splice(m.Lnext(a), enew)
	m.Splice(b, Sym(enew))

	return enew
}

// DeleteEdge removes e (and its twin) from the mesh, merging Lface(e) and
// Rface(e) into one face. Any vertex left with no remaining edge is
// removed as well. Splice's orbit auto-detection does the heavy lifting:
// pulling e out of its origin's onext ring either leaves that ring intact
// (if some other edge still shares the origin) or collapses it to nothing
// (if e was the last edge there).
func (m *Mesh) DeleteEdge(e EdgeID) {
	eSym := Sym(e)

	orgIsolated := m.edges[e].onext == e
	dstIsolated := m.edges[eSym].onext == eSym

	if !orgIsolated {
		m.verts[m.edges[e].origin].anEdge = m.edges[e].onext
		m.Splice(e, m.Oprev(e))
	}
	if !dstIsolated {
		m.verts[m.edges[eSym].origin].anEdge = m.edges[eSym].onext
		m.Splice(eSym, m.Oprev(eSym))
	}

	if orgIsolated {
		m.killVertex(m.edges[e].origin)
	}
	if dstIsolated {
		m.killVertex(m.edges[eSym].origin)
	}
	if orgIsolated && dstIsolated {
		// An isolated edge was the only boundary of its face.
		m.killFace(m.edges[e].face)
	}

	m.edges[e].dead = true
	m.edges[eSym].dead = true
}
