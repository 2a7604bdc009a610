// Package output implements the tessellator's emission pipeline: walking
// the sweep's "inside" mesh faces and producing monotone, triangulated,
// or convex-merged contours. Grounded on the strip/buffer emission
// pattern used by the pack's GPU tessellation helper
// (gogpu-gg's backend tessellate.go, which fills a reused vertex buffer
// and flushes it per primitive) and on poly2tri-style monotone
// triangulation, the same family of algorithm tdewolff's canvas module
// reaches for via its own polygon triangulator dependency.
package output

import (
	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/mesh"
)

// Mode selects which shape the pipeline emits per inside face.
type Mode uint8

const (
	// Monotone emits each inside face's boundary directly.
	Monotone Mode = iota
	// Triangulation emits each inside face triangulated.
	Triangulation
	// Convex emits each inside face triangulated and then merged back
	// into convex pieces.
	Convex
)

// Sink receives one emitted contour at a time. points is reused across
// calls; implementations that need to retain it must copy.
type Sink func(points []geom.Point)

// Emit walks every inside face of m and feeds mode's chosen contour shape
// to sink, reusing a single scratch buffer across calls.
func Emit(m *mesh.Mesh, mode Mode, epsilon float64, sink Sink) {
	buf := make([]geom.Point, 0, 16)

	for f := range m.Faces {
		if !m.FaceInside(f) || m.Emitted(f) {
			continue
		}
		m.MarkEmitted(f)

		buf = faceBoundary(m, f, buf[:0])
		if len(buf) < 3 {
			continue
		}

		switch mode {
		case Monotone:
			sink(buf)
		case Triangulation:
			emitTriangulated(buf, sink)
		case Convex:
			emitConvex(buf, epsilon, sink)
		}
	}
}

// faceBoundary walks f's Lnext ring starting at its representative edge
// and appends each origin point into dst.
func faceBoundary(m *mesh.Mesh, f mesh.FaceID, dst []geom.Point) []geom.Point {
	start := m.FaceEdge(f)
	e := start
	for {
		dst = append(dst, m.Point(m.Origin(e)))
		e = m.Lnext(e)
		if e == start {
			break
		}
	}
	return dst
}

// emitTriangulated triangulates a y-monotone boundary using the
// classic two-stack monotone sweep, and feeds every triangle to sink.
func emitTriangulated(boundary []geom.Point, sink Sink) {
	for _, tri := range TriangulateMonotone(boundary) {
		buf := [3]geom.Point{tri[0], tri[1], tri[2]}
		sink(buf[:])
	}
}

// emitConvex triangulates then greedily merges adjacent triangles whose
// shared edge can be dissolved without introducing a reflex vertex.
func emitConvex(boundary []geom.Point, epsilon float64, sink Sink) {
	tris := TriangulateMonotone(boundary)
	polys := MergeConvex(tris, epsilon)
	for _, p := range polys {
		sink(p)
	}
}
