// Package geom holds the small float64 vector kernel shared by the mesh,
// event queue, active-region list, sweep, and output packages. It exists so
// those packages don't need to import the public tessellate package (which
// would create an import cycle) to share a common Point type.
package geom

import (
	"fmt"
	"math"
)

// Point is a coordinate in the plane.
type Point struct {
	X, Y float64
}

// New returns the Point (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Eq reports exact equality.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// EqEps reports whether p and q are equal within epsilon on each axis.
func (p Point) EqEps(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z-component of p × q (p, q treated as vectors from the
// origin).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// SweepLess is the sweep-ordering predicate from the data model: a < b iff
// a.Y < b.Y, or a.Y == b.Y and a.X < b.X. The event queue pops vertices in
// this order, so the sweep moves bottom-to-top, left-to-right across ties —
// the mirror image of the teacher's qItemLess (which sweeps top-to-bottom);
// spec.md fixes this direction explicitly, so it is kept even though it
// reverses the teacher's convention.
func SweepLess(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
