package tessellate

import (
	"fmt"
	"math"
)

// Point is a coordinate in the plane, represented in fixed-width float64 —
// the tessellator performs no adaptive-precision arithmetic, per its
// non-goals.
type Point struct {
	X, Y float64
}

// NewPoint returns the [Point] (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Eq reports whether p and q are exactly equal.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Sub returns p - q as a vector.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z-component of the cross product of p and q, treated
// as vectors from the origin.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Contour is an ordered, closed ring of points. Orientation (CW/CCW) does
// not matter to the tessellator — winding handles the sign.
type Contour []Point

// Contours is the complete input polygon: a sequence of (possibly
// self-intersecting, possibly mutually overlapping) contours. Empty
// contours are ignored.
type Contours []Contour

// Bounds is an axis-aligned rectangle enclosing all input points. Callers
// supply it so the tessellator can scale its numerical-tolerance epsilon to
// the input's actual extent instead of guessing one.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundsOf computes the [Bounds] enclosing every point in polygon. It
// returns the zero Bounds if polygon has no points.
func BoundsOf(polygon Contours) Bounds {
	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	seen := false
	for _, contour := range polygon {
		for _, p := range contour {
			seen = true
			b.MinX = math.Min(b.MinX, p.X)
			b.MinY = math.Min(b.MinY, p.Y)
			b.MaxX = math.Max(b.MaxX, p.X)
			b.MaxY = math.Max(b.MaxY, p.Y)
		}
	}
	if !seen {
		return Bounds{}
	}
	return b
}

// Diagonal returns the length of bounds' diagonal, used to scale the
// tessellator's numerical tolerance.
func (b Bounds) Diagonal() float64 {
	dx := b.MaxX - b.MinX
	dy := b.MaxY - b.MinY
	return math.Hypot(dx, dy)
}
