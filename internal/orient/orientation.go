// Package orient classifies the turn formed by three points, the way the
// upstream geom2d library's types.PointOrientation does, adapted to operate
// on this module's own [geom.Point] and used by the convex-merge stage of
// the output pipeline to test for reflex vertices.
package orient

import (
	"fmt"

	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/numeric"
	"github.com/polysweep/tessellate/internal/options"
)

// Orientation describes whether three points are collinear or turn
// clockwise/counterclockwise.
type Orientation uint8

const (
	// Collinear indicates the three points lie on a single straight line.
	Collinear Orientation = iota
	// Clockwise indicates the points turn clockwise (b is a right turn
	// from a to c).
	Clockwise
	// CounterClockwise indicates the points turn counterclockwise.
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic(fmt.Errorf("unsupported Orientation: %d", o))
	}
}

// Of classifies the turn a -> b -> c. It takes the same
// [options.GeometryOptionsFunc] functional options the upstream geom2d
// library threads through its geometric predicates — [options.WithEpsilon]
// treats a near-zero cross product as collinear instead of a coin-flip
// between Clockwise and CounterClockwise.
func Of(a, b, c geom.Point, opts ...options.GeometryOptionsFunc) Orientation {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case numeric.FloatGreaterThan(cross, 0, o.Epsilon):
		return CounterClockwise
	case numeric.FloatLessThan(cross, 0, o.Epsilon):
		return Clockwise
	default:
		return Collinear
	}
}
