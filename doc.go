// Package tessellate tessellates arbitrary, possibly self-intersecting,
// multi-contour 2D polygons into monotone regions, triangles, or convex
// regions suitable for a 2D rasterizer.
//
// # Overview
//
// A [Tessellator] consumes one or more polygon contours under an odd or
// non-zero fill rule and emits simpler output contours — monotone
// polygons, triangles, or convex polygons — to a caller-supplied [Sink].
// Internally it builds a half-edge mesh of the input ([internal/mesh]),
// drives a Bentley-Ottmann sweep over an event queue
// ([internal/sweepevent]) and an ordered active-region list
// ([internal/active]) to resolve self-intersections and accumulate
// winding numbers ([internal/sweep]), then decomposes the resulting
// inside faces into the requested output shape ([internal/output]).
//
// # Coordinate system
//
// Coordinates are plain float64. There is no support for arbitrary
// precision or adaptive arithmetic; numerical robustness instead comes
// from epsilon-tolerant comparisons scaled to the caller-supplied bounds
// (see [Bounds]).
//
// # Usage
//
//	var tris [][]tessellate.Point
//	t := tessellate.New(
//		tessellate.WithMode(tessellate.ModeTriangulation),
//		tessellate.WithRule(tessellate.RuleOdd),
//		tessellate.WithSink(func(points []tessellate.Point, _ any) {
//			tris = append(tris, append([]tessellate.Point(nil), points...))
//		}),
//	)
//	defer t.Close()
//	err := t.Tessellate(context.Background(), polygon, bounds, nil)
package tessellate
