package output

import (
	"testing"

	"github.com/polysweep/tessellate/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestTriangulateMonotoneSquare(t *testing.T) {
	square := []geom.Point{
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(4, 4),
		geom.New(0, 4),
	}
	tris := TriangulateMonotone(square)
	assert.Len(t, tris, 2)
}

func TestTriangulateMonotoneTriangleIsNoop(t *testing.T) {
	tri := []geom.Point{geom.New(0, 0), geom.New(1, 0), geom.New(0, 1)}
	tris := TriangulateMonotone(tri)
	assert.Equal(t, []Triangle{{tri[0], tri[1], tri[2]}}, tris)
}

func TestIsConvexSquare(t *testing.T) {
	square := []geom.Point{
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(4, 4),
		geom.New(0, 4),
	}
	assert.True(t, isConvex(square, 1e-9))
}

func TestIsConvexRejectsReflex(t *testing.T) {
	lShape := []geom.Point{
		geom.New(0, 0),
		geom.New(4, 0),
		geom.New(4, 2),
		geom.New(2, 2),
		geom.New(2, 4),
		geom.New(0, 4),
	}
	assert.False(t, isConvex(lShape, 1e-9))
}
