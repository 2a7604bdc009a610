package tessellate_test

import (
	"context"
	"testing"

	"github.com/polysweep/tessellate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shoelaceArea returns the unsigned area of a closed contour via the
// shoelace formula, used below to check that the emitted output exactly
// covers the input polygon regardless of how the sweep happened to order
// or split it.
func shoelaceArea(points []tessellate.Point) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func TestTessellateSquareConvex(t *testing.T) {
	square := tessellate.Contour{
		tessellate.NewPoint(0, 0),
		tessellate.NewPoint(10, 0),
		tessellate.NewPoint(10, 10),
		tessellate.NewPoint(0, 10),
	}
	polygon := tessellate.Contours{square}
	bounds := tessellate.BoundsOf(polygon)

	var total float64
	var contourCount int
	tess := tessellate.New(
		tessellate.WithMode(tessellate.ModeConvex),
		tessellate.WithRule(tessellate.RuleOdd),
		tessellate.WithSink(func(points []tessellate.Point, _ any) {
			contourCount++
			total += shoelaceArea(points)
		}),
	)
	defer tess.Close()

	err := tess.Tessellate(context.Background(), polygon, bounds, nil)
	require.NoError(t, err)
	assert.Greater(t, contourCount, 0)
	assert.InDelta(t, 100, total, 1e-6)
}

func TestTessellateSquareTriangulation(t *testing.T) {
	square := tessellate.Contour{
		tessellate.NewPoint(0, 0),
		tessellate.NewPoint(4, 0),
		tessellate.NewPoint(4, 4),
		tessellate.NewPoint(0, 4),
	}
	polygon := tessellate.Contours{square}
	bounds := tessellate.BoundsOf(polygon)

	var total float64
	tess := tessellate.New(
		tessellate.WithMode(tessellate.ModeTriangulation),
		tessellate.WithSink(func(points []tessellate.Point, _ any) {
			require.Len(t, points, 3)
			total += shoelaceArea(points)
		}),
	)
	defer tess.Close()

	err := tess.Tessellate(context.Background(), polygon, bounds, nil)
	require.NoError(t, err)
	assert.InDelta(t, 16, total, 1e-6)
}

func TestTessellateRejectsClosedInstance(t *testing.T) {
	square := tessellate.Contour{
		tessellate.NewPoint(0, 0),
		tessellate.NewPoint(1, 0),
		tessellate.NewPoint(1, 1),
	}
	polygon := tessellate.Contours{square}
	bounds := tessellate.BoundsOf(polygon)

	tess := tessellate.New(tessellate.WithSink(func(points []tessellate.Point, _ any) {}))
	require.NoError(t, tess.Close())

	err := tess.Tessellate(context.Background(), polygon, bounds, nil)
	assert.ErrorIs(t, err, tessellate.ErrClosed)
}

func TestTessellateRequiresSink(t *testing.T) {
	square := tessellate.Contour{
		tessellate.NewPoint(0, 0),
		tessellate.NewPoint(1, 0),
		tessellate.NewPoint(1, 1),
	}
	polygon := tessellate.Contours{square}
	bounds := tessellate.BoundsOf(polygon)

	tess := tessellate.New()
	defer tess.Close()

	err := tess.Tessellate(context.Background(), polygon, bounds, nil)
	assert.ErrorIs(t, err, tessellate.ErrNoSink)
}
