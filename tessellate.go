package tessellate

import (
	"context"
	"sync"

	"github.com/polysweep/tessellate/internal/geom"
	"github.com/polysweep/tessellate/internal/mesh"
	"github.com/polysweep/tessellate/internal/output"
	"github.com/polysweep/tessellate/internal/sweep"
	"github.com/polysweep/tessellate/internal/xlog"
)

// Tessellator tessellates polygons according to its configured [Mode] and
// [FillRule], emitting output contours to a [Sink]. A Tessellator is
// single-threaded and non-reentrant per instance: [Tessellator.Tessellate]
// runs a sweep to completion synchronously, and a single instance must not
// be used concurrently from multiple goroutines. Separate instances are
// fully independent and may run in parallel.
type Tessellator struct {
	cfg config

	mu     sync.Mutex
	closed bool
}

// New returns a configured Tessellator. See [WithMode], [WithRule], and
// [WithSink] for available options.
func New(opts ...Option) *Tessellator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tessellator{cfg: cfg}
}

// Tessellate runs the sweep over polygon and emits output contours to the
// configured sink, synchronously, returning when finished. userData is
// passed through unmodified to every sink invocation.
//
// ctx is checked between top-level phases (mesh construction, sweep,
// emission) — it's a single synchronous call with no suspension points
// once the sweep itself starts, so cancellation can only take effect at
// those phase boundaries, never mid-sweep.
func (t *Tessellator) Tessellate(ctx context.Context, polygon Contours, bounds Bounds, userData any) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.cfg.sink == nil {
		return ErrNoSink
	}
	if bounds.Diagonal() == 0 {
		for _, contour := range polygon {
			if len(contour) > 0 {
				return ErrEmptyBounds
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	epsilon := bounds.Diagonal() * epsilonScale
	xlog.Debugf("tessellate: %d contours, epsilon=%g", len(polygon), epsilon)

	m := mesh.New()
	for _, contour := range polygon {
		if len(contour) < 3 {
			continue
		}
		m.AddContour(toInternalPoints(contour), 1, epsilon)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	engine := sweep.New(m, toSweepRule(t.cfg.rule), epsilon)
	engine.Run()

	if err := ctx.Err(); err != nil {
		return err
	}

	buf := make([]Point, 0, 16)
	output.Emit(m, toOutputMode(t.cfg.mode), epsilon, func(points []geom.Point) {
		buf = buf[:0]
		for _, p := range points {
			buf = append(buf, Point{X: p.X, Y: p.Y})
		}
		t.cfg.sink(buf, userData)
	})

	return ctx.Err()
}

// Close releases the Tessellator's resources. It is safe to call more
// than once; after Close, Tessellate returns [ErrClosed].
func (t *Tessellator) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	return nil
}

// epsilonScale turns the input's bounding diagonal into the sweep's
// numerical tolerance: epsilon is 1e-9 times the diagonal, which is several
// million float64 ulps at that scale.
const epsilonScale = 1e-9

func toInternalPoints(c Contour) []geom.Point {
	pts := make([]geom.Point, len(c))
	for i, p := range c {
		pts[i] = geom.New(p.X, p.Y)
	}
	return pts
}

func toSweepRule(r FillRule) sweep.Rule {
	if r == RuleNonZero {
		return sweep.RuleNonZero
	}
	return sweep.RuleOdd
}

func toOutputMode(m Mode) output.Mode {
	switch m {
	case ModeMonotone:
		return output.Monotone
	case ModeTriangulation:
		return output.Triangulation
	default:
		return output.Convex
	}
}
