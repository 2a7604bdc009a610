// Command tessgen generates random polygons — including self-intersecting
// and nested-contour cases — and runs them through the tessellator,
// printing the emitted contours as JSON. Adapted from the upstream
// geom2d library's genlinesegments command: fixed count/extent flags and
// JSON to stdout. Generated contours are not screened for degenerate
// geometry.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"

	"github.com/polysweep/tessellate"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "tessgen",
		Usage:     "Generates random polygons, tessellates them, and prints the output contours as JSON",
		UsageText: "tessgen --contours <value> --vertices <value> --nested --mode <mode> --rule <rule>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "contours",
				Usage:    "Number of input contours to generate",
				Value:    1,
				Aliases:  []string{"c"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("contours must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "vertices",
				Usage:    "Number of vertices per contour",
				Value:    5,
				Aliases:  []string{"v"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v < 3 {
						return fmt.Errorf("vertices must be at least 3")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "extent",
				Usage:    "Half-width/height of the square region contours are generated within",
				Value:    100,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "nested",
				Usage:    "Generate one extra contour nested inside the first, to exercise annulus-style output",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "mode",
				Usage:    "Output mode: convex, monotone, or triangulation",
				Value:    "convex",
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "rule",
				Usage:    "Fill rule: odd or non-zero",
				Value:    "odd",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	contourCount := cmd.Int("contours")
	vertexCount := cmd.Int("vertices")
	extent := cmd.Float("extent")
	nested := cmd.Bool("nested")

	mode, err := parseMode(cmd.String("mode"))
	if err != nil {
		return err
	}
	rule, err := parseRule(cmd.String("rule"))
	if err != nil {
		return err
	}

	polygon := make(tessellate.Contours, 0, contourCount+1)
	for i := int64(0); i < contourCount; i++ {
		polygon = append(polygon, randomContour(int(vertexCount), extent))
	}
	if nested && len(polygon) > 0 {
		polygon = append(polygon, shrinkContour(polygon[0], 0.4))
	}

	bounds := tessellate.BoundsOf(polygon)

	var emitted [][]tessellate.Point
	t := tessellate.New(
		tessellate.WithMode(mode),
		tessellate.WithRule(rule),
		tessellate.WithSink(func(points []tessellate.Point, _ any) {
			cp := make([]tessellate.Point, len(points))
			copy(cp, points)
			emitted = append(emitted, cp)
		}),
	)
	defer t.Close()

	if err := t.Tessellate(ctx, polygon, bounds, nil); err != nil {
		return err
	}

	b, err := json.Marshal(emitted)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

func parseMode(s string) (tessellate.Mode, error) {
	switch s {
	case "convex":
		return tessellate.ModeConvex, nil
	case "monotone":
		return tessellate.ModeMonotone, nil
	case "triangulation":
		return tessellate.ModeTriangulation, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func parseRule(s string) (tessellate.FillRule, error) {
	switch s {
	case "odd":
		return tessellate.RuleOdd, nil
	case "non-zero", "nonzero":
		return tessellate.RuleNonZero, nil
	default:
		return 0, fmt.Errorf("unknown rule %q", s)
	}
}

// randomContour generates n points roughly on a circle of radius extent,
// each perturbed in angle and radius enough that the resulting contour
// can self-intersect — exercising the sweep's intersection handling
// rather than always producing a convex input.
func randomContour(n int, extent float64) tessellate.Contour {
	c := make(tessellate.Contour, n)
	for i := 0; i < n; i++ {
		angle := (2 * math.Pi * float64(i) / float64(n)) + rand.Float64()*0.8
		radius := extent * (0.3 + 0.7*rand.Float64())
		c[i] = tessellate.NewPoint(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return c
}

// shrinkContour returns a copy of c scaled toward its centroid by factor,
// used to build a nested inner contour for annulus test cases.
func shrinkContour(c tessellate.Contour, factor float64) tessellate.Contour {
	var cx, cy float64
	for _, p := range c {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(c))
	cx /= n
	cy /= n

	out := make(tessellate.Contour, len(c))
	for i, p := range c {
		out[i] = tessellate.NewPoint(
			cx+(p.X-cx)*factor,
			cy+(p.Y-cy)*factor,
		)
	}
	return out
}
