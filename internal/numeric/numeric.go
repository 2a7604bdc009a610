// Package numeric provides the epsilon-tolerant comparisons the sweep's
// geometric predicates (internal/active, internal/orient) use instead of
// exact float64 equality, plus a generic absolute value helper, adapted
// from the upstream geom2d library's own numeric package.
package numeric
